package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// Screenshot captures the browser viewport as a PNG image written
// to <screenshots directory>/<name>.png.
func (b *Browser) Screenshot(ctx context.Context, name string) (err error) {
	const timeout = 10 * time.Second
	runCtx, cancel := b.runContext(ctx, timeout)
	defer cancel()

	var image []byte
	err = chromedp.Run(runCtx, chromedp.CaptureScreenshot(&image))
	if err != nil {
		return fmt.Errorf("capturing screenshot: %w", err)
	}

	const dirPerms = 0o700
	err = os.MkdirAll(b.screenshotsDir, dirPerms)
	if err != nil {
		return fmt.Errorf("creating screenshots directory: %w", err)
	}

	path := screenshotPath(b.screenshotsDir, name)
	const filePerms = 0o600
	err = os.WriteFile(path, image, filePerms)
	if err != nil {
		return fmt.Errorf("writing screenshot: %w", err)
	}

	return nil
}

// screenshotPath returns the PNG file path for the screenshot name,
// which may contain characters coming from the web page.
func screenshotPath(dir, name string) (path string) {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		name = "unnamed"
	}
	return filepath.Join(dir, name+".png")
}
