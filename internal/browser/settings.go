package browser

import (
	"time"

	"github.com/chromedp/chromedp"
)

const (
	windowWidth  = 1200
	windowHeight = 800
)

type Settings struct {
	// ScreenshotsDir is the directory where PNG screenshots are written.
	ScreenshotsDir string
	UserAgent      string
	// Proxy is the HTTPS proxy address, and is left empty to not use a proxy.
	Proxy string
	// ExecPath is the Chrome executable path, and is left empty to
	// let chromedp find it.
	ExecPath        string
	Headless        bool
	PageLoadTimeout time.Duration
	// ElementTimeout bounds how long element actions wait for their
	// element to be present in the page.
	ElementTimeout time.Duration
	Logger         Logger
}

func allocatorOptions(settings Settings) (options []chromedp.ExecAllocatorOption) {
	options = append(options, chromedp.DefaultExecAllocatorOptions[:]...)
	options = append(options,
		chromedp.Flag("headless", settings.Headless),
		chromedp.Flag("disable-features",
			"site-per-process,Translate,BlinkGenPropertyTrees,VizDisplayCompositor"),
		chromedp.NoSandbox,
		chromedp.WindowSize(windowWidth, windowHeight),
		chromedp.UserAgent(settings.UserAgent),
	)
	if settings.Proxy != "" {
		options = append(options, chromedp.ProxyServer(settings.Proxy))
	}
	if settings.ExecPath != "" {
		options = append(options, chromedp.ExecPath(settings.ExecPath))
	}
	return options
}
