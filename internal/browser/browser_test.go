package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hostsFixture = `<!DOCTYPE html>
<html><body>
<table>
<tr>
<td data-title="Host"><a href="#">first.ddns.net</a></td>
<td><a id="expiring" data-original-title="Expires in 5 days">5</a></td>
</tr>
<tr>
<td data-title="Host"><a href="#">second.ddns.net</a></td>
<td><a id="expired">expired</a></td>
</tr>
</table>
<h2 class="big" style="display:none">Upgrade Now</h2>
</body></html>`

// findChrome returns the path of a Chrome or Chromium executable,
// and skips the test if none is installed.
func findChrome(t *testing.T) (path string) {
	t.Helper()

	candidates := []string{
		"headless-shell",
		"chromium",
		"chromium-browser",
		"google-chrome",
		"google-chrome-stable",
	}
	for _, candidate := range candidates {
		path, err := exec.LookPath(candidate)
		if err == nil {
			return path
		}
	}
	t.Skip("no Chrome executable found")
	return ""
}

func newTestBrowser(t *testing.T, pageLoadTimeout time.Duration) *Browser {
	t.Helper()

	settings := Settings{
		ScreenshotsDir:  t.TempDir(),
		UserAgent:       "noip-renewer-test",
		ExecPath:        findChrome(t),
		Headless:        true,
		PageLoadTimeout: pageLoadTimeout,
		ElementTimeout:  5 * time.Second,
		Logger:          log.New(log.SetLevel(log.LevelError)),
	}

	browser, err := New(context.Background(), settings)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = browser.Close()
	})
	return browser
}

func newFixtureServer(t *testing.T) (server *httptest.Server) {
	t.Helper()

	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/hosts", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(hostsFixture))
	})
	mux.HandleFunc("/slow", func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })
	return server
}

func Test_Browser_hostsPage(t *testing.T) {
	t.Parallel()

	browser := newTestBrowser(t, 10*time.Second)
	server := newFixtureServer(t)
	ctx := context.Background()

	err := browser.Navigate(ctx, server.URL+"/hosts")
	require.NoError(t, err)

	count, err := browser.Count(ctx, `//td[@data-title="Host"]`)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	name, err := browser.Text(ctx, `(//td[@data-title="Host"])[1]//a`)
	require.NoError(t, err)
	assert.Equal(t, "first.ddns.net", strings.TrimSpace(name))

	value, ok, err := browser.Attribute(ctx, `//a[@id="expiring"]`, "data-original-title")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Expires in 5 days", value)

	value, ok, err = browser.Attribute(ctx, `//a[@id="expired"]`, "data-original-title")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	value, ok, err = browser.Attribute(ctx, `//a[@id="missing"]`, "data-original-title")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	present, err := browser.WaitPresent(ctx, `//td[@data-title="Host"]`, time.Second)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = browser.WaitPresent(ctx, `//div[@id="missing"]`, 200*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, present)

	start := time.Now()
	text, err := browser.Text(ctx, `//h2[@class="big"]`)
	require.NoError(t, err)
	assert.Equal(t, "Upgrade Now", strings.TrimSpace(text))
	assert.Less(t, time.Since(start), browser.elementTimeout)

	err = browser.Screenshot(ctx, "hosts")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(browser.screenshotsDir, "hosts.png"))
	assert.NoError(t, err)
}

func Test_Browser_Navigate_timeout(t *testing.T) {
	t.Parallel()

	browser := newTestBrowser(t, 500*time.Millisecond)
	server := newFixtureServer(t)

	err := browser.Navigate(context.Background(), server.URL+"/slow")

	assert.ErrorIs(t, err, ErrNavigationTimeout)
}

func Test_Browser_Close(t *testing.T) {
	t.Parallel()

	browser := newTestBrowser(t, 10*time.Second)

	err := browser.Close()
	assert.NoError(t, err)

	err = browser.Close()
	assert.NoError(t, err)
}
