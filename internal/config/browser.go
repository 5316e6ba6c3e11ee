package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type Browser struct {
	// Proxy is the optional proxy server address, either
	// as host:port or as a URL such as http://host:port.
	Proxy           string
	UserAgent       string
	PageLoadTimeout time.Duration
	// ExecPath is the path to the Chrome executable. It is
	// detected automatically when left empty.
	ExecPath string
	Headless *bool
}

func (b *Browser) setDefaults() {
	b.UserAgent = gosettings.DefaultComparable(b.UserAgent, defaultUserAgent)
	const defaultPageLoadTimeout = 90 * time.Second
	b.PageLoadTimeout = gosettings.DefaultComparable(b.PageLoadTimeout, defaultPageLoadTimeout)
	b.Headless = gosettings.DefaultPointer(b.Headless, true)
}

func (b *Browser) overrideWith(other Browser) {
	b.Proxy = gosettings.OverrideWithComparable(b.Proxy, other.Proxy)
}

func (b Browser) Validate() (err error) {
	if b.Proxy != "" {
		err = validateProxy(b.Proxy)
		if err != nil {
			return err
		}
	}

	if b.UserAgent == "" {
		return ErrUserAgentEmpty
	}

	if b.PageLoadTimeout <= 0 {
		return fmt.Errorf("%w: page load timeout %s must be positive",
			ErrTimeoutNotValid, b.PageLoadTimeout)
	}

	return nil
}

func validateProxy(proxy string) (err error) {
	if !strings.Contains(proxy, "://") {
		_, _, err = net.SplitHostPort(proxy)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrProxyNotValid, err)
		}
		return nil
	}

	proxyURL, err := url.Parse(proxy)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProxyNotValid, err)
	} else if proxyURL.Host == "" {
		return fmt.Errorf("%w: no host in %s", ErrProxyNotValid, proxy)
	}
	return nil
}

func (b Browser) String() string {
	return b.toLinesNode().String()
}

func (b Browser) toLinesNode() *gotree.Node {
	node := gotree.New("Browser")
	if b.Proxy != "" {
		node.Appendf("Proxy: %s", b.Proxy)
	}
	node.Appendf("User agent: %s", b.UserAgent)
	node.Appendf("Page load timeout: %s", b.PageLoadTimeout)
	if b.ExecPath != "" {
		node.Appendf("Executable path: %s", b.ExecPath)
	}
	node.Appendf("Headless: %s", gosettings.BoolToYesNo(b.Headless))
	return node
}

func (b *Browser) read(r *reader.Reader, warner Warner) (err error) {
	b.Proxy = r.String("HTTPS_PROXY", reader.ForceLowercase(false))
	b.UserAgent = r.String("BROWSER_USER_AGENT", reader.ForceLowercase(false))

	b.PageLoadTimeout, err = r.Duration("BROWSER_PAGE_LOAD_TIMEOUT")
	if err != nil {
		return err
	}

	b.ExecPath = r.String("BROWSER_EXEC_PATH", reader.ForceLowercase(false))

	b.Headless, err = r.BoolPtr("BROWSER_HEADLESS")
	if err != nil {
		return err
	} else if b.Headless != nil && !*b.Headless {
		warner.Warnf("BROWSER_HEADLESS is disabled, a display server is required")
	}

	return nil
}
