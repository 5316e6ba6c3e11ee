package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// Browser is a headless Chrome tab driven through the DevTools protocol.
// All element selectors are XPath expressions.
type Browser struct {
	tabCtx          context.Context //nolint:containedctx
	tabCancel       context.CancelFunc
	allocCancel     context.CancelFunc
	screenshotsDir  string
	pageLoadTimeout time.Duration
	elementTimeout  time.Duration
	closeOnce       sync.Once
	closeErr        error
}

// New launches a browser with the given settings. The browser process
// is killed when ctx is canceled, and should otherwise be closed
// with the Close method.
func New(ctx context.Context, settings Settings) (browser *Browser, err error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions(settings)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(settings.Logger.Debugf),
		chromedp.WithErrorf(settings.Logger.Debugf),
	)

	// Start the browser now so per-action timeouts never apply
	// to the browser allocation itself.
	err = chromedp.Run(tabCtx)
	if err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	return &Browser{
		tabCtx:          tabCtx,
		tabCancel:       tabCancel,
		allocCancel:     allocCancel,
		screenshotsDir:  settings.ScreenshotsDir,
		pageLoadTimeout: settings.PageLoadTimeout,
		elementTimeout:  settings.ElementTimeout,
	}, nil
}

// runContext returns a context carrying the browser tab, bounded by
// timeout and canceled when ctx is canceled.
func (b *Browser) runContext(ctx context.Context, timeout time.Duration) (
	runCtx context.Context, cancel context.CancelFunc) {
	runCtx, cancelRun := context.WithTimeout(b.tabCtx, timeout)
	stop := context.AfterFunc(ctx, cancelRun)
	return runCtx, func() {
		stop()
		cancelRun()
	}
}

// timedOut returns true if runCtx reached its deadline
// while the caller context ctx is still alive.
func timedOut(ctx, runCtx context.Context) bool {
	return ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded)
}

func (b *Browser) Navigate(ctx context.Context, url string) (err error) {
	runCtx, cancel := b.runContext(ctx, b.pageLoadTimeout)
	defer cancel()

	err = chromedp.Run(runCtx, chromedp.Navigate(url))
	switch {
	case err == nil:
		return nil
	case timedOut(ctx, runCtx):
		return fmt.Errorf("%w: loading %s after %s", ErrNavigationTimeout, url, b.pageLoadTimeout)
	default:
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
}

// runElementAction runs the action on the element matching xpath, waiting
// at most the element timeout for it to be present.
func (b *Browser) runElementAction(ctx context.Context, xpath string,
	action chromedp.Action) (err error) {
	runCtx, cancel := b.runContext(ctx, b.elementTimeout)
	defer cancel()

	err = chromedp.Run(runCtx, action)
	switch {
	case err == nil:
		return nil
	case timedOut(ctx, runCtx):
		return fmt.Errorf("%w: %s", ErrElementNotFound, xpath)
	default:
		return err
	}
}

func (b *Browser) SendKeys(ctx context.Context, xpath, text string) (err error) {
	err = b.runElementAction(ctx, xpath, chromedp.SendKeys(xpath, text, chromedp.BySearch))
	if err != nil {
		return fmt.Errorf("sending keys: %w", err)
	}
	return nil
}

func (b *Browser) Click(ctx context.Context, xpath string) (err error) {
	err = b.runElementAction(ctx, xpath, chromedp.Click(xpath, chromedp.BySearch))
	if err != nil {
		return fmt.Errorf("clicking: %w", err)
	}
	return nil
}

// Text returns the text of the first element matching xpath. The element
// only needs to be present in the page, it may be hidden.
func (b *Browser) Text(ctx context.Context, xpath string) (text string, err error) {
	err = b.runElementAction(ctx, xpath,
		chromedp.Text(xpath, &text, chromedp.BySearch, chromedp.NodeReady))
	if err != nil {
		return "", fmt.Errorf("getting text: %w", err)
	}
	return text, nil
}

// Attribute returns the value of the attribute name of the first element
// matching xpath. If the element or its attribute is not present,
// ok is returned as false.
func (b *Browser) Attribute(ctx context.Context, xpath, name string) (
	value string, ok bool, err error) {
	count, err := b.Count(ctx, xpath)
	if err != nil {
		return "", false, err
	} else if count == 0 {
		return "", false, nil
	}

	err = b.runElementAction(ctx, xpath,
		chromedp.AttributeValue(xpath, name, &value, &ok, chromedp.BySearch))
	if err != nil {
		return "", false, fmt.Errorf("getting attribute %s: %w", name, err)
	}
	return value, ok, nil
}

// Count returns the number of elements currently matching xpath,
// without waiting for any of them to appear.
func (b *Browser) Count(ctx context.Context, xpath string) (count int, err error) {
	runCtx, cancel := b.runContext(ctx, b.elementTimeout)
	defer cancel()

	var nodes []*cdp.Node
	err = chromedp.Run(runCtx, chromedp.Nodes(xpath, &nodes,
		chromedp.BySearch, chromedp.AtLeast(0)))
	if err != nil {
		return 0, fmt.Errorf("counting elements %s: %w", xpath, err)
	}
	return len(nodes), nil
}

// WaitPresent waits at most timeout for an element matching xpath
// to be present in the page. It returns false with no error if the
// timeout is reached.
func (b *Browser) WaitPresent(ctx context.Context, xpath string,
	timeout time.Duration) (present bool, err error) {
	runCtx, cancel := b.runContext(ctx, timeout)
	defer cancel()

	err = chromedp.Run(runCtx, chromedp.WaitReady(xpath, chromedp.BySearch))
	switch {
	case err == nil:
		return true, nil
	case timedOut(ctx, runCtx):
		return false, nil
	default:
		return false, fmt.Errorf("waiting for %s: %w", xpath, err)
	}
}

// Close closes the browser gracefully and releases its resources.
// It is safe to call it multiple times.
func (b *Browser) Close() (err error) {
	b.closeOnce.Do(func() {
		cancelErr := chromedp.Cancel(b.tabCtx)
		if cancelErr != nil {
			b.closeErr = fmt.Errorf("closing browser: %w", cancelErr)
		}
		b.tabCancel()
		b.allocCancel()
	})
	return b.closeErr
}
