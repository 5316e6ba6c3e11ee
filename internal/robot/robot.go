package robot

import (
	"context"
	"time"

	"github.com/qdm12/noip-renewer/internal/models"
)

type Settings struct {
	Username string
	Password string
	LoginURL string
	HostsURL string
	// ThresholdDays is the number of remaining days under which
	// a host gets renewed.
	ThresholdDays int
	// SettleTimeout bounds the wait for the hosts table to appear.
	SettleTimeout time.Duration
	// InterventionTimeout bounds the wait for the upgrade page
	// after clicking a renew button.
	InterventionTimeout time.Duration
	// Debug enables the debug1 and debug2 login screenshots.
	Debug bool
}

// Robot logs in the portal and renews its expiring hosts,
// using a browser it owns for the duration of a single run.
type Robot struct {
	browser  Browser
	otp      OTPGenerator
	settings Settings
	logger   Logger
}

func New(browser Browser, otp OTPGenerator, settings Settings, logger Logger) *Robot {
	return &Robot{
		browser:  browser,
		otp:      otp,
		settings: settings,
		logger:   logger,
	}
}

// Run logs in and renews hosts expiring soon. The browser is
// always closed when Run returns, and Run must be called only once.
func (r *Robot) Run(ctx context.Context) (report models.Report, err error) {
	defer func() {
		closeErr := r.browser.Close()
		if closeErr != nil {
			r.logger.Error(closeErr.Error())
		}
	}()

	err = r.login(ctx)
	if err == nil {
		report, err = r.updateHosts(ctx)
	}

	if err != nil {
		r.logger.Error("An error has occurred while the robot was running: " + err.Error())
		r.screenshot(ctx, "exception")
		return report, err
	}

	return report, nil
}

// screenshot captures a diagnostic screenshot, logging any failure
// instead of failing the run.
func (r *Robot) screenshot(ctx context.Context, name string) {
	err := r.browser.Screenshot(ctx, name)
	if err != nil {
		r.logger.Error("taking screenshot " + name + ": " + err.Error())
	}
}
