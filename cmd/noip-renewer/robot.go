package main

import (
	"context"
	"time"

	"github.com/qdm12/log"
	"github.com/qdm12/noip-renewer/internal/browser"
	"github.com/qdm12/noip-renewer/internal/config"
	"github.com/qdm12/noip-renewer/internal/robot"
	"github.com/qdm12/noip-renewer/internal/totp"
	"github.com/qdm12/noip-renewer/internal/update"
)

// robotMaker launches a new browser for each renewal run.
type robotMaker struct {
	browserSettings browser.Settings
	robotSettings   robot.Settings
	totpSecret      string
	logger          log.LoggerInterface
	timeNow         func() time.Time
}

func newRobotMaker(settings config.Config, logger log.LoggerInterface,
	timeNow func() time.Time) *robotMaker {
	return &robotMaker{
		browserSettings: browser.Settings{
			ScreenshotsDir:  *settings.Paths.ScreenshotsDir,
			UserAgent:       settings.Browser.UserAgent,
			Proxy:           settings.Browser.Proxy,
			ExecPath:        settings.Browser.ExecPath,
			Headless:        *settings.Browser.Headless,
			PageLoadTimeout: settings.Browser.PageLoadTimeout,
			ElementTimeout:  settings.Browser.PageLoadTimeout,
			Logger:          logger.New(log.SetComponent("browser")),
		},
		robotSettings: robot.Settings{
			Username:            settings.Credentials.Username,
			Password:            settings.Credentials.Password,
			LoginURL:            settings.Portal.LoginURL,
			HostsURL:            settings.Portal.HostsURL,
			ThresholdDays:       settings.Renew.ThresholdDays,
			SettleTimeout:       settings.Renew.SettleTimeout,
			InterventionTimeout: settings.Renew.InterventionTimeout,
			Debug:               *settings.Logger.Debug,
		},
		totpSecret: settings.Credentials.TOTPSecret,
		logger:     logger.New(log.SetComponent("robot")),
		timeNow:    timeNow,
	}
}

//nolint:ireturn
func (m *robotMaker) MakeRobot(ctx context.Context) (renewer update.Robot, err error) {
	b, err := browser.New(ctx, m.browserSettings)
	if err != nil {
		return nil, err
	}
	otp := totp.New(m.totpSecret, m.timeNow)
	return robot.New(b, otp, m.robotSettings, m.logger), nil
}
