package robot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/noip-renewer/internal/browser"
	"github.com/qdm12/noip-renewer/internal/models"
	"github.com/qdm12/noip-renewer/internal/robot/mock_robot"
	"github.com/stretchr/testify/assert"
)

const (
	testLoginURL            = "https://www.noip.com/login"
	testHostsURL            = "https://my.noip.com/dynamic-dns"
	testSettleTimeout       = 10 * time.Second
	testInterventionTimeout = 2 * time.Second
)

// Mock parameters named browser shadow the package in test closures.
var (
	errNavigationTimeout = browser.ErrNavigationTimeout
	errElementNotFound   = browser.ErrElementNotFound
)

func newTestSettings() Settings {
	return Settings{
		Username:            "user@example.com",
		Password:            "password",
		LoginURL:            testLoginURL,
		HostsURL:            testHostsURL,
		ThresholdDays:       7,
		SettleTimeout:       testSettleTimeout,
		InterventionTimeout: testInterventionTimeout,
	}
}

func newTestLogger(ctrl *gomock.Controller) *mock_robot.MockLogger {
	logger := mock_robot.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func expectLogin(ctx context.Context, browser *mock_robot.MockBrowser,
	otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
	calls = append(calls,
		browser.EXPECT().Navigate(ctx, testLoginURL).Return(nil),
		browser.EXPECT().SendKeys(ctx, usernameXPath, "user@example.com").Return(nil),
		browser.EXPECT().SendKeys(ctx, passwordXPath, "password").Return(nil),
		browser.EXPECT().Click(ctx, loginButtonXPath).Return(nil),
		otp.EXPECT().Code().Return("123456", nil),
	)
	for i, digit := range []string{"1", "2", "3", "4", "5", "6"} {
		calls = append(calls,
			browser.EXPECT().SendKeys(ctx, otpInputXPath(i+1), digit).Return(nil))
	}
	calls = append(calls,
		browser.EXPECT().Click(ctx, verifyButtonXPath).Return(nil))
	return calls
}

func expectHostsPage(ctx context.Context, browser *mock_robot.MockBrowser,
	count int) (calls []*gomock.Call) {
	return []*gomock.Call{
		browser.EXPECT().Navigate(ctx, testHostsURL).Return(nil),
		browser.EXPECT().WaitPresent(ctx, hostCellsXPath, testSettleTimeout).Return(true, nil),
		browser.EXPECT().Count(ctx, hostCellsXPath).Return(count, nil),
	}
}

// expectHost sets the expected calls to read the host at position.
// An empty label means the expiration tooltip is absent.
func expectHost(ctx context.Context, browser *mock_robot.MockBrowser,
	position int, name, label string) (calls []*gomock.Call) {
	cell := hostCellXPath(position)
	return []*gomock.Call{
		browser.EXPECT().Text(ctx, cell+hostLinkXPath).Return(name, nil),
		browser.EXPECT().Attribute(ctx, cell+expirationTooltipXPath, expirationTooltipAttribute).
			Return(label, label != "", nil),
	}
}

func expectRenew(ctx context.Context, browser *mock_robot.MockBrowser,
	position int, name string) (calls []*gomock.Call) {
	cell := hostCellXPath(position)
	return []*gomock.Call{
		browser.EXPECT().Click(ctx, cell+renewButtonXPath).Return(nil),
		browser.EXPECT().WaitPresent(ctx, interventionXPath, testInterventionTimeout).Return(false, nil),
		browser.EXPECT().Screenshot(ctx, name+"_success").Return(nil),
	}
}

func Test_Robot_Run(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		expect     func(ctx context.Context, browser *mock_robot.MockBrowser, otp *mock_robot.MockOTPGenerator) []*gomock.Call
		report     models.Report
		errWrapped error
		errMessage string
	}{
		"two_hosts_not_due": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				calls = append(calls, expectLogin(ctx, browser, otp)...)
				calls = append(calls, expectHostsPage(ctx, browser, 2)...)
				calls = append(calls, expectHost(ctx, browser, 1, "a.ddns.net", "10 days left")...)
				calls = append(calls, browser.EXPECT().Screenshot(ctx, "a.ddns.net-results").Return(nil))
				calls = append(calls, expectHost(ctx, browser, 2, "b.ddns.net", "Expires in 29 days")...)
				calls = append(calls, browser.EXPECT().Screenshot(ctx, "b.ddns.net-results").Return(nil))
				return calls
			},
			report: models.Report{Hosts: []models.HostResult{
				{Name: "a.ddns.net", RemainingDays: 10},
				{Name: "b.ddns.net", RemainingDays: 29},
			}},
		},
		"renew_expiring_and_expired_hosts": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				calls = append(calls, expectLogin(ctx, browser, otp)...)
				calls = append(calls, expectHostsPage(ctx, browser, 3)...)
				calls = append(calls, expectHost(ctx, browser, 1, "a.ddns.net", "5 days left")...)
				calls = append(calls, expectRenew(ctx, browser, 1, "a.ddns.net")...)
				calls = append(calls, browser.EXPECT().Screenshot(ctx, "a.ddns.net-results").Return(nil))
				calls = append(calls, expectHost(ctx, browser, 2, "b.ddns.net", "")...)
				calls = append(calls, expectRenew(ctx, browser, 2, "b.ddns.net")...)
				calls = append(calls, browser.EXPECT().Screenshot(ctx, "b.ddns.net-results").Return(nil))
				calls = append(calls, expectHost(ctx, browser, 3, "c.ddns.net", "7 days left")...)
				calls = append(calls, browser.EXPECT().Screenshot(ctx, "c.ddns.net-results").Return(nil))
				return calls
			},
			report: models.Report{Hosts: []models.HostResult{
				{Name: "a.ddns.net", RemainingDays: 5, Renewed: true},
				{Name: "b.ddns.net", RemainingDays: 0, Renewed: true},
				{Name: "c.ddns.net", RemainingDays: 7},
			}},
		},
		"other_big_heading_after_renew": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				cell := hostCellXPath(1)
				calls = append(calls, expectLogin(ctx, browser, otp)...)
				calls = append(calls, expectHostsPage(ctx, browser, 1)...)
				calls = append(calls, expectHost(ctx, browser, 1, "a.ddns.net", "1 day left")...)
				calls = append(calls,
					browser.EXPECT().Click(ctx, cell+renewButtonXPath).Return(nil),
					browser.EXPECT().WaitPresent(ctx, interventionXPath, testInterventionTimeout).Return(true, nil),
					browser.EXPECT().Text(ctx, interventionXPath).Return("Your hosts", nil),
					browser.EXPECT().Screenshot(ctx, "a.ddns.net_success").Return(nil),
					browser.EXPECT().Screenshot(ctx, "a.ddns.net-results").Return(nil),
				)
				return calls
			},
			report: models.Report{Hosts: []models.HostResult{
				{Name: "a.ddns.net", RemainingDays: 1, Renewed: true},
			}},
		},
		"upgrade_page_stops_run": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				cell := hostCellXPath(1)
				calls = append(calls, expectLogin(ctx, browser, otp)...)
				calls = append(calls, expectHostsPage(ctx, browser, 2)...)
				calls = append(calls, expectHost(ctx, browser, 1, "a.ddns.net", "3 days left")...)
				calls = append(calls,
					browser.EXPECT().Click(ctx, cell+renewButtonXPath).Return(nil),
					browser.EXPECT().WaitPresent(ctx, interventionXPath, testInterventionTimeout).Return(true, nil),
					browser.EXPECT().Text(ctx, interventionXPath).Return(" Upgrade Now ", nil),
					browser.EXPECT().Screenshot(ctx, "exception").Return(nil),
				)
				return calls
			},
			report:     models.Report{Hosts: []models.HostResult{}},
			errWrapped: ErrInterventionRequired,
			errMessage: "confirming host a.ddns.net: manual intervention required: upgrade text detected",
		},
		"hosts_table_not_found": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				calls = append(calls, expectLogin(ctx, browser, otp)...)
				calls = append(calls,
					browser.EXPECT().Navigate(ctx, testHostsURL).Return(nil),
					browser.EXPECT().WaitPresent(ctx, hostCellsXPath, testSettleTimeout).Return(false, nil),
					browser.EXPECT().Screenshot(ctx, "exception").Return(nil),
				)
				return calls
			},
			errWrapped: ErrHostsNotFound,
			errMessage: "no hosts or host table rows not found: after waiting 10s",
		},
		"hosts_page_timeout_recovered": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				timeoutErr := fmt.Errorf("%w: loading %s after 1m30s", errNavigationTimeout, testHostsURL)
				calls = append(calls, expectLogin(ctx, browser, otp)...)
				calls = append(calls,
					browser.EXPECT().Navigate(ctx, testHostsURL).Return(timeoutErr),
					browser.EXPECT().Screenshot(ctx, "timeout").Return(nil),
					browser.EXPECT().WaitPresent(ctx, hostCellsXPath, testSettleTimeout).Return(true, nil),
					browser.EXPECT().Count(ctx, hostCellsXPath).Return(1, nil),
				)
				calls = append(calls, expectHost(ctx, browser, 1, "a.ddns.net", "20 days left")...)
				calls = append(calls, browser.EXPECT().Screenshot(ctx, "a.ddns.net-results").Return(nil))
				return calls
			},
			report: models.Report{Hosts: []models.HostResult{
				{Name: "a.ddns.net", RemainingDays: 20},
			}},
		},
		"malformed_expiration_label": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				calls = append(calls, expectLogin(ctx, browser, otp)...)
				calls = append(calls, expectHostsPage(ctx, browser, 1)...)
				calls = append(calls, expectHost(ctx, browser, 1, "a.ddns.net", "expires soon")...)
				calls = append(calls, browser.EXPECT().Screenshot(ctx, "exception").Return(nil))
				return calls
			},
			report:     models.Report{Hosts: []models.HostResult{}},
			errWrapped: ErrExpirationLabelMalformed,
			errMessage: `host a.ddns.net: expiration days label does not match the expected pattern: "expires soon"`,
		},
		"username_field_not_found": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				_ *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				notFoundErr := fmt.Errorf("sending keys: %w: %s", errElementNotFound, usernameXPath)
				return []*gomock.Call{
					browser.EXPECT().Navigate(ctx, testLoginURL).Return(nil),
					browser.EXPECT().SendKeys(ctx, usernameXPath, "user@example.com").Return(notFoundErr),
					browser.EXPECT().Screenshot(ctx, "exception").Return(errors.New("screenshot failed")),
				}
			},
			errWrapped: browser.ErrElementNotFound,
			errMessage: `inserting the username: sending keys: element not found: //input[@name="username"]`,
		},
		"otp_field_not_found": {
			expect: func(ctx context.Context, browser *mock_robot.MockBrowser,
				otp *mock_robot.MockOTPGenerator) (calls []*gomock.Call) {
				notFoundErr := fmt.Errorf("%w: %s", errElementNotFound, otpInputXPath(3))
				return []*gomock.Call{
					browser.EXPECT().Navigate(ctx, testLoginURL).Return(nil),
					browser.EXPECT().SendKeys(ctx, usernameXPath, "user@example.com").Return(nil),
					browser.EXPECT().SendKeys(ctx, passwordXPath, "password").Return(nil),
					browser.EXPECT().Click(ctx, loginButtonXPath).Return(nil),
					otp.EXPECT().Code().Return("987654", nil),
					browser.EXPECT().SendKeys(ctx, otpInputXPath(1), "9").Return(nil),
					browser.EXPECT().SendKeys(ctx, otpInputXPath(2), "8").Return(nil),
					browser.EXPECT().SendKeys(ctx, otpInputXPath(3), "7").Return(notFoundErr),
					browser.EXPECT().Screenshot(ctx, "exception").Return(nil),
				}
			},
			errWrapped: browser.ErrElementNotFound,
			errMessage: `filling the 6-digit OTP code: digit 3: element not found: //*[@id="totp-input"]/input[3]`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			browser := mock_robot.NewMockBrowser(ctrl)
			otp := mock_robot.NewMockOTPGenerator(ctrl)
			calls := testCase.expect(ctx, browser, otp)
			gomock.InOrder(calls...)
			browser.EXPECT().Close().Return(nil).After(calls[len(calls)-1])

			robot := New(browser, otp, newTestSettings(), newTestLogger(ctrl))

			report, err := robot.Run(ctx)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.report, report)
		})
	}
}

func Test_Robot_Run_debugScreenshots(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	browser := mock_robot.NewMockBrowser(ctrl)
	otp := mock_robot.NewMockOTPGenerator(ctrl)

	loginCalls := expectLogin(ctx, browser, otp)
	debug1 := browser.EXPECT().Screenshot(ctx, "debug1").Return(nil)
	debug1.After(loginCalls[0])
	loginCalls[1].After(debug1)
	debug2 := browser.EXPECT().Screenshot(ctx, "debug2").Return(nil).
		After(loginCalls[len(loginCalls)-1])
	calls := expectHostsPage(ctx, browser, 1)
	calls[0].After(debug2)
	calls = append(calls, expectHost(ctx, browser, 1, "a.ddns.net", "12 days left")...)
	calls = append(calls, browser.EXPECT().Screenshot(ctx, "a.ddns.net-results").Return(nil))
	browser.EXPECT().Close().Return(nil)
	gomock.InOrder(loginCalls...)
	gomock.InOrder(calls...)

	settings := newTestSettings()
	settings.Debug = true
	robot := New(browser, otp, settings, newTestLogger(ctrl))

	_, err := robot.Run(ctx)

	assert.NoError(t, err)
}

func Test_Robot_Run_closeErrorIsLogged(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	browser := mock_robot.NewMockBrowser(ctrl)
	otp := mock_robot.NewMockOTPGenerator(ctrl)
	otp.EXPECT().Code().Return("", errors.New("bad secret"))
	browser.EXPECT().Navigate(ctx, testLoginURL).Return(nil)
	browser.EXPECT().SendKeys(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	browser.EXPECT().Click(ctx, loginButtonXPath).Return(nil)
	browser.EXPECT().Screenshot(ctx, "exception").Return(nil)
	browser.EXPECT().Close().Return(errors.New("closing browser: connection lost"))

	logger := mock_robot.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error("An error has occurred while the robot was running: " +
		"generating the 6-digit OTP code: bad secret")
	logger.EXPECT().Error("closing browser: connection lost")

	robot := New(browser, otp, newTestSettings(), logger)

	report, err := robot.Run(ctx)

	assert.EqualError(t, err, "generating the 6-digit OTP code: bad secret")
	assert.Empty(t, report.Hosts)
}
