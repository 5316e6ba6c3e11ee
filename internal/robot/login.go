package robot

import (
	"context"
	"fmt"

	"github.com/qdm12/noip-renewer/internal/totp"
)

func (r *Robot) login(ctx context.Context) (err error) {
	r.logger.Info("Opening " + r.settings.LoginURL + "...")
	err = r.browser.Navigate(ctx, r.settings.LoginURL)
	if err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}

	if r.settings.Debug {
		r.screenshot(ctx, "debug1")
	}

	r.logger.Info("Logging in...")

	err = r.browser.SendKeys(ctx, usernameXPath, r.settings.Username)
	if err != nil {
		return fmt.Errorf("inserting the username: %w", err)
	}

	err = r.browser.SendKeys(ctx, passwordXPath, r.settings.Password)
	if err != nil {
		return fmt.Errorf("inserting the password: %w", err)
	}

	err = r.browser.Click(ctx, loginButtonXPath)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	code, err := r.otp.Code()
	if err != nil {
		return fmt.Errorf("generating the 6-digit OTP code: %w", err)
	}

	err = r.fillOTP(ctx, code)
	if err != nil {
		return fmt.Errorf("filling the 6-digit OTP code: %w", err)
	}

	err = r.browser.Click(ctx, verifyButtonXPath)
	if err != nil {
		return fmt.Errorf("verifying the 6-digit OTP code: %w", err)
	}

	if r.settings.Debug {
		r.screenshot(ctx, "debug2")
	}

	return nil
}

// fillOTP types each digit of the code in its own input field,
// digit i going to the i-th field.
func (r *Robot) fillOTP(ctx context.Context, code string) (err error) {
	if len(code) != totp.Digits {
		return fmt.Errorf("%w: %d digits instead of %d",
			totp.ErrCodeLength, len(code), totp.Digits)
	}

	for position := 1; position <= totp.Digits; position++ {
		digit := code[position-1 : position]
		err = r.browser.SendKeys(ctx, otpInputXPath(position), digit)
		if err != nil {
			return fmt.Errorf("digit %d: %w", position, err)
		}
	}

	return nil
}
