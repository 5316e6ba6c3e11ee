// Package totp generates the 6-digit time based one time passwords
// used as second authentication factor on the portal.
package totp

import (
	"errors"
	"fmt"
	"time"

	"github.com/pquerna/otp/totp"
)

const Digits = 6

var ErrCodeLength = errors.New("code length is not valid")

type Generator struct {
	secret  string
	timeNow func() time.Time
}

func New(secret string, timeNow func() time.Time) *Generator {
	return &Generator{
		secret:  secret,
		timeNow: timeNow,
	}
}

// Code returns the current one time password, which is guaranteed
// to contain exactly 6 digits if no error is returned.
func (g *Generator) Code() (code string, err error) {
	code, err = totp.GenerateCode(g.secret, g.timeNow())
	if err != nil {
		return "", fmt.Errorf("generating code: %w", err)
	}

	if len(code) != Digits {
		return "", fmt.Errorf("%w: %d digits instead of %d",
			ErrCodeLength, len(code), Digits)
	}

	for _, r := range code {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q contains a non digit character",
				ErrCodeLength, code)
		}
	}

	return code, nil
}

// Validate checks the secret can be used to generate codes.
func Validate(secret string) (err error) {
	_, err = totp.GenerateCode(secret, time.Unix(0, 0))
	return err
}
