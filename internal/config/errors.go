package config

import "errors"

var (
	ErrUsernameNotSet    = errors.New("username is not set")
	ErrPasswordNotSet    = errors.New("password is not set")
	ErrTOTPSecretNotSet  = errors.New("TOTP secret is not set")
	ErrProxyNotValid     = errors.New("proxy address is not valid")
	ErrThresholdNotValid = errors.New("renew threshold days is not valid")
	ErrTimeoutNotValid   = errors.New("timeout is not valid")
	ErrURLNotValid       = errors.New("URL is not valid")
	ErrLogLevelUnknown   = errors.New("log level is unknown")
	ErrLogCallerNotValid = errors.New("LOG_CALLER value is not valid")
	ErrScheduleNotValid  = errors.New("schedule is not valid")
	ErrUserAgentEmpty    = errors.New("user agent is empty")
)
