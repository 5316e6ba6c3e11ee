package robot

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Browser,OTPGenerator,Logger

type Browser interface {
	Navigate(ctx context.Context, url string) (err error)
	SendKeys(ctx context.Context, xpath, text string) (err error)
	Click(ctx context.Context, xpath string) (err error)
	Text(ctx context.Context, xpath string) (text string, err error)
	Attribute(ctx context.Context, xpath, name string) (value string, ok bool, err error)
	Count(ctx context.Context, xpath string) (count int, err error)
	WaitPresent(ctx context.Context, xpath string, timeout time.Duration) (present bool, err error)
	Screenshot(ctx context.Context, name string) (err error)
	Close() (err error)
}

type OTPGenerator interface {
	Code() (code string, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Error(s string)
}
