package schedule

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Runner,Logger

import "context"

type Runner interface {
	Run(ctx context.Context) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Error(s string)
}
