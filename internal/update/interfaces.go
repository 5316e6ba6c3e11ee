package update

import (
	"context"
	"time"

	"github.com/qdm12/noip-renewer/internal/healthchecksio"
	"github.com/qdm12/noip-renewer/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . RobotMaker,Robot,Metrics,ShoutrrrClient,HealthchecksIOClient,HealthState,Logger

type RobotMaker interface {
	MakeRobot(ctx context.Context) (robot Robot, err error)
}

type Robot interface {
	Run(ctx context.Context) (report models.Report, err error)
}

type Metrics interface {
	Record(report models.Report, runErr error, finishedAt time.Time)
	WriteTextfile(path string) (err error)
}

type ShoutrrrClient interface {
	Notify(message string)
}

type HealthchecksIOClient interface {
	Ping(ctx context.Context, state healthchecksio.State) (err error)
	Finish(ctx context.Context, runErr error) (err error)
}

type HealthState interface {
	SetResult(runErr error, finishedAt time.Time)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
