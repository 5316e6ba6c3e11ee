// Package update runs a complete renewal of the portal hosts and
// reports its outcome to metrics, notifications and health checks.
package update

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/qdm12/noip-renewer/internal/healthchecksio"
	"github.com/qdm12/noip-renewer/internal/models"
	"github.com/qdm12/noip-renewer/internal/robot"
)

type Runner struct {
	robotMaker      RobotMaker
	metrics         Metrics
	metricsTextfile string
	shoutrrrClient  ShoutrrrClient
	hioClient       HealthchecksIOClient
	state           HealthState
	logger          Logger
	timeNow         func() time.Time
}

func NewRunner(robotMaker RobotMaker, metrics Metrics, metricsTextfile string,
	shoutrrrClient ShoutrrrClient, hioClient HealthchecksIOClient,
	state HealthState, logger Logger, timeNow func() time.Time) *Runner {
	return &Runner{
		robotMaker:      robotMaker,
		metrics:         metrics,
		metricsTextfile: metricsTextfile,
		shoutrrrClient:  shoutrrrClient,
		hioClient:       hioClient,
		state:           state,
		logger:          logger,
		timeNow:         timeNow,
	}
}

// Run launches a new browser, renews the hosts expiring soon and
// reports the result. The error returned is the renewal error.
func (r *Runner) Run(ctx context.Context) (err error) {
	r.pingHealthchecksio(ctx, healthchecksio.Start)

	report, err := r.renew(ctx)
	finishedAt := r.timeNow()

	r.metrics.Record(report, err, finishedAt)
	if r.metricsTextfile != "" {
		textfileErr := r.metrics.WriteTextfile(r.metricsTextfile)
		if textfileErr != nil {
			r.logger.Error(textfileErr.Error())
		}
	}

	r.state.SetResult(err, finishedAt)
	r.notify(report, err)
	r.finishHealthchecksio(ctx, err)

	if err != nil {
		return err
	}

	r.logger.Info(strconv.Itoa(len(report.Renewed())) + " of " +
		strconv.Itoa(len(report.Hosts)) + " hosts renewed: " + report.String())
	return nil
}

func (r *Runner) renew(ctx context.Context) (report models.Report, err error) {
	renewer, err := r.robotMaker.MakeRobot(ctx)
	if err != nil {
		return report, fmt.Errorf("launching browser: %w", err)
	}
	return renewer.Run(ctx)
}

func (r *Runner) notify(report models.Report, runErr error) {
	for _, host := range report.Renewed() {
		r.shoutrrrClient.Notify("Host " + host.Name + " renewed, it had " +
			strconv.Itoa(host.RemainingDays) + " days left")
	}

	switch {
	case runErr == nil:
	case errors.Is(runErr, robot.ErrInterventionRequired):
		r.shoutrrrClient.Notify("Manual intervention required on the No-IP portal: " +
			runErr.Error())
	default:
		r.shoutrrrClient.Notify("Renewal failed: " + runErr.Error())
	}
}

const pingTimeout = 10 * time.Second

func (r *Runner) pingHealthchecksio(ctx context.Context, state healthchecksio.State) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	err := r.hioClient.Ping(ctx, state)
	if err != nil {
		r.logger.Warn("pinging healthchecks.io: " + err.Error())
	}
}

func (r *Runner) finishHealthchecksio(ctx context.Context, runErr error) {
	// the run context may be canceled, but the end of
	// the run must still be signaled.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pingTimeout)
	defer cancel()
	err := r.hioClient.Finish(ctx, runErr)
	if err != nil {
		r.logger.Warn("pinging healthchecks.io: " + err.Error())
	}
}
