// Package schedule runs the renewal job periodically
// following a cron expression.
package schedule

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	expression string
	runner     Runner
	logger     Logger
}

func New(expression string, runner Runner, logger Logger) *Scheduler {
	return &Scheduler{
		expression: expression,
		runner:     runner,
		logger:     logger,
	}
}

// Run runs the job once right away, and then on each tick of
// the schedule until the context is canceled. A tick is skipped
// if the previous run is still ongoing. Run returns once all
// runs have finished.
func (s *Scheduler) Run(ctx context.Context) (err error) {
	cronLogger := &logAdapter{logger: s.logger}
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	entryID, err := c.AddFunc(s.expression, func() { s.runJob(ctx) })
	if err != nil {
		return fmt.Errorf("adding job with schedule %q: %w", s.expression, err)
	}
	job := c.Entry(entryID).WrappedJob

	firstRunDone := make(chan struct{})
	go func() {
		defer close(firstRunDone)
		job.Run()
	}()

	c.Start()
	s.logger.Info("next run scheduled at " + c.Entry(entryID).Next.String())

	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	<-firstRunDone
	return nil
}

func (s *Scheduler) runJob(ctx context.Context) {
	err := s.runner.Run(ctx)
	if err != nil {
		s.logger.Error("renewal run failed: " + err.Error())
	}
}
