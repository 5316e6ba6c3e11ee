package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/robfig/cron/v3"
)

type Schedule struct {
	// Cron is a standard 5 fields cron expression. If empty,
	// the renewal runs once and the program exits.
	Cron *string
}

func (s *Schedule) setDefaults() {
	s.Cron = gosettings.DefaultPointer(s.Cron, "")
}

func (s Schedule) Validate() (err error) {
	if *s.Cron == "" {
		return nil
	}

	_, err = cron.ParseStandard(*s.Cron)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScheduleNotValid, err)
	}
	return nil
}

func (s Schedule) String() string {
	return s.toLinesNode().String()
}

func (s Schedule) toLinesNode() *gotree.Node {
	if *s.Cron == "" {
		return gotree.New("Schedule: run once")
	}
	return gotree.New("Schedule: %s", *s.Cron)
}

func (s *Schedule) read(r *reader.Reader) {
	s.Cron = r.Get("SCHEDULE")
}
