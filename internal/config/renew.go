package config

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Renew struct {
	// ThresholdDays is the number of remaining days
	// under which a host is renewed.
	ThresholdDays int
	// SettleTimeout is the maximum time to wait for the
	// hosts table to show up.
	SettleTimeout time.Duration
	// InterventionTimeout is the maximum time to wait for the
	// upgrade page after clicking a renew button.
	InterventionTimeout time.Duration
}

func (r *Renew) setDefaults() {
	const defaultThresholdDays = 7
	r.ThresholdDays = gosettings.DefaultComparable(r.ThresholdDays, defaultThresholdDays)
	const defaultSettleTimeout = 10 * time.Second
	r.SettleTimeout = gosettings.DefaultComparable(r.SettleTimeout, defaultSettleTimeout)
	const defaultInterventionTimeout = 2 * time.Second
	r.InterventionTimeout = gosettings.DefaultComparable(r.InterventionTimeout, defaultInterventionTimeout)
}

func (r Renew) Validate() (err error) {
	if r.ThresholdDays < 1 {
		return fmt.Errorf("%w: %d must be at least 1", ErrThresholdNotValid, r.ThresholdDays)
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{name: "settle", value: r.SettleTimeout},
		{name: "intervention", value: r.InterventionTimeout},
	}
	for _, timeout := range timeouts {
		if timeout.value <= 0 {
			return fmt.Errorf("%w: %s timeout %s must be positive",
				ErrTimeoutNotValid, timeout.name, timeout.value)
		}
	}

	return nil
}

func (r Renew) String() string {
	return r.toLinesNode().String()
}

func (r Renew) toLinesNode() *gotree.Node {
	node := gotree.New("Renew")
	node.Appendf("Threshold: %d days", r.ThresholdDays)
	node.Appendf("Settle timeout: %s", r.SettleTimeout)
	node.Appendf("Intervention timeout: %s", r.InterventionTimeout)
	return node
}

func (r *Renew) read(reader *reader.Reader) (err error) {
	r.ThresholdDays, err = reader.Int("RENEW_THRESHOLD_DAYS")
	if err != nil {
		return err
	}

	r.SettleTimeout, err = reader.Duration("RENEW_SETTLE_TIMEOUT")
	if err != nil {
		return err
	}

	r.InterventionTimeout, err = reader.Duration("RENEW_INTERVENTION_TIMEOUT")
	return err
}
