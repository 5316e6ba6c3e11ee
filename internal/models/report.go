package models

import (
	"strconv"
	"strings"
)

// HostResult is the outcome of processing a single host row.
type HostResult struct {
	Name          string
	RemainingDays int
	Renewed       bool
}

func (h HostResult) String() string {
	if h.Renewed {
		return h.Name + " renewed with " + strconv.Itoa(h.RemainingDays) + " days left"
	}
	return h.Name + " not due, " + strconv.Itoa(h.RemainingDays) + " days left"
}

// Report is the outcome of a renewal run, with hosts in page order.
type Report struct {
	Hosts []HostResult
}

// Renewed returns the hosts renewed during the run.
func (r Report) Renewed() (hosts []HostResult) {
	for _, host := range r.Hosts {
		if host.Renewed {
			hosts = append(hosts, host)
		}
	}
	return hosts
}

func (r Report) String() string {
	if len(r.Hosts) == 0 {
		return "no host processed"
	}
	results := make([]string, len(r.Hosts))
	for i, host := range r.Hosts {
		results[i] = host.String()
	}
	return strings.Join(results, "; ")
}
