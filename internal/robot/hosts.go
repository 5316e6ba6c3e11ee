package robot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/qdm12/noip-renewer/internal/browser"
	"github.com/qdm12/noip-renewer/internal/models"
)

func (r *Robot) updateHosts(ctx context.Context) (report models.Report, err error) {
	err = r.openHostsPage(ctx)
	if err != nil {
		return report, err
	}

	present, err := r.browser.WaitPresent(ctx, hostCellsXPath, r.settings.SettleTimeout)
	if err != nil {
		return report, fmt.Errorf("waiting for hosts table: %w", err)
	} else if !present {
		return report, fmt.Errorf("%w: after waiting %s", ErrHostsNotFound, r.settings.SettleTimeout)
	}

	count, err := r.browser.Count(ctx, hostCellsXPath)
	if err != nil {
		return report, fmt.Errorf("counting hosts: %w", err)
	} else if count == 0 {
		return report, ErrHostsNotFound
	}

	r.logger.Debug("Found " + strconv.Itoa(count) + " hosts")

	report.Hosts = make([]models.HostResult, 0, count)
	for position := 1; position <= count; position++ {
		result, err := r.updateHost(ctx, position)
		if err != nil {
			return report, err
		}
		report.Hosts = append(report.Hosts, result)
	}

	return report, nil
}

// openHostsPage navigates to the hosts page. A navigation timeout is
// only logged since the hosts table is usually already rendered.
func (r *Robot) openHostsPage(ctx context.Context) (err error) {
	r.logger.Info("Opening " + r.settings.HostsURL + "...")
	err = r.browser.Navigate(ctx, r.settings.HostsURL)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, browser.ErrNavigationTimeout):
		r.logger.Error("The process has timed out: " + err.Error())
		r.screenshot(ctx, "timeout")
		return nil
	default:
		return fmt.Errorf("opening hosts page: %w", err)
	}
}

func (r *Robot) updateHost(ctx context.Context, position int) (
	result models.HostResult, err error) {
	cellXPath := hostCellXPath(position)

	name, err := r.browser.Text(ctx, cellXPath+hostLinkXPath)
	if err != nil {
		return result, fmt.Errorf("getting name of host %d: %w", position, err)
	}
	result.Name = strings.TrimSpace(name)

	result.RemainingDays, err = r.expirationDays(ctx, cellXPath)
	if err != nil {
		return result, fmt.Errorf("host %s: %w", result.Name, err)
	}
	r.logger.Info("expiration days: " + strconv.Itoa(result.RemainingDays))

	if result.RemainingDays < r.settings.ThresholdDays {
		r.logger.Info("Host " + result.Name + " is about to expire, confirming host...")
		err = r.renewHost(ctx, cellXPath, result.Name)
		if err != nil {
			return result, fmt.Errorf("confirming host %s: %w", result.Name, err)
		}
		result.Renewed = true
		r.logger.Info("Host confirmed: " + result.Name)
	} else {
		r.logger.Info("Host " + result.Name + " is yet not due, remaining days to expire: " +
			strconv.Itoa(result.RemainingDays))
	}

	r.screenshot(ctx, result.Name+"-results")
	return result, nil
}

// expirationDays returns the remaining days before the host in the
// given cell expires. A host without expiration tooltip has already
// expired, and 0 is returned.
func (r *Robot) expirationDays(ctx context.Context, cellXPath string) (
	days int, err error) {
	label, ok, err := r.browser.Attribute(ctx,
		cellXPath+expirationTooltipXPath, expirationTooltipAttribute)
	if err != nil {
		return 0, fmt.Errorf("getting expiration tooltip: %w", err)
	} else if !ok {
		r.logger.Info("Seems like the host has already expired")
		return 0, nil
	}

	return parseRemainingDays(label)
}

func (r *Robot) renewHost(ctx context.Context, cellXPath, name string) (err error) {
	r.logger.Info("Updating " + name)
	err = r.browser.Click(ctx, cellXPath+renewButtonXPath)
	if err != nil {
		return fmt.Errorf("clicking renew button: %w", err)
	}

	err = r.checkIntervention(ctx)
	if err != nil {
		return err
	}

	r.screenshot(ctx, name+"_success")
	return nil
}

// checkIntervention returns ErrInterventionRequired if the portal shows
// its upgrade page instead of confirming the host. Only the first big
// heading of the page is looked at.
func (r *Robot) checkIntervention(ctx context.Context) (err error) {
	present, err := r.browser.WaitPresent(ctx, interventionXPath, r.settings.InterventionTimeout)
	if err != nil {
		return fmt.Errorf("checking for upgrade page: %w", err)
	} else if !present {
		return nil
	}

	text, err := r.browser.Text(ctx, interventionXPath)
	if err != nil {
		r.logger.Error("An error has occurred: " + err.Error())
		return nil
	}

	if strings.TrimSpace(text) == interventionText {
		return fmt.Errorf("%w: upgrade text detected", ErrInterventionRequired)
	}
	return nil
}
