package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Credentials Credentials
	Browser     Browser
	Renew       Renew
	Portal      Portal
	Paths       Paths
	Logger      Logger
	Shoutrrr    Shoutrrr
	Health      Health
	Schedule    Schedule
	Metrics     Metrics
}

func (c *Config) SetDefaults() {
	c.Credentials.setDefaults()
	c.Browser.setDefaults()
	c.Renew.setDefaults()
	c.Portal.setDefaults()
	c.Paths.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
	c.Health.SetDefaults()
	c.Schedule.setDefaults()
	c.Metrics.setDefaults()
}

// OverrideWith sets the fields of c set in other, such that
// command line flags take precedence over environment variables.
func (c *Config) OverrideWith(other Config) {
	c.Credentials.overrideWith(other.Credentials)
	c.Browser.overrideWith(other.Browser)
	c.Logger.overrideWith(other.Logger)
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"credentials": &c.Credentials,
		"browser":     &c.Browser,
		"renew":       &c.Renew,
		"portal":      &c.Portal,
		"paths":       &c.Paths,
		"logger":      &c.Logger,
		"shoutrrr":    &c.Shoutrrr,
		"health":      &c.Health,
		"schedule":    &c.Schedule,
		"metrics":     &c.Metrics,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Credentials.toLinesNode())
	node.AppendNode(c.Browser.toLinesNode())
	node.AppendNode(c.Renew.toLinesNode())
	node.AppendNode(c.Portal.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Schedule.toLinesNode())
	node.AppendNode(c.Metrics.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader, warner Warner) (err error) {
	c.Credentials.read(reader)

	err = c.Browser.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading browser settings: %w", err)
	}

	err = c.Renew.read(reader)
	if err != nil {
		return fmt.Errorf("reading renew settings: %w", err)
	}

	c.Portal.read(reader)
	c.Paths.read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)
	c.Health.Read(reader)
	c.Schedule.read(reader)
	c.Metrics.read(reader)

	return nil
}
