package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/noip-renewer/internal/totp"
)

type Credentials struct {
	Username string
	Password string
	// TOTPSecret is the base32 shared secret used to
	// generate the 6-digit one time password.
	TOTPSecret string
}

func (c *Credentials) setDefaults() {}

func (c *Credentials) overrideWith(other Credentials) {
	c.Username = gosettings.OverrideWithComparable(c.Username, other.Username)
	c.Password = gosettings.OverrideWithComparable(c.Password, other.Password)
	c.TOTPSecret = gosettings.OverrideWithComparable(c.TOTPSecret, other.TOTPSecret)
}

func (c Credentials) Validate() (err error) {
	switch {
	case c.Username == "":
		return ErrUsernameNotSet
	case c.Password == "":
		return ErrPasswordNotSet
	case c.TOTPSecret == "":
		return ErrTOTPSecretNotSet
	}

	err = totp.Validate(c.TOTPSecret)
	if err != nil {
		return fmt.Errorf("TOTP secret: %w", err)
	}

	return nil
}

func (c Credentials) String() string {
	return c.toLinesNode().String()
}

func (c Credentials) toLinesNode() *gotree.Node {
	node := gotree.New("Credentials")
	node.Appendf("Username: %s", c.Username)
	node.Appendf("Password: %s", gosettings.ObfuscateKey(c.Password))
	node.Appendf("TOTP secret: %s", gosettings.ObfuscateKey(c.TOTPSecret))
	return node
}

func (c *Credentials) read(r *reader.Reader) {
	c.Username = r.String("NOIP_USERNAME",
		reader.RetroKeys("USERNAME"), reader.ForceLowercase(false))
	c.Password = r.String("PASSWORD", reader.ForceLowercase(false))
	c.TOTPSecret = r.String("TOTP_SECRET", reader.ForceLowercase(false))
}
