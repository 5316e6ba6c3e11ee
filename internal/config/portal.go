package config

import (
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Portal struct {
	LoginURL string
	HostsURL string
}

func (p *Portal) setDefaults() {
	p.LoginURL = gosettings.DefaultComparable(p.LoginURL, "https://www.noip.com/login")
	p.HostsURL = gosettings.DefaultComparable(p.HostsURL, "https://my.noip.com/dynamic-dns")
}

func (p Portal) Validate() (err error) {
	urls := map[string]string{
		"login": p.LoginURL,
		"hosts": p.HostsURL,
	}
	for name, rawURL := range urls {
		err = validateAbsoluteURL(rawURL)
		if err != nil {
			return fmt.Errorf("%s page: %w", name, err)
		}
	}
	return nil
}

func validateAbsoluteURL(rawURL string) (err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLNotValid, err)
	} else if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute URL", ErrURLNotValid, rawURL)
	}
	return nil
}

func (p Portal) String() string {
	return p.toLinesNode().String()
}

func (p Portal) toLinesNode() *gotree.Node {
	node := gotree.New("Portal")
	node.Appendf("Login page: %s", p.LoginURL)
	node.Appendf("Hosts page: %s", p.HostsURL)
	return node
}

func (p *Portal) read(r *reader.Reader) {
	p.LoginURL = r.String("PORTAL_LOGIN_URL", reader.ForceLowercase(false))
	p.HostsURL = r.String("PORTAL_HOSTS_URL", reader.ForceLowercase(false))
}
