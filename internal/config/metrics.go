package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Metrics struct {
	// Textfile is the path of the Prometheus textfile written
	// after each run. It is disabled if empty.
	Textfile *string
}

func (m *Metrics) setDefaults() {
	m.Textfile = gosettings.DefaultPointer(m.Textfile, "")
}

func (m Metrics) Validate() (err error) {
	return nil
}

func (m Metrics) String() string {
	return m.toLinesNode().String()
}

func (m Metrics) toLinesNode() *gotree.Node {
	if *m.Textfile == "" {
		return gotree.New("Metrics textfile: disabled")
	}
	return gotree.New("Metrics textfile: %s", *m.Textfile)
}

func (m *Metrics) read(r *reader.Reader) {
	m.Textfile = r.Get("METRICS_TEXTFILE", reader.ForceLowercase(false))
}
