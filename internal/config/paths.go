package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	ScreenshotsDir *string
}

func (p *Paths) setDefaults() {
	p.ScreenshotsDir = gosettings.DefaultPointer(p.ScreenshotsDir, "./screenshots")
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Screenshots directory: %s", *p.ScreenshotsDir)
	return node
}

func (p *Paths) read(r *reader.Reader) {
	p.ScreenshotsDir = r.Get("SCREENSHOTS_DIR", reader.ForceLowercase(false))
}
