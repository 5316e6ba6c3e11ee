package shoutrrr

type Erroer interface {
	Error(s string)
}
