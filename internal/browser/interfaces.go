package browser

type Logger interface {
	Debugf(format string, args ...interface{})
}
