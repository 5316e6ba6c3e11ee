package config

import (
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	// Debug enables debug screenshots and defaults
	// the log level to debug.
	Debug  *bool
	Level  *log.Level
	Caller *bool
}

func (l *Logger) setDefaults() {
	l.Debug = gosettings.DefaultPointer(l.Debug, false)
	defaultLevel := log.LevelError
	if *l.Debug {
		defaultLevel = log.LevelDebug
	}
	l.Level = gosettings.DefaultPointer(l.Level, defaultLevel)
	l.Caller = gosettings.DefaultPointer(l.Caller, true)
}

func (l *Logger) overrideWith(other Logger) {
	l.Debug = gosettings.OverrideWithPointer(l.Debug, other.Debug)
}

func (l Logger) Validate() (err error) {
	return nil
}

// ToOptions returns the logger options to patch
// the root logger with.
func (l Logger) ToOptions() (options []log.Option) {
	return []log.Option{
		log.SetLevel(*l.Level),
		log.SetCallerFile(*l.Caller),
		log.SetCallerLine(*l.Caller),
	}
}

func (l Logger) String() string {
	return l.toLinesNode().String()
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Debug: %s", gosettings.BoolToYesNo(l.Debug))
	node.Appendf("Level: %s", *l.Level)
	caller := "hidden"
	if *l.Caller {
		caller = "short"
	}
	node.Appendf("Caller: %s", caller)
	return node
}

func (l *Logger) read(r *reader.Reader) (err error) {
	l.Debug, err = r.BoolPtr("DEBUG")
	if err != nil {
		return err
	}

	l.Caller, err = readCaller(r)
	if err != nil {
		return err
	}

	l.Level, err = readLogLevel(r)
	if err != nil {
		return err
	}

	return nil
}

func readCaller(r *reader.Reader) (caller *bool, err error) {
	callerString := r.String("LOG_CALLER")
	switch callerString {
	case "":
		return nil, nil //nolint:nilnil
	case "hidden":
		return ptrTo(false), nil
	case "short":
		return ptrTo(true), nil
	default:
		return nil, fmt.Errorf("%w: "+
			`%q must be one of "", "hidden" or "short"`,
			ErrLogCallerNotValid, callerString)
	}
}

func readLogLevel(r *reader.Reader) (level *log.Level, err error) {
	s := r.String("LOG_LEVEL")
	if s == "" {
		return nil, nil //nolint:nilnil
	}

	level = new(log.Level)
	*level, err = parseLogLevel(s)
	if err != nil {
		return nil, fmt.Errorf("environment variable LOG_LEVEL: %w", err)
	}

	return level, nil
}

func parseLogLevel(s string) (level log.Level, err error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return level, fmt.Errorf(
			"%w: %q is not valid and can be one of debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
}

func ptrTo[T any](value T) *T {
	return &value
}
