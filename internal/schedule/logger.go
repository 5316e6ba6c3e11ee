package schedule

import (
	"fmt"
	"strings"
)

// logAdapter adapts the Logger to the cron.Logger interface.
// Cron informational messages are logged at the debug level.
type logAdapter struct {
	logger Logger
}

func (l *logAdapter) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(formatMessage(msg, keysAndValues))
}

func (l *logAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(formatMessage(msg, keysAndValues) + ": " + err.Error())
}

func formatMessage(msg string, keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return msg
	}

	pairs := make([]string, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 == len(keysAndValues) {
			pairs = append(pairs, fmt.Sprint(keysAndValues[i]))
			break
		}
		pairs = append(pairs, fmt.Sprintf("%v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	return msg + " (" + strings.Join(pairs, ", ") + ")"
}
