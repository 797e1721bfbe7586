package http

import (
	"fmt"
)

// leveledLogger adapts Logger to retryablehttp.LeveledLogger. The transport's
// own per-attempt debug messages are dropped; requests are traced by
// interceptors.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {}

func fieldsFromPairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
