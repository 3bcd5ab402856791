package common

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LeveledLogger interface for level logger compatible with
// go-retryablehttp lib
type LeveledLogger interface {
	Error(string, ...interface{})
	Info(string, ...interface{})
	Debug(string, ...interface{})
	Warn(string, ...interface{})
}

// RetryableHTTPLogger wrapper around zero logger compatible with
// LeveledLogger interface implemented by go-retryablehttp lib
type RetryableHTTPLogger struct {
	logger zerolog.Logger
}

// NewRetryableHTTPLogger create a new RetryableHTTPLogger logger
func NewRetryableHTTPLogger(logger zerolog.Logger) LeveledLogger {
	return RetryableHTTPLogger{
		logger: logger,
	}
}

// fields turns the key value pairs retryablehttp passes into zerolog fields,
// a trailing key without value is kept under "extra"
func (l RetryableHTTPLogger) fields(keysAndValues ...interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2+1)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 == len(keysAndValues) {
			out["extra"] = fieldValue(keysAndValues[i])
			break
		}
		out[fmt.Sprintf("%v", keysAndValues[i])] = fieldValue(keysAndValues[i+1])
	}
	return out
}

// fieldValue keeps primitives as they are and prints everything else with %v, so a *url.URL
// is logged as the url rather than its struct fields
func fieldValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil, string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return val
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Error print error level message
func (l RetryableHTTPLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(l.fields(keysAndValues...)).Msg(msg)
}

// Warn print warn level message
func (l RetryableHTTPLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(l.fields(keysAndValues...)).Msg(msg)
}

// Debug print debug level message
func (l RetryableHTTPLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(l.fields(keysAndValues...)).Msg(msg)
}

// Info print info level message
func (l RetryableHTTPLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(l.fields(keysAndValues...)).Msg(msg)
}
