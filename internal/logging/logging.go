// Package logging builds the zap logger used by the CLI and adapts it to
// ledger.Logger.
package logging

import (
	"io"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New creates a JSON logger writing to w at the named level.
func New(level string, w io.Writer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		ParseLevel(level),
	)

	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}

// Adapter implements ledger.Logger on top of a zap logger.
type Adapter struct {
	logger *zap.Logger
}

var _ ledger.Logger = (*Adapter)(nil)

// NewAdapter wraps logger. A nil logger discards everything.
func NewAdapter(logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Adapter{logger: logger}
}

// Debug implements ledger.Logger.
func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, toZapFields(fields)...)
}

// Info implements ledger.Logger.
func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, toZapFields(fields)...)
}

// Warn implements ledger.Logger.
func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, toZapFields(fields)...)
}

// Error implements ledger.Logger.
func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries.
func (a *Adapter) Sync() error {
	return a.logger.Sync()
}

// toZapFields converts fields in key order so output is stable.
func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		zapFields = append(zapFields, zap.Any(key, fields[key]))
	}

	return zapFields
}
