// Package logger builds the zap loggers used by the resumate binaries.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured field keys shared across the service.
const (
	FieldAnalysisID = "analysis_id"
	FieldRole       = "role"
	FieldRoleMode   = "role_mode"
)

// New returns a logger writing to stdout. json selects the JSON encoder
// over the console one and debug lowers the level to Debug.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// AnalysisFields returns the fields describing one analysis, skipping
// blank values.
func AnalysisFields(id, role, mode string) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	for _, kv := range [][2]string{
		{FieldAnalysisID, id},
		{FieldRole, role},
		{FieldRoleMode, mode},
	} {
		if v := strings.TrimSpace(kv[1]); v != "" {
			fields = append(fields, zap.String(kv[0], v))
		}
	}
	return fields
}

// TruncateForLog shortens s to limit runes, appending an ellipsis when
// truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
