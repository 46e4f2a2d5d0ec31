// Package qfrlog provides standardized logging utilities for the QFR
// library: front-end parses, register mutations, and gate expansion all
// report through here so a host application gets one structured stream.
package qfrlog

import (
	"os"

	rotate "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors zap's levels without forcing callers to import zapcore.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config holds logger configuration.
type Config struct {
	Level Level
	// Format is "text" or "json"; "json" is appropriate once logs are
	// shipped to a rotated file rather than a developer's terminal.
	Format string
	// LogDir, if non-empty, routes output through a daily-rotated file
	// instead of stderr.
	LogDir string
}

// DefaultConfig returns development-friendly defaults: debug level, text
// format, stderr output.
func DefaultConfig() Config {
	return Config{Level: LevelDebug, Format: "text"}
}

var defaultLogger = zap.NewNop()

// Init installs the global logger. Call once at process startup; packages
// that have not seen Init silently no-op rather than panic, so library
// consumers that never configured logging still work.
func Init(cfg Config) error {
	var encoder zapcore.Encoder
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	var ws zapcore.WriteSyncer
	if cfg.LogDir != "" {
		rl, err := rotate.New(cfg.LogDir + "/qfr.%Y%m%d.log")
		if err != nil {
			return err
		}
		ws = zapcore.AddSync(rl)
	} else {
		ws = zapcore.Lock(zapcore.AddSync(os.Stderr))
	}

	core := zapcore.NewCore(encoder, ws, toZapLevel(cfg.Level))
	defaultLogger = zap.New(core)
	return nil
}

// InitDev is a convenience wrapper for interactive use.
func InitDev() {
	_ = Init(DefaultConfig())
}

// InitProd routes JSON-formatted, info-level logs to a rotated file under
// logDir.
func InitProd(logDir string) error {
	return Init(Config{Level: LevelInfo, Format: "json", LogDir: logDir})
}

func toZapLevel(l Level) zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fields(args ...any) []zap.Field {
	fs := make([]zap.Field, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, _ := args[i].(string)
		fs = append(fs, zap.Any(key, args[i+1]))
	}
	return fs
}

// Debug logs a debug-level message with alternating key/value args.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, fields(args...)...) }

// Info logs an info-level message.
func Info(msg string, args ...any) { defaultLogger.Info(msg, fields(args...)...) }

// Warn logs a warning-level message.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, fields(args...)...) }

// Error logs an error-level message.
func Error(msg string, args ...any) { defaultLogger.Error(msg, fields(args...)...) }

// With returns a child logger carrying the given fields.
func With(args ...any) *zap.Logger { return defaultLogger.With(fields(args...)...) }

// --- QFR-specific logging helpers ---

// LogParseStart logs the beginning of a front-end parse.
func LogParseStart(format, source string) {
	Info("starting parse", "format", format, "source", source)
}

// LogParseComplete logs a completed parse.
func LogParseComplete(format string, nops int) {
	Info("parse complete", "format", format, "operations", nops)
}

// LogGateExpansion logs a gate-expansion decision (implicit controls,
// broadcasting, Toffoli synthesis).
func LogGateExpansion(gate string, controls int, broadcast int) {
	Debug("expanding gate", "gate", gate, "implicit_controls", controls, "broadcast_width", broadcast)
}

// LogRegisterMutation logs a register/layout mutation.
func LogRegisterMutation(op string, logical, physical int) {
	Debug("register mutation", "op", op, "logical", logical, "physical", physical)
}

// LogConsolidate logs a register-consolidation fixed-point pass.
func LogConsolidate(fusions int) {
	if fusions > 0 {
		Debug("consolidated registers", "fusions", fusions)
	}
}

// LogDiagnostic logs a non-fatal parse notice.
func LogDiagnostic(kind string, msg string) {
	Warn("diagnostic notice", "kind", kind, "message", msg)
}

// LogEmit logs emission back-end activity.
func LogEmit(format string, nops int) {
	Info("emission complete", "format", format, "operations", nops)
}
