// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It is a no-op until Initialize is called.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Verbosity levels, counted from repeated -v flags.
const (
	VerbosityUser  = 0 // warnings and errors only
	VerbosityInfo  = 1 // -v: + files read and written
	VerbosityDebug = 2 // -vv: + parse trees and conversion details
)

// VerbosityToLevel maps a -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Initialize replaces the global logger. Log output always goes to stderr;
// stdout is reserved for generated WIT.
func Initialize(jsonOutput bool, verbosity int) error {
	level := VerbosityToLevel(verbosity)
	if !jsonOutput {
		JSONOutput = false
		Logger = New(false, level, zapcore.Lock(os.Stderr))
		return nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	zapLogger, err := config.Build()
	if err != nil {
		return err
	}
	JSONOutput = true
	Logger = zapLogger.Sugar()
	return nil
}

// New builds a logger writing to w at the given level, either as JSON or
// as plain console lines without timestamps.
func New(jsonOutput bool, level zapcore.Level, w zapcore.WriteSyncer) *zap.SugaredLogger {
	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	return zap.New(zapcore.NewCore(enc, w, zap.NewAtomicLevelAt(level))).Sugar()
}

// Cleanup flushes any buffered log entries.
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
