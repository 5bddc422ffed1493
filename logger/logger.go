// Package logger wraps zap behind a small package-level API, so that the
// rest of the app can log without carrying a logger instance around.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init sets up the package-level logger. In production it logs JSON at info
// level, in development it logs human-readable output at debug level.
func Init(isProd bool) {
	var encoder zapcore.Encoder
	level := zapcore.DebugLevel
	if isProd {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
		level = zapcore.InfoLevel
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	log = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = log.Sync()
}

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { log.Fatal(msg, fields...) }

// Field helpers, so that callers don't need to import zap directly.

func String(key, val string) zap.Field   { return zap.String(key, val) }
func Int(key string, val int) zap.Field  { return zap.Int(key, val) }
func Bool(key string, val bool) zap.Field { return zap.Bool(key, val) }
func Err(err error) zap.Field            { return zap.Error(err) }
