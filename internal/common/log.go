package common

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	setupOnce sync.Once
	logger    *zap.Logger
	sugar     *zap.SugaredLogger
	setupErr  error
)

// severityNames maps zap levels to Cloud Logging severity values, so log
// entries written to stdout are classified correctly by the log router.
var severityNames = map[zapcore.Level]string{
	zapcore.DebugLevel:  "DEBUG",
	zapcore.InfoLevel:   "INFO",
	zapcore.WarnLevel:   "WARNING",
	zapcore.ErrorLevel:  "ERROR",
	zapcore.DPanicLevel: "CRITICAL",
	zapcore.PanicLevel:  "ALERT",
	zapcore.FatalLevel:  "EMERGENCY",
}

func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	name, ok := severityNames[level]
	if !ok {
		name = "DEFAULT"
	}
	enc.AppendString(name)
}

func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(RFC3339Micros))
}

func setup() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}

	// Key names chosen to match Cloud Logging's structured payload fields.
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = encodeTimeMicros
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.EncodeLevel = encodeSeverity
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.CallerKey = "caller"

	logger, setupErr = cfg.Build(zap.AddCaller())
	if setupErr != nil {
		logger = zap.NewNop()
	}
	sugar = logger.Sugar()
}

// Logger returns the process-wide zap.Logger.
func Logger() *zap.Logger {
	setupOnce.Do(setup)
	return logger
}

// Sugar returns a sugared logger backed by the same core as Logger.
func Sugar() *zap.SugaredLogger {
	setupOnce.Do(setup)
	return sugar
}

// Sync flushes buffered entries. Call once during shutdown.
func Sync() error {
	setupOnce.Do(setup)
	return logger.Sync()
}

// Err reports a logger construction failure, if one occurred.
func Err() error {
	setupOnce.Do(setup)
	return setupErr
}
