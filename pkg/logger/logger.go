package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var l = zap.NewNop()

// Init builds the process-wide logger. mode "release" switches to the
// sampled JSON production config.
func Init(mode string) error {
	var (
		lg  *zap.Logger
		err error
	)
	if mode == "release" {
		lg, err = zap.NewProduction()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		lg, err = cfg.Build()
	}
	if err != nil {
		return err
	}
	l = lg
	return nil
}

// L returns the process-wide logger.
func L() *zap.Logger { return l }

func Info(msg string, fields ...zap.Field)  { l.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l.Error(msg, fields...) }

// Sync flushes buffered entries; called on shutdown.
func Sync() { _ = l.Sync() }
