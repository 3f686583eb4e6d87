package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewLogger creates a zap logger, the console format is for local development
func NewLogger(conf LogConfig) *zap.Logger {
	var zapConf zap.Config
	if conf.Format == "console" {
		zapConf = zap.NewDevelopmentConfig()
	} else {
		zapConf = zap.NewProductionConfig()
		zapConf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}
	zapConf.Level = level

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
