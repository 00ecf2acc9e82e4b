package dbg

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

func NewDevLogger() *zap.Logger {
	return build(zap.NewDevelopmentConfig())
}

func NewProdLogger() *zap.Logger {
	return build(zap.NewProductionConfig())
}

// NewLogger picks the logger flavour by environment name.
func NewLogger(env string) (*zap.Logger, error) {
	switch env {
	case EnvDevelopment, "":
		return NewDevLogger(), nil
	case EnvProduction:
		return NewProdLogger(), nil
	default:
		return nil, fmt.Errorf("unknown logger environment %q", env)
	}
}

func build(cfg zap.Config) *zap.Logger {
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
