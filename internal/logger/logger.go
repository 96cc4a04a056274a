package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds a logger for the given environment and installs it as the global
// zap logger, so the rest of the code can log through zap.L().
func Init(environment string) error {
	l, err := New(environment)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}

func New(environment string) (*zap.Logger, error) {
	var cfg zap.Config
	switch environment {
	case "production", "staging":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case "development", "test", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unknown environment %q", environment)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("cfg.Build -> %w", err)
	}

	return l.With(zap.String("env", environmentOrDefault(environment))), nil
}

func environmentOrDefault(environment string) string {
	if environment == "" {
		return "development"
	}

	return environment
}
