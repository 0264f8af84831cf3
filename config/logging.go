package config

import (
	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/logging"
)

// setLogger picks the zap configuration for the given environment
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return logging.NewExample(), nil
	}
}
