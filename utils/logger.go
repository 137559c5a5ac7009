package utils

import (
	"strings"

	"go.uber.org/zap"
)

// InitLogger builds the process logger. "prod" selects the JSON production
// encoder, anything else the human-readable development one.
func InitLogger(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
