package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rayIDKey is the Fiber locals key the rayid middleware stores the request id under.
const rayIDKey = "ray_id"

// New builds the service logger from cfg.
//
// Level "debug" selects zap's development preset. Any other level uses the production
// preset at that level; an unknown level is an error. Format "console" gives colored
// human-readable output, anything else JSON.
func New(cfg *Config) (*zap.Logger, error) {
	config, err := baseConfig(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

func baseConfig(level string) (zap.Config, error) {
	if level == "debug" {
		return zap.NewDevelopmentConfig(), nil
	}

	config := zap.NewProductionConfig()
	if level == "" {
		return config, nil
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.Config{}, err
	}
	config.Level = zap.NewAtomicLevelAt(parsed)
	return config, nil
}

// WithRayID returns l tagged with the request's ray id, or l unchanged when none is set.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(rayIDKey).(string); ok && rid != "" {
		return l.With(zap.String(rayIDKey, rid))
	}
	return l
}
