package logger

import (
	"dentflow-service/internal/app/config"
	"dentflow-service/internal/pkg/constvars"
	"log"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the JSON logger shared by every layer. Each entry is
// stamped with the service name, environment and API version so entries from
// several deployments can share one sink.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	zapLogger, err := newZapConfig(driverConfig, internalConfig).Build(
		zap.Fields(
			zap.String(constvars.LoggingServiceKey, constvars.ServiceName),
			zap.String(constvars.LoggingEnvKey, internalConfig.App.Env),
			zap.String(constvars.LoggingVersionKey, internalConfig.App.Version),
		),
	)
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}

func newZapConfig(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) zap.Config {
	isProduction := internalConfig.App.Env == "production"

	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if isProduction {
		outputPaths = []string{driverConfig.Logger.OutputFileName}
		errorOutputPaths = []string{"stderr", driverConfig.Logger.OutputErrorFileName}
	}

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(parseLevel(driverConfig.Logger.Level)),
		Development: internalConfig.App.Env == "development",
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
	}

	// Per-request info logs are chatty; production keeps the first 100 per
	// second of each message and every 100th after that.
	if isProduction {
		cfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}
	return cfg
}

// parseLevel falls back to info for unknown or empty levels.
func parseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}
