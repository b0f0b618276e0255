package config

import (
	"dentflow-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:            utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:               utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:               utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:           utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:           utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			Vhost:              utils.GetEnvString("RABBITMQ_VHOST", "/"),
			HeartbeatInSeconds: utils.GetEnvInt("RABBITMQ_HEARTBEAT_IN_SECONDS", 10),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomains:            utils.GetEnvCSV("APP_FRONTEND_DOMAINS", "http://localhost:3000"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
		},
		Backend: AppBackend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://127.0.0.1:8000/api/"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "dentflow-secret"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: AppSession{
			ExpTimeInHour: utils.GetEnvInt("SESSION_EXP_TIME_IN_HOUR", 24),
		},
		RabbitMQ: AppRabbitMQ{
			ActivityQueue: utils.GetEnvString("APP_RABBITMQ_ACTIVITY_QUEUE", "dentflow.activity"),
		},
	}
}
