package config

import (
	"abdm-link-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "abdm_link"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			SagaTimeoutInSeconds:     utils.GetEnvInt("APP_SAGA_TIMEOUT_IN_SECONDS", 60),
		},
		Abdm: Abdm{
			BaseUrl:                 utils.GetEnvString("ABDM_BASE_URL", "http://localhost:8082/v1"),
			RequestTimeoutInSeconds: utils.GetEnvInt("ABDM_REQUEST_TIMEOUT_IN_SECONDS", 20),
			RateLimitPerSecond:      utils.GetEnvFloat("ABDM_RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:          utils.GetEnvInt("ABDM_RATE_LIMIT_BURST", 5),
		},
		Saga: Saga{
			LockExpirationInSeconds: utils.GetEnvInt("SAGA_LOCK_EXPIRATION_IN_SECONDS", 120),
			ReconciliationQueue:     utils.GetEnvString("SAGA_RECONCILIATION_QUEUE", "abdm_care_context_reconciliation_queue"),
		},
	}
}
