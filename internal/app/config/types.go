package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App  App
		Abdm Abdm
		Saga Saga
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
		SagaTimeoutInSeconds     int
	}

	// Abdm points at the health information exchange gateway.
	Abdm struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		RateLimitPerSecond      float64
		RateLimitBurst          int
	}

	Saga struct {
		LockExpirationInSeconds int
		ReconciliationQueue     string
	}
)
