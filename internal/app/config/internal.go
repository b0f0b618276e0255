package config

type InternalConfig struct {
	App      App
	Backend  AppBackend
	JWT      AppJWT
	Session  AppSession
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	FrontendDomains            []string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

// AppBackend points at the clinic REST API the dashboard talks to.
type AppBackend struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppSession struct {
	ExpTimeInHour int
}

// AppRabbitMQ enables activity events when ActivityQueue is set.
type AppRabbitMQ struct {
	ActivityQueue string
}
