package tracer

// Config controls the tracer provider built by NewClient.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is reported as deployment.environment and as "environment".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP/HTTP exporter. When false spans are
	// created and propagated but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the OTLP collector host:port. Empty means the exporter's
	// default (or OTEL_EXPORTER_OTLP_ENDPOINT).
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`

	// Insecure sends spans over plain HTTP.
	Insecure bool `yaml:"insecure" envconfig:"TRACER_INSECURE"`
}
