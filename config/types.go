package config

// Config represents the complete configuration structure
type Config struct {
	Direct  DirectConfig  `mapstructure:"direct"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DirectConfig holds Yandex Direct API credentials and connection details
type DirectConfig struct {
	Login      string `mapstructure:"login"`
	Token      string `mapstructure:"token"`
	MaxClients int    `mapstructure:"max_clients"`
	Sandbox    bool   `mapstructure:"sandbox"`
	Endpoint   string `mapstructure:"endpoint"`
	EndpointV4 string `mapstructure:"endpoint_v4"`
}

// FilterConfig contains named preset filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
