package configs

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Datasets  DatasetsConfig  `mapstructure:"datasets" validate:"required"`
	Analytics AnalyticsConfig `mapstructure:"analytics" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatasetsConfig locates the users/orders CSV files under a root directory.
type DatasetsConfig struct {
	RootDir   string `mapstructure:"root_dir" validate:"required"`
	UsersKey  string `mapstructure:"users_key" validate:"required"`
	OrdersKey string `mapstructure:"orders_key" validate:"required"`
}

// AnalyticsConfig holds defaults applied to metric queries that omit a
// parameter.
type AnalyticsConfig struct {
	ConversionWindowDays int    `mapstructure:"conversion_window_days" validate:"required,min=1"`
	TopN                 int    `mapstructure:"top_n" validate:"required,min=1"`
	Frequency            string `mapstructure:"frequency" validate:"required,oneof=daily weekly monthly"`
}
