// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig         `mapstructure:"app"`
	Server       ServerConfig      `mapstructure:"server"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Pricing      PricingConfig     `mapstructure:"pricing"`
	Wizard       WizardConfig      `mapstructure:"wizard"`
	Integrations IntegrationConfig `mapstructure:"integrations"`
	Logging      LoggingConfig     `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	ReadTimeout    int      `mapstructure:"read_timeout"`    // milliseconds
	WriteTimeout   int      `mapstructure:"write_timeout"`   // milliseconds
	RequestTimeout int      `mapstructure:"request_timeout"` // milliseconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PricingConfig holds settings for the pricing engine.
type PricingConfig struct {
	// ConfigFile optionally points to a JSON file overriding the built-in tables.
	ConfigFile string `mapstructure:"config_file"`
}

// WizardConfig holds settings for wizard session persistence.
type WizardConfig struct {
	SessionTTL int `mapstructure:"session_ttl"` // minutes
}

// IntegrationConfig holds settings for the lead store and notifications.
type IntegrationConfig struct {
	Notion struct {
		Token      string `mapstructure:"token"`
		DatabaseID string `mapstructure:"database_id"`
	} `mapstructure:"notion"`

	AWS struct {
		Region string `mapstructure:"region"`
		SES    struct {
			Enabled    bool   `mapstructure:"enabled"`
			FromEmail  string `mapstructure:"from_email"`
			SalesEmail string `mapstructure:"sales_email"`
		} `mapstructure:"ses"`
		SNS struct {
			Enabled  bool   `mapstructure:"enabled"`
			TopicARN string `mapstructure:"topic_arn"`
		} `mapstructure:"sns"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
