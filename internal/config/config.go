package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Sync     SyncConfig     `mapstructure:"sync"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the token-verification settings. Tokens are issued by
// an external identity provider; the gateway only verifies them against the
// configured audience and issuer.
type AuthConfig struct {
	Audience  string `mapstructure:"audience"   validate:"required"`
	Issuer    string `mapstructure:"issuer"     validate:"required"`
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
}

// SyncConfig holds the shared secret that gates the user-sync webhook.
type SyncConfig struct {
	Secret string `mapstructure:"secret" validate:"required"`
}
