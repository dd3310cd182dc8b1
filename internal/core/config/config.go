package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Database holds the database configuration.
	Database DatabaseConfig `mapstructure:",squash"`

	// Redis holds the cache and lock configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Hood holds the Hood.de API configuration.
	Hood HoodConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy used for Hood.de calls.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// HoodConfig holds the credentials and call policy for the Hood.de API.
type HoodConfig struct {
	// URL is the single API endpoint every function is posted to.
	URL string `mapstructure:"HOOD_API_URL" default:"https://www.hood.de/api.htm"`
	// APIUser is the API user sent as the root "user" attribute.
	APIUser string `mapstructure:"HOOD_API_USER" required:"true"`
	// APIPassword is hashed into the root "password" attribute.
	APIPassword string `mapstructure:"HOOD_API_PASSWORD" required:"true"`
	// AccountName is the seller account name.
	AccountName string `mapstructure:"HOOD_ACCOUNT_NAME" required:"true"`
	// AccountPass is hashed into the accountPass element.
	AccountPass string `mapstructure:"HOOD_ACCOUNT_PASS" required:"true"`
	// Timeout bounds every regular API call.
	Timeout time.Duration `mapstructure:"HOOD_TIMEOUT" default:"30s"`
	// ProbeTimeout bounds the connection probe.
	ProbeTimeout time.Duration `mapstructure:"HOOD_PROBE_TIMEOUT" default:"10s"`
	// UploadInterval is the pause between sequential item uploads.
	UploadInterval time.Duration `mapstructure:"HOOD_UPLOAD_INTERVAL" default:"1s"`
	// SkipHealthCheck disables the startup probe.
	SkipHealthCheck bool `mapstructure:"HOOD_SKIP_HEALTHCHECK" default:"false"`
}

// DatabaseConfig holds database connection details.
type DatabaseConfig struct {
	// Driver selects the gorm dialector: "postgres" or "sqlite".
	Driver string `mapstructure:"DB_DRIVER" default:"postgres"`
	// DSN is the driver specific connection string.
	DSN string `mapstructure:"DB_DSN" required:"true"`
}

// RedisConfig holds the Redis connection and key lifetimes.
type RedisConfig struct {
	// URL is the Redis connection URL (redis://[:password@]host[:port][/database]).
	URL string `mapstructure:"REDIS_URL" required:"true"`
	// SyncLockTTL caps how long an order sync may hold the lock.
	SyncLockTTL time.Duration `mapstructure:"SYNC_LOCK_TTL" default:"10m"`
	// CategoryCacheTTL is how long browsed categories stay cached.
	CategoryCacheTTL time.Duration `mapstructure:"CATEGORY_CACHE_TTL" default:"6h"`
}

// ProxyConfig holds the outbound proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"HOOD_PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"HOOD_PROXY_HOST"`
	Port     int    `mapstructure:"HOOD_PROXY_PORT"`
	Username string `mapstructure:"HOOD_PROXY_USER"`
	Password string `mapstructure:"HOOD_PROXY_PASS"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Database.Driver != "postgres" && config.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", config.Database.Driver)
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
