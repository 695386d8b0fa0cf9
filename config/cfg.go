package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	httpapi "github.com/chrisprideC9/shopping-scraper-graphs/internal/api/http"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/ratelimit"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/report"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/store"
	"github.com/chrisprideC9/shopping-scraper-graphs/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	Store  store.Config   `mapstructure:"store"`
	Logger log.Config     `mapstructure:"logger"`
	HTTP   httpapi.Config `mapstructure:"http"`
	Report report.Config  `mapstructure:"report"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// A .env file in the working directory is loaded first when present and
// never overrides variables that are already set.
// Nested config keys use double underscore, e.g., STORE__DSN for store.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	// e.g., store.dsn -> STORE__DSN, http.rate_limit.rate -> HTTP__RATE_LIMIT__RATE
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	// Bind common environment variables to config keys
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/shopping-scraper-graphs")
		v.AddConfigPath("/etc/shopping-scraper-graphs")
		// Try to read config, but don't fail if it doesn't exist
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.Store.DSN == "" {
		config.Store.DSN = postgresDSN()
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", store.DriverPostgres)
	v.SetDefault("store.max_open_connections", 10)
	v.SetDefault("store.max_idle_connections", 5)
	v.SetDefault("store.query_timeout", 15*time.Second)

	v.SetDefault("logger.level", 0)

	v.SetDefault("http.port", "8081")
	v.SetDefault("http.request_timeout", 30*time.Second)
	rl := ratelimit.DefaultConfig()
	v.SetDefault("http.rate_limit.rate", rl.Rate)
	v.SetDefault("http.rate_limit.burst", rl.Burst)
	v.SetDefault("http.rate_limit.idle_ttl", rl.IdleTTL)

	v.SetDefault("report.default_days", report.DefaultConfig().DefaultDays)
}

// postgresDSN assembles a Postgres DSN from the Supabase connection string or
// the individual POSTGRES_* variables. It returns "" when neither is set.
func postgresDSN() string {
	if dsn := os.Getenv("SUPABASE_DB_URL"); dsn != "" {
		return dsn
	}
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	sslmode := os.Getenv("POSTGRES_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD")),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + os.Getenv("POSTGRES_DB"),
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (STORE__DSN) and flat keys (STORE_DSN)
func bindEnvVars(v *viper.Viper) {
	// Store
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.dsn", "STORE_DSN", "DATABASE_URL")
	v.BindEnv("store.max_open_connections", "STORE_MAX_OPEN_CONNECTIONS")
	v.BindEnv("store.max_idle_connections", "STORE_MAX_IDLE_CONNECTIONS")
	v.BindEnv("store.query_timeout", "STORE_QUERY_TIMEOUT")
	v.BindEnv("store.tls_ca_path", "STORE_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")
	v.BindEnv("http.rate_limit.rate", "HTTP_RATE_LIMIT")
	v.BindEnv("http.rate_limit.burst", "HTTP_RATE_BURST")

	// Report
	v.BindEnv("report.default_days", "REPORT_DEFAULT_DAYS")
}
