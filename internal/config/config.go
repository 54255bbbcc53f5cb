package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/eva-gallery/eva-nft/internal/adapter"
	"github.com/eva-gallery/eva-nft/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	Environment string `mapstructure:"environment"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowOrigins lists the origins allowed to call the API; empty allows all
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`
}

// MintingConfig holds the minting service configuration
type MintingConfig struct {
	URL string `mapstructure:"url"`
	// Timeout bounds the mint request
	Timeout time.Duration `mapstructure:"timeout"`
	// HTTPTimeout bounds each attempt of every other request to the minting service and IPFS gateway
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	// LookupConcurrency bounds the house wallet lookups running at once
	LookupConcurrency int `mapstructure:"lookup_concurrency"`
	// MintsPerMinute caps outgoing mint requests; zero disables the limit
	MintsPerMinute int `mapstructure:"mints_per_minute"`
}

// TrialMintBudget is the longest a trial mint request can take: the mint itself,
// then the house wallet lookups and the metadata fetch, each of which may
// retry for the whole backoff window before its last attempt.
func (c *MintingConfig) TrialMintBudget() time.Duration {
	retried := adapter.DefaultRetryConfig().MaxElapsedTime + c.HTTPTimeout
	return c.Timeout + 2*retried
}

// URIConfig holds URI normalization configuration
type URIConfig struct {
	IPFSGateway string `mapstructure:"ipfs_gateway"`
}

// LinksConfig holds the bases of the explorer links stored with wallets, NFTs and collections
type LinksConfig struct {
	KodadotURL string `mapstructure:"kodadot_url"`
	SubscanURL string `mapstructure:"subscan_url"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Minting    MintingConfig  `mapstructure:"minting"`
	URI        URIConfig      `mapstructure:"uri"`
	Links      LinksConfig    `mapstructure:"links"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("minting.timeout", "45s")
	v.SetDefault("minting.http_timeout", "15s")
	v.SetDefault("minting.lookup_concurrency", 8)
	v.SetDefault("uri.ipfs_gateway", domain.DEFAULT_IPFS_GATEWAY)
	v.SetDefault("links.kodadot_url", domain.DEFAULT_KODADOT_URL)
	v.SetDefault("links.subscan_url", domain.DEFAULT_SUBSCAN_URL)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings the service cannot start without
func (c *APIConfig) Validate() error {
	if c.Minting.URL == "" {
		return fmt.Errorf("minting.url is required")
	}
	if c.Minting.Timeout <= 0 {
		return fmt.Errorf("minting.timeout must be positive")
	}
	// zero disables the server write timeout
	if c.Server.WriteTimeout > 0 {
		writeTimeout := time.Duration(c.Server.WriteTimeout) * time.Second
		if budget := c.Minting.TrialMintBudget(); writeTimeout < budget {
			return fmt.Errorf("server.write_timeout (%s) is shorter than a trial mint can take (%s)", writeTimeout, budget)
		}
	}
	return nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in the current directory, cmd/<service>/ and config/
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("EVA_NFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"environment",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allow_origins",
		// Minting
		"minting.url",
		"minting.timeout",
		"minting.http_timeout",
		"minting.lookup_concurrency",
		"minting.mints_per_minute",
		// URI
		"uri.ipfs_gateway",
		// Links
		"links.kodadot_url",
		"links.subscan_url",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
