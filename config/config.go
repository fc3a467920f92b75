package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileEnv names the environment variable pointing at an optional YAML config file.
const ConfigFileEnv = "INSIDERJOBS_CONFIG"

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID    string `koanf:"project_id"`
	UploadBucket string `koanf:"upload_bucket"`

	// Server
	Port               string `koanf:"port"`
	Debug              bool   `koanf:"debug"`
	AllowedOrigins     string `koanf:"allowed_origins"`
	FrontendURL        string `koanf:"frontend_url"`
	HTTPTimeoutSeconds int    `koanf:"http_timeout_seconds"`
	MaxUploadMB        int    `koanf:"max_upload_mb"`

	// Authentication
	JWTSecret      string `koanf:"jwt_secret"`
	JWTExpiryHours int    `koanf:"jwt_expiry_hours"`
	GoogleClientID string `koanf:"google_client_id"`

	// GeoNames city search
	GeoNamesUsername      string        `koanf:"geonames_username"`
	GeoNamesURL           string        `koanf:"geonames_url"`
	GeoNamesTimeout       time.Duration `koanf:"geonames_timeout"`
	GeoNamesRatePerSecond float64       `koanf:"geonames_rate_per_second"`
	GeoNamesBurst         int           `koanf:"geonames_burst"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Port:               "5000",
		Debug:              false,
		AllowedOrigins:     "http://localhost:5173,http://localhost:3000",
		FrontendURL:        "http://localhost:5173",
		HTTPTimeoutSeconds: 30,
		MaxUploadMB:        5,

		JWTSecret:      "your-secret-key-change-in-production",
		JWTExpiryHours: 24 * 7,

		GeoNamesUsername:      "demo",
		GeoNamesURL:           "http://api.geonames.org/searchJSON",
		GeoNamesTimeout:       5 * time.Second,
		GeoNamesRatePerSecond: 5,
		GeoNamesBurst:         10,
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, &ConfigError{Field: ConfigFileEnv, Message: "failed to read config file: " + err.Error()}
		}
	}

	// PORT -> port, GEONAMES_USERNAME -> geonames_username. Empty values are
	// treated as unset so they never clobber a default.
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, &ConfigError{Field: "env", Message: "failed to read environment: " + err.Error()}
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, &ConfigError{Field: "config", Message: "failed to decode configuration: " + err.Error()}
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	// ProjectID is required for Firestore
	if c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Firestore"}
	}

	// Uploads (company logos, resumes) go to Cloud Storage
	if c.UploadBucket == "" {
		return &ConfigError{Field: "UPLOAD_BUCKET", Message: "UPLOAD_BUCKET is required for file uploads"}
	}

	if c.JWTSecret == "" {
		return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET must not be empty"}
	}
	if c.JWTExpiryHours <= 0 {
		return &ConfigError{Field: "JWT_EXPIRY_HOURS", Message: "JWT_EXPIRY_HOURS must be positive"}
	}
	if c.GeoNamesTimeout <= 0 {
		return &ConfigError{Field: "GEONAMES_TIMEOUT", Message: "GEONAMES_TIMEOUT must be positive"}
	}
	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}
	if len(c.Origins()) == 0 {
		return &ConfigError{Field: "ALLOWED_ORIGINS", Message: "ALLOWED_ORIGINS must list at least one origin"}
	}

	return nil
}

// Origins returns the CORS allow-list as a slice
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// HTTPTimeout returns the server-side request timeout
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// MaxUploadBytes returns the multipart upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
