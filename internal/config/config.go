package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Storage backend names accepted in LOG_BACKEND.
const (
	BackendLocal = "local"
	BackendMinIO = "minio"
)

// LogsConfig controls where uploaded log documents are persisted.
type LogsConfig struct {
	Backend string `validate:"oneof=local minio"`
	Dir     string `validate:"required"`
}

// MinIOConfig holds object storage settings, used when LogsConfig.Backend is "minio".
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ProxyConfig holds settings for the PAC (proxy auto-configuration) endpoint.
type ProxyConfig struct {
	Address string `validate:"required,hostname_port"`
}

// CheckConfig drives the /checkthis kill-switch responses. Codes are matched
// exactly; an empty list means the corresponding flag is always false.
type CheckConfig struct {
	DeleteCodes []string
	QuitCodes   []string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port  string `validate:"required,numeric"`
	Env   string
	Logs  LogsConfig
	MinIO MinIOConfig
	Proxy ProxyConfig
	Check CheckConfig
}

// Debug reports whether the server runs with debug behavior enabled.
func (c *AppConfig) Debug() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
//
// FLASK_ENV is honored as a fallback for APP_ENV so deployments of the previous
// incarnation of this server keep their debug toggle.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("APP_ENV", os.Getenv("FLASK_ENV")),
		Logs: LogsConfig{
			Backend: getEnv("LOG_BACKEND", BackendLocal),
			Dir:     getEnv("LOG_DIR", "logs"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Proxy: ProxyConfig{
			Address: getEnv("PROXY_ADDRESS", "127.0.0.1:8080"),
		},
		Check: CheckConfig{
			DeleteCodes: getEnvList("CHECK_DELETE_CODES"),
			QuitCodes:   getEnvList("CHECK_QUIT_CODES"),
		},
	}
}

var validate = validator.New()

// Validate checks the loaded configuration for structural errors before the
// server starts. MinIO settings are only validated when that backend is selected.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Logs.Backend == BackendMinIO {
		if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("invalid configuration: LOG_BACKEND=minio requires MINIO_ENDPOINT and MINIO_BUCKET")
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
