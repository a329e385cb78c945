package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	Logger LoggerConfig

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	ElasticHosts    []string
	ElasticIndex    string
	ElasticTimeout  time.Duration
	ElasticUsername string
	ElasticPassword string

	// Legacy document-store path handling. Upstream exports sometimes carry
	// an internal test prefix that must be rewritten to the canonical share.
	FilesPathLegacyPrefix    string
	FilesPathCanonicalPrefix string

	// Placeholder image copied over censored trademark images.
	CensoredImagePath string

	// Pushgateway endpoint for run metrics. Empty disables pushing.
	MetricsPushURL string

	CEADBaseURL string
	CEADTimeout time.Duration
}

type LoggerConfig struct {
	Level string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "sisindex"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		Logger: LoggerConfig{
			Level: getenv("LOG_LEVEL", "info"),
		},
		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "sis"),
		DBUser:            getenv("DATABASE_USER", "sis"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),

		ElasticHosts:    parseList(getenv("ELASTIC_HOSTS", "http://localhost:9200")),
		ElasticIndex:    getenv("ELASTIC_INDEX", "uma"),
		ElasticTimeout:  getenvDuration("ELASTIC_TIMEOUT", 30*time.Second),
		ElasticUsername: strings.TrimSpace(getenv("ELASTIC_USERNAME", "")),
		ElasticPassword: strings.TrimSpace(getenv("ELASTIC_PASSWORD", "")),

		FilesPathLegacyPrefix:    getenv("FILES_PATH_LEGACY_PREFIX", `e:\poznach_test_sis\bear_tmpp_sis`),
		FilesPathCanonicalPrefix: getenv("FILES_PATH_CANONICAL_PREFIX", `\\bear\share`),

		CensoredImagePath: getenv("CENSORED_IMAGE_PATH", "assets/img/censored.jpg"),

		MetricsPushURL: strings.TrimSpace(getenv("METRICS_PUSH_URL", "")),

		CEADBaseURL: strings.TrimRight(getenv("CEAD_BASE_URL", ""), "/"),
		CEADTimeout: getenvDuration("CEAD_TIMEOUT", 10*time.Second),
	}
}

// Module wires configuration loading for the application.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewIndexationSettingsHolder),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
