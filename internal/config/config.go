package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/roto-draft/internal/platform/logging"
)

const (
	DataSourceFile = "file"
	DataSourceHTTP = "http"
)

// Config stores runtime configuration for the dashboard.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	LogLevel           logging.Level
	DataSource         string
	DataDir            string
	DataBaseURL        string
	DataFetchTimeout   time.Duration
	DataMasterFile     string
	DataHistoricalFile string
	DataADPFile        string
	DataBucketsFile    string
	CacheEnabled       bool
	CacheTTL           time.Duration
	CacheMaxEntries    int
	UptraceEnabled     bool
	UptraceDSN         string
	OutputPretty       bool
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	dataSource, err := parseDataSource(getEnv("DATA_SOURCE", DataSourceFile))
	if err != nil {
		return Config{}, err
	}
	dataDir := strings.TrimSpace(getEnv("DATA_DIR", "./data"))
	dataBaseURL := strings.TrimSpace(getEnv("DATA_BASE_URL", ""))
	if dataSource == DataSourceHTTP {
		if dataBaseURL == "" {
			return Config{}, fmt.Errorf("DATA_BASE_URL is required when DATA_SOURCE=http")
		}
		parsed, err := url.Parse(dataBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return Config{}, fmt.Errorf("invalid DATA_BASE_URL %q", dataBaseURL)
		}
	}
	dataFetchTimeout, err := time.ParseDuration(getEnv("DATA_FETCH_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_FETCH_TIMEOUT: %w", err)
	}
	if dataFetchTimeout <= 0 {
		return Config{}, fmt.Errorf("DATA_FETCH_TIMEOUT must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be >= 0")
	}

	cacheMaxEntries, err := strconv.Atoi(getEnv("CACHE_MAX_ENTRIES", "256"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_MAX_ENTRIES: %w", err)
	}
	if cacheMaxEntries < 0 {
		return Config{}, fmt.Errorf("CACHE_MAX_ENTRIES must be >= 0")
	}

	outputPretty, err := strconv.ParseBool(getEnv("OUTPUT_PRETTY", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OUTPUT_PRETTY: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "roto-draft"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", defaultLogLevel(appEnv))),
		DataSource:         dataSource,
		DataDir:            dataDir,
		DataBaseURL:        dataBaseURL,
		DataFetchTimeout:   dataFetchTimeout,
		DataMasterFile:     strings.TrimSpace(getEnv("DATA_MASTER_FILE", "players.json")),
		DataHistoricalFile: strings.TrimSpace(getEnv("DATA_HISTORICAL_FILE", "fantasy_roto_dashboard.json")),
		DataADPFile:        strings.TrimSpace(getEnv("DATA_ADP_FILE", "yahoo_adp.json")),
		DataBucketsFile:    strings.TrimSpace(getEnv("DATA_BUCKETS_FILE", "dans_buckets.json")),
		CacheEnabled:       cacheEnabled,
		CacheTTL:           cacheTTL,
		CacheMaxEntries:    cacheMaxEntries,
		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		OutputPretty:       outputPretty,
	}

	return cfg, nil
}

func defaultLogLevel(appEnv string) string {
	if appEnv == EnvDev {
		return "info"
	}
	return "warn"
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseDataSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case DataSourceFile, DataSourceHTTP:
		return value, nil
	default:
		return "", fmt.Errorf("invalid DATA_SOURCE %q: valid values are %s, %s", v, DataSourceFile, DataSourceHTTP)
	}
}
