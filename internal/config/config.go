package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hoopsight/courtload/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	LogLevel                    logging.Level
	DBURL                       string
	DBDisablePreparedBinary     bool
	CacheEnabled                bool
	CacheTTL                    time.Duration
	CORSAllowedOrigins          []string
	WeightsPath                 string
	ProfileWorkers              int
	InternalJobToken            string
	VisionEnabled               bool
	VisionBaseURL               string
	VisionTimeout               time.Duration
	VisionMaxRetries            int
	VisionCircuitEnabled        bool
	VisionCircuitFailureCount   int
	VisionCircuitOpenTimeout    time.Duration
	VisionCircuitHalfOpenMaxReq int
	VisionBlendWeight           float64
	PprofEnabled                bool
	PprofAddr                   string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
	UptraceEnabled              bool
	UptraceDSN                  string
	LogSinkEnabled              bool
	LogSinkEndpoint             string
	LogSinkToken                string
	LogSinkTimeout              time.Duration
	LogSinkMinLevel             logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	profileWorkers, err := getEnvAsInt("PROFILE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROFILE_WORKERS: %w", err)
	}
	if profileWorkers < 1 {
		return Config{}, fmt.Errorf("PROFILE_WORKERS must be >= 1")
	}

	visionEnabled, err := strconv.ParseBool(getEnv("VISION_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VISION_ENABLED: %w", err)
	}
	visionBaseURL := strings.TrimSpace(getEnv("VISION_BASE_URL", "http://localhost:5001"))
	if visionEnabled && visionBaseURL == "" {
		return Config{}, fmt.Errorf("VISION_BASE_URL is required when VISION_ENABLED=true")
	}
	visionTimeout, err := time.ParseDuration(getEnv("VISION_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VISION_TIMEOUT: %w", err)
	}
	if visionTimeout <= 0 {
		return Config{}, fmt.Errorf("VISION_TIMEOUT must be > 0")
	}
	visionMaxRetries, err := getEnvAsInt("VISION_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse VISION_MAX_RETRIES: %w", err)
	}
	if visionMaxRetries < 0 {
		return Config{}, fmt.Errorf("VISION_MAX_RETRIES must be >= 0")
	}
	visionCircuitEnabled, err := strconv.ParseBool(getEnv("VISION_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VISION_CIRCUIT_ENABLED: %w", err)
	}
	visionCircuitFailureCount, err := getEnvAsInt("VISION_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse VISION_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if visionCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("VISION_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	visionCircuitOpenTimeout, err := time.ParseDuration(getEnv("VISION_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VISION_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if visionCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("VISION_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	visionCircuitHalfOpenMaxReq, err := getEnvAsInt("VISION_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse VISION_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if visionCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("VISION_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	visionBlendWeight, err := getEnvAsFloat("VISION_BLEND_WEIGHT", 0.05)
	if err != nil {
		return Config{}, fmt.Errorf("parse VISION_BLEND_WEIGHT: %w", err)
	}
	if visionBlendWeight < 0 || visionBlendWeight > 1 {
		return Config{}, fmt.Errorf("VISION_BLEND_WEIGHT must be in [0,1]")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	logSinkEnabled, err := strconv.ParseBool(getEnv("LOG_SINK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_SINK_ENABLED: %w", err)
	}
	logSinkEndpoint := strings.TrimSpace(getEnv("LOG_SINK_ENDPOINT", ""))
	if logSinkEnabled && logSinkEndpoint == "" {
		return Config{}, fmt.Errorf("LOG_SINK_ENDPOINT is required when LOG_SINK_ENABLED=true")
	}
	logSinkTimeout, err := time.ParseDuration(getEnv("LOG_SINK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_SINK_TIMEOUT: %w", err)
	}
	if logSinkTimeout <= 0 {
		return Config{}, fmt.Errorf("LOG_SINK_TIMEOUT must be > 0")
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "courtload-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		LogLevel:                    parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		DBURL:                       strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:     dbDisablePreparedBinary,
		CacheEnabled:                cacheEnabled,
		CacheTTL:                    cacheTTL,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		WeightsPath:                 strings.TrimSpace(getEnv("MODEL_WEIGHTS_PATH", "")),
		ProfileWorkers:              profileWorkers,
		InternalJobToken:            strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		VisionEnabled:               visionEnabled,
		VisionBaseURL:               visionBaseURL,
		VisionTimeout:               visionTimeout,
		VisionMaxRetries:            visionMaxRetries,
		VisionCircuitEnabled:        visionCircuitEnabled,
		VisionCircuitFailureCount:   visionCircuitFailureCount,
		VisionCircuitOpenTimeout:    visionCircuitOpenTimeout,
		VisionCircuitHalfOpenMaxReq: visionCircuitHalfOpenMaxReq,
		VisionBlendWeight:           visionBlendWeight,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		LogSinkEnabled:              logSinkEnabled,
		LogSinkEndpoint:             logSinkEndpoint,
		LogSinkToken:                strings.TrimSpace(getEnv("LOG_SINK_TOKEN", "")),
		LogSinkTimeout:              logSinkTimeout,
		LogSinkMinLevel:             parseLogLevel(getEnv("LOG_SINK_MIN_LEVEL", "error")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

// UsePostgres reports whether a database URL was configured; without one the
// service runs on the seeded in-memory repositories.
func (c Config) UsePostgres() bool {
	return c.DBURL != ""
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
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
