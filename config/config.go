package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// Token store backends
const (
	TokenStoreFile  = "file"
	TokenStoreMongo = "mongo"
	TokenStoreRedis = "redis"
)

// Config holds the project config values
type Config struct {
	Env     string
	Port    string
	BaseURL string

	// remote coordination API
	APIBaseURL string
	APITimeout time.Duration

	// durable token storage
	TokenStore   string
	TokenFile    string
	URL          string
	DatabaseName string
	RedisAddr    string
	RedisPass    string
	RedisDB      int

	// optional fixed device location, tried before the browser's
	DeviceLatitude     string
	DeviceLongitude    string
	GeolocationTimeout time.Duration

	NotificationPollInterval time.Duration

	// operator basic auth in front of the whole dashboard
	DashboardUsername     string
	DashboardPasswordHash string

	LoginRateLimit int
}

// New sets up all config related services
func New() *Config {
	// a missing .env is normal outside of local development
	_ = godotenv.Load()

	env := getEnv("ENV", "local")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Env:                      env,
		Port:                     getEnv("PORT", "8080"),
		BaseURL:                  getEnv("BASE_URL", "http://localhost:8080"),
		APIBaseURL:               strings.TrimRight(getEnv("API_BASE_URL", "http://127.0.0.1:8000/api"), "/"),
		APITimeout:               getEnvDuration("API_TIMEOUT", 30*time.Second),
		TokenStore:               getEnv("TOKEN_STORE", TokenStoreFile),
		TokenFile:                getEnv("TOKEN_FILE", ".emergency-dashboard/token"),
		URL:                      os.Getenv("DB_URI"),
		DatabaseName:             getEnv("DB_NAME", "emergency_dashboard"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvInt("REDIS_DB", 0),
		DeviceLatitude:           os.Getenv("DEVICE_LATITUDE"),
		DeviceLongitude:          os.Getenv("DEVICE_LONGITUDE"),
		GeolocationTimeout:       getEnvDuration("GEOLOCATION_TIMEOUT", 10*time.Second),
		NotificationPollInterval: getEnvDuration("NOTIFICATION_POLL_INTERVAL", 30*time.Second),
		DashboardUsername:        os.Getenv("DASHBOARD_USERNAME"),
		DashboardPasswordHash:    os.Getenv("DASHBOARD_PASSWORD_HASH"),
		LoginRateLimit:           getEnvInt("LOGIN_RATE_LIMIT", 5),
	}
}

// OperatorAuthEnabled reports whether the dashboard sits behind basic auth
func (c Config) OperatorAuthEnabled() bool {
	return c.DashboardUsername != "" && c.DashboardPasswordHash != ""
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	body := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	if err != nil {
		body.Response.Error = err.Error()
	}
	b, _ := json.Marshal(body)
	w.Write(b)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		zap.S().Warnw("invalid integer in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		zap.S().Warnw("invalid duration in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}
