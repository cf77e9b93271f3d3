package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Cache      CacheConfig
	Cloudinary CloudinaryConfig
	Site       SiteConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string // empty disables cross-instance revalidation
	RedisURL           string
	OtelEnabled        bool
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Driver     string // postgres or sqlite
	Connection string
}

type AuthConfig struct {
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	AllowedDomains     []string
	AllowedEmails      []string
}

// ErrMissingJWTSecret stops the server from signing sessions with an empty key
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Validate reports settings the admin gate cannot run without
func (c AuthConfig) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

type CacheConfig struct {
	Driver           string // memory or redis
	PageTTLSeconds   int
	ExportTTLSeconds int
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type SiteConfig struct {
	URL               string
	Name              string
	DefaultCompetitor string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			OtelEnabled:        getEnv("OTEL_ENABLED", "false") == "true",
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", ""),
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:3000/api/auth/google/callback"),
			AllowedDomains:     getEnvAsList("AUTH_ALLOWED_DOMAINS", []string{"audius.co"}),
			AllowedEmails:      getEnvAsList("AUTH_ALLOWED_EMAILS", nil),
		},
		Cache: CacheConfig{
			Driver:           getEnv("CACHE_DRIVER", "memory"),
			PageTTLSeconds:   getEnvAsInt("PAGE_CACHE_TTL_SECONDS", 3600),
			ExportTTLSeconds: getEnvAsInt("EXPORT_CACHE_TTL_SECONDS", 3600),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
			Folder:    getEnv("CLOUDINARY_FOLDER", "compare-audius/logos"),
		},
		Site: SiteConfig{
			URL:               strings.TrimRight(getEnv("SITE_URL", "https://compare.audius.co"), "/"),
			Name:              getEnv("SITE_NAME", "Audius Compare"),
			DefaultCompetitor: getEnv("DEFAULT_COMPETITOR", "soundcloud"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key string, fallback []string) []string {
	strValue, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(strValue, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
