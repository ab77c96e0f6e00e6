package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	JWTSecret  string

	RedisAddr string
	RedisDB   int
	RedisPass string

	// CORSOrigins is the allow-list for browser clients. Empty means allow all.
	CORSOrigins []string

	// UploadDir is the root of the static-served directory holding uploaded
	// gallery images.
	UploadDir string

	// PublicBaseURL is where the web client is reachable; used for the
	// payment success/cancel redirect URLs.
	PublicBaseURL string

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SynagogueEmail string

	KesherAPIURL   string
	KesherUsername string
	KesherPassword string
	KesherTerminal string
	KesherTestMode bool

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "3000"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/shul?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		CORSOrigins:    getEnvList("CORS_ORIGINS"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:3001"),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SynagogueEmail: os.Getenv("SYNAGOGUE_EMAIL"),
		KesherAPIURL:   os.Getenv("KESHER_API_URL"),
		KesherUsername: os.Getenv("KESHER_USERNAME"),
		KesherPassword: os.Getenv("KESHER_PASSWORD"),
		KesherTerminal: os.Getenv("KESHER_TERMINAL_NUMBER"),
		KesherTestMode: getEnv("KESHER_TEST_MODE", "false") == "true",
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
