package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL          string
	JWTSecret            string
	JWTIssuer            string
	JWTAudience          string
	TokenTTLSeconds      int64
	UploadRoot           string
	MaxUploadBytes       int64
	MetricsDiskPath      string
	MetricsSampleSeconds int
	SMTPHost             string
	SMTPPort             int
	SMTPUser             string
	SMTPPassword         string
	SMTPFrom             string
	ContactRecipient     string
	CorsOrigins          []string
}

func Load() Config {
	cfg := Config{
		DatabaseURL:          resolveDatabaseURL(),
		JWTSecret:            mustEnv("JWT_SECRET"),
		JWTIssuer:            envOr("JWT_ISSUER", "enertek"),
		JWTAudience:          envOr("JWT_AUDIENCE", "enertek-web"),
		TokenTTLSeconds:      int64(envOrInt("TOKEN_TTL_SECONDS", 14400)),
		UploadRoot:           envOr("UPLOAD_ROOT", "wwwroot/uploads"),
		MaxUploadBytes:       int64(envOrInt("MAX_UPLOAD_BYTES", 10<<20)),
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", "wwwroot/uploads"),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_SECONDS", 15),
		SMTPHost:             envOr("SMTP_HOST", ""),
		SMTPPort:             envOrInt("SMTP_PORT", 587),
		SMTPUser:             envOr("SMTP_USER", ""),
		SMTPPassword:         envOr("SMTP_PASSWORD", ""),
		SMTPFrom:             envOr("SMTP_FROM", ""),
		ContactRecipient:     envOr("CONTACT_RECIPIENT", ""),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
	}
	// A zero or negative interval would blow up time.NewTicker.
	if cfg.MetricsSampleSeconds < 1 {
		cfg.MetricsSampleSeconds = 1
	}
	return cfg
}

// resolveDatabaseURL accepts either a ready pgx DSN in DATABASE_URL or the
// postgres:// URI some hosting providers inject, normalized to the same form.
func resolveDatabaseURL() string {
	raw := mustEnv("DATABASE_URL")
	if !strings.Contains(raw, "://") {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if parsed.Scheme != "postgres" && parsed.Scheme != "postgresql" {
		return raw
	}
	password, _ := parsed.User.Password()
	host := parsed.Hostname()
	port := parsed.Port()
	if port == "" {
		port = "5432"
	}
	dbName := strings.TrimPrefix(parsed.Path, "/")
	sslMode := parsed.Query().Get("sslmode")
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, parsed.User.Username(), password, dbName, sslMode)
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
