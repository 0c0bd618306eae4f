package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	PDF      PDFConfig
	Media    MediaConfig
	Storage  StorageConfig
	Seed     SeedConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string

	// SaveCoalesceWindow is the quiet period before buffered editor
	// writes hit the database.
	SaveCoalesceWindow time.Duration
	WizardSessionTTL   time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration

	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int

	DefaultTTL time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type PDFConfig struct {
	// WebSocket URL of the headless Chrome instance used for PDF export.
	ChromeWSURL string
	Timeout     time.Duration
}

type MediaConfig struct {
	// Hosts the video proxy is allowed to fetch from.
	AllowedHosts []string
	ProxyTimeout time.Duration
}

type StorageConfig struct {
	// Root directory for uploaded files (profile images, documents).
	UploadDir string
	// Public path prefix under which uploads are served.
	PublicPrefix string
	MaxUploadMB  int
}

type SeedConfig struct {
	// AdminEmail/AdminPassword bootstrap the first admin account when
	// set. Existing accounts are never overwritten.
	AdminEmail    string
	AdminPassword string
	// DemoData loads sample catalog rows into empty tables.
	DemoData bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:            opt("APP_NAME", "talento-joven"),
		Environment:        opt("APP_ENV", "development"),
		HTTPPort:           opt("HTTP_PORT", "8080"),
		SaveCoalesceWindow: time.Duration(intEnv("SAVE_COALESCE_MS", 800)) * time.Millisecond,
		WizardSessionTTL:   durationEnv("WIZARD_SESSION_TTL_SECONDS", 24*3600),
	}

	cfg.Database = DatabaseConfig{
		DBHost:              opt("DB_HOST", "localhost"),
		DBPort:              opt("DB_PORT", "5432"),
		DBName:              req("DB_NAME"),
		DBUser:              req("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBSSLMode:           opt("DB_SSL_MODE", "disable"),
		ConnectTimeout:      durationEnv("DB_CONNECT_TIMEOUT_SECONDS", 10),
		PoolMaxConns:        int32(intEnv("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:        int32(intEnv("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime: durationEnv("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 3600),
		PoolMaxConnIdleTime: durationEnv("DB_POOL_MAX_CONN_IDLE_SECONDS", 1800),
		MigrationsDir:       opt("DB_MIGRATIONS_DIR", "internal/database/migrations"),
	}

	cfg.Redis = RedisConfig{
		Host:       opt("REDIS_HOST", "localhost"),
		Port:       opt("REDIS_PORT", "6379"),
		Password:   os.Getenv("REDIS_PASSWORD"),
		DB:         intEnv("REDIS_DB", 0),
		DefaultTTL: durationEnv("REDIS_TTL_SECONDS", 600),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationEnv("JWT_ACCESS_EXPIRES_SECONDS", 900),
		RefreshExpiresIn: durationEnv("JWT_REFRESH_EXPIRES_SECONDS", 7*24*3600),
	}

	cfg.PDF = PDFConfig{
		ChromeWSURL: opt("PDF_CHROME_WS_URL", "ws://localhost:3000"),
		Timeout:     durationEnv("PDF_TIMEOUT_SECONDS", 60),
	}

	cfg.Media = MediaConfig{
		AllowedHosts: splitCSV(opt("MEDIA_ALLOWED_HOSTS", "")),
		ProxyTimeout: durationEnv("MEDIA_PROXY_TIMEOUT_SECONDS", 30),
	}

	cfg.Storage = StorageConfig{
		UploadDir:    opt("UPLOAD_DIR", "uploads"),
		PublicPrefix: opt("UPLOAD_PUBLIC_PREFIX", "/files"),
		MaxUploadMB:  intEnv("UPLOAD_MAX_MB", 5),
	}

	cfg.Seed = SeedConfig{
		AdminEmail:    strings.ToLower(opt("SEED_ADMIN_EMAIL", "")),
		AdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
		DemoData:      opt("SEED_DEMO_DATA", "false") == "true",
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// durationEnv reads an integer number of seconds.
func durationEnv(key string, defSeconds int) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	def := time.Duration(defSeconds) * time.Second
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
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
