package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Migrations MigrationsConfig `yaml:"migrations"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Mail       MailConfig       `yaml:"mail"`
	Report     ReportConfig     `yaml:"report"`
	Backup     BackupConfig     `yaml:"backup"`
}

// AppConfig holds process-wide settings.
type AppConfig struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"development"`
}

// IsProduction reports whether error details must be hidden from clients.
func (c AppConfig) IsProduction() bool { return c.Env == "production" }

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// SplitList splits a comma-separated setting, dropping empty items.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// MigrationsConfig controls goose migrations.
type MigrationsConfig struct {
	Dir         string `yaml:"dir"          env:"MIGRATIONS_DIR"          env-default:"migrations"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"MIGRATIONS_AUTO_MIGRATE" env-default:"false"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"wigac"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"168h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	// Format is json or text. Empty picks json in production, text otherwise.
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// RateLimitConfig limits unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	AuthRequests int           `yaml:"auth_requests" env:"RATE_LIMIT_AUTH_REQUESTS" env-default:"20"`
	AuthWindow   time.Duration `yaml:"auth_window"   env:"RATE_LIMIT_AUTH_WINDOW"   env-default:"1m"`
}

// MailConfig holds SMTP settings. Mail is disabled when Host is empty.
type MailConfig struct {
	Host     string `yaml:"host"     env:"EMAIL_HOST"`
	Port     int    `yaml:"port"     env:"EMAIL_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"EMAIL_USER"`
	Password string `yaml:"password" env:"EMAIL_PASS"`
	From     string `yaml:"from"     env:"EMAIL_FROM"     env-default:"noreply@wigac.com"`
}

// Enabled reports whether an SMTP host is configured.
func (c MailConfig) Enabled() bool { return c.Host != "" }

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	Timezone string `yaml:"timezone" env:"REPORT_TIMEZONE" env-default:"Europe/Madrid"`
	Issuer   string `yaml:"issuer"   env:"REPORT_ISSUER"   env-default:"Wigac Manager"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// BackupConfig holds database dump settings.
type BackupConfig struct {
	PgDumpPath string        `yaml:"pg_dump_path" env:"BACKUP_PG_DUMP_PATH" env-default:"pg_dump"`
	TempDir    string        `yaml:"temp_dir"     env:"BACKUP_TEMP_DIR"     env-default:"/tmp"`
	Timeout    time.Duration `yaml:"timeout"      env:"BACKUP_TIMEOUT"      env-default:"5m"`
}
