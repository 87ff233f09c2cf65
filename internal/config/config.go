package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Mailer   MailerConfig   `yaml:"mailer"`
	Gallery  GalleryConfig  `yaml:"gallery"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
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

// MailerConfig holds EmailJS delivery settings. With Enabled false the
// server runs without outbound mail and submissions report emailSent=false.
type MailerConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"MAILER_ENABLED"        env-default:"false"`
	BaseURL       string        `yaml:"base_url"       env:"MAILER_BASE_URL"       env-default:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID     string        `yaml:"service_id"     env:"MAILER_SERVICE_ID"`
	TemplateID    string        `yaml:"template_id"    env:"MAILER_TEMPLATE_ID"`
	PublicKey     string        `yaml:"public_key"     env:"MAILER_PUBLIC_KEY"`
	AdminEmail    string        `yaml:"admin_email"    env:"MAILER_ADMIN_EMAIL"`
	Timeout       time.Duration `yaml:"timeout"        env:"MAILER_TIMEOUT"        env-default:"10s"`
	NotifyTimeout time.Duration `yaml:"notify_timeout" env:"MAILER_NOTIFY_TIMEOUT" env-default:"10s"`
}

// GalleryConfig holds gallery presentation settings.
type GalleryConfig struct {
	PageSize int `yaml:"page_size" env:"GALLERY_PAGE_SIZE" env-default:"9"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
