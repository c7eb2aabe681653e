// Package config arma la configuración del proceso en capas:
// defaults, archivo YAML opcional, entorno (.env incluido) y flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	MailDriverLog   = "log"
	MailDriverSMTP  = "smtp"
	MailDriverRelay = "relay"
)

type Config struct {
	HTTPAddr        string        `yaml:"http_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	DBDSN         string `yaml:"db_dsn"`
	DBAutoMigrate bool   `yaml:"db_auto_migrate"`

	JWTSecret   string        `yaml:"jwt_secret"`
	JWTTTL      time.Duration `yaml:"jwt_ttl"`
	AuthDevMode bool          `yaml:"auth_dev_mode"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`

	MailDriver     string `yaml:"mail_driver"`
	MailFrom       string `yaml:"mail_from"`
	SMTPHost       string `yaml:"smtp_host"`
	SMTPPort       int    `yaml:"smtp_port"`
	SMTPUser       string `yaml:"smtp_user"`
	SMTPPassword   string `yaml:"smtp_password"`
	MailRelayURL   string `yaml:"mail_relay_url"`
	MailRelayToken string `yaml:"mail_relay_token"`

	S3Bucket    string `yaml:"s3_bucket"`
	S3Region    string `yaml:"s3_region"`
	S3Endpoint  string `yaml:"s3_endpoint"`
	S3PathStyle bool   `yaml:"s3_path_style"`
	S3PublicURL string `yaml:"s3_public_url"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	AppName   string `yaml:"app_name"`
}

func Defaults() Config {
	return Config{
		HTTPAddr:        ":8080",
		ShutdownTimeout: 10 * time.Second,
		JWTTTL:          7 * 24 * time.Hour,
		KafkaTopic:      "pawfam.lifecycle",
		MailDriver:      MailDriverLog,
		MailFrom:        "no-reply@pawfam.app",
		SMTPPort:        587,
		S3Region:        "us-east-1",
		LogLevel:        "info",
		LogFormat:       "text",
		AppName:         "pawfam-api",
	}
}

// Load aplica las capas en orden; args son los argumentos sin el nombre del binario.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("pawfam-api", pflag.ContinueOnError)
	addr := fs.String("addr", "", "HTTP listen address (e.g. :8080)")
	dsn := fs.String("dsn", "", "Postgres DSN; empty uses in-memory storage")
	file := fs.String("config", "", "YAML config file")
	migrate := fs.Bool("migrate", false, "apply database migrations on startup")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// .env es opcional; las variables ya definidas no se pisan.
	_ = godotenv.Load()

	cfg := Defaults()

	path := *file
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	if fs.Changed("addr") {
		cfg.HTTPAddr = *addr
	}
	if fs.Changed("dsn") {
		cfg.DBDSN = *dsn
	}
	if fs.Changed("migrate") {
		cfg.DBAutoMigrate = *migrate
	}

	return cfg, cfg.Validate()
}

func loadYAML(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	var errs []error
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = b
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = d
		}
	}

	// PORT (estilo PaaS) pierde contra HTTP_ADDR si vienen ambos.
	if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
		cfg.HTTPAddr = ":" + strings.TrimSpace(v)
	}
	str("HTTP_ADDR", &cfg.HTTPAddr)
	duration("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)

	str("DB_DSN", &cfg.DBDSN)
	boolean("DB_AUTO_MIGRATE", &cfg.DBAutoMigrate)

	str("JWT_SECRET", &cfg.JWTSecret)
	duration("JWT_TTL", &cfg.JWTTTL)
	boolean("AUTH_DEV_MODE", &cfg.AuthDevMode)

	str("REDIS_ADDR", &cfg.RedisAddr)
	str("REDIS_PASSWORD", &cfg.RedisPassword)
	integer("REDIS_DB", &cfg.RedisDB)

	if v, ok := lookup("KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = splitCSV(v)
	}
	str("KAFKA_TOPIC", &cfg.KafkaTopic)

	str("MAIL_DRIVER", &cfg.MailDriver)
	str("MAIL_FROM", &cfg.MailFrom)
	str("SMTP_HOST", &cfg.SMTPHost)
	integer("SMTP_PORT", &cfg.SMTPPort)
	str("SMTP_USER", &cfg.SMTPUser)
	str("SMTP_PASSWORD", &cfg.SMTPPassword)
	str("MAIL_RELAY_URL", &cfg.MailRelayURL)
	str("MAIL_RELAY_TOKEN", &cfg.MailRelayToken)

	str("S3_BUCKET", &cfg.S3Bucket)
	str("S3_REGION", &cfg.S3Region)
	str("S3_ENDPOINT", &cfg.S3Endpoint)
	boolean("S3_PATH_STYLE", &cfg.S3PathStyle)
	str("S3_PUBLIC_URL", &cfg.S3PublicURL)

	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("APP_NAME", &cfg.AppName)

	return errors.Join(errs...)
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.JWTSecret) == "" && !c.AuthDevMode {
		errs = append(errs, errors.New("config: JWT_SECRET is required (or set AUTH_DEV_MODE=true)"))
	}
	switch c.MailDriver {
	case MailDriverLog:
	case MailDriverSMTP:
		if c.SMTPHost == "" {
			errs = append(errs, errors.New("config: SMTP_HOST is required for the smtp mail driver"))
		}
	case MailDriverRelay:
		if c.MailRelayURL == "" {
			errs = append(errs, errors.New("config: MAIL_RELAY_URL is required for the relay mail driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown MAIL_DRIVER %q", c.MailDriver))
	}
	if c.DBAutoMigrate && c.DBDSN == "" {
		errs = append(errs, errors.New("config: --migrate requires a DB_DSN"))
	}
	return errors.Join(errs...)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
