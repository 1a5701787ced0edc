package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Source  SourceConfig
	SMTP    SMTPConfig
	Mail    MailConfig
	Logging LogConfig
}

type SourceConfig struct {
	PrivatURL      string        `env:"RATECHECK_PRIVAT_URL" env-default:"https://api.privatbank.ua/p24api/pubinfo?exchange&json&coursid=11"`
	MonoURL        string        `env:"RATECHECK_MONO_URL" env-default:"https://api.monobank.ua/bank/currency"`
	RequestTimeout time.Duration `env:"RATECHECK_REQUEST_TIMEOUT" env-default:"10s"`
}

type SMTPConfig struct {
	Host     string `env:"RATECHECK_SMTP_HOST" env-default:"localhost"`
	Port     int    `env:"RATECHECK_SMTP_PORT" env-default:"25"`
	Username string `env:"RATECHECK_SMTP_USERNAME"`
	Password string `env:"RATECHECK_SMTP_PASSWORD"`
	// TLS is one of mandatory, opportunistic, none
	TLS string `env:"RATECHECK_SMTP_TLS" env-default:"opportunistic"`
}

type MailConfig struct {
	From string `env:"RATECHECK_MAIL_FROM" env-default:"your_email@example.com"`
	To   string `env:"RATECHECK_MAIL_TO" env-default:"recipient@example.com"`
}

type LogConfig struct {
	Level string `env:"RATECHECK_LOG_LEVEL" env-default:"info"`
}

// Load reads variables from the optional .env files and then from the environment.
// Environment variables win over the file
func Load(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	for _, raw := range []string{c.Source.PrivatURL, c.Source.MonoURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: source url %q: %v", ErrInvalidConfig, raw, err)
		}

		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: source url %q is not absolute", ErrInvalidConfig, raw)
		}
	}

	if c.Source.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidConfig)
	}

	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("%w: smtp port %d", ErrInvalidConfig, c.SMTP.Port)
	}

	switch c.SMTP.TLS {
	case "mandatory", "opportunistic", "none":
	default:
		return fmt.Errorf("%w: smtp tls policy %q", ErrInvalidConfig, c.SMTP.TLS)
	}

	return nil
}

// PrivatEndpoint returns the parsed PrivatBank URL, Validate guarantees it parses
func (c *Config) PrivatEndpoint() url.URL {
	return mustParse(c.Source.PrivatURL)
}

// MonoEndpoint returns the parsed Monobank URL, Validate guarantees it parses
func (c *Config) MonoEndpoint() url.URL {
	return mustParse(c.Source.MonoURL)
}

func mustParse(raw string) url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("parse %q: %v", raw, err))
	}

	return *u
}
