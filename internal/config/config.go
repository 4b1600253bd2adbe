package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	Kafka Kafka
	Email Email

	// SendEmailEnabled switches composed messages from mailto links to
	// delivery through the configured provider.
	SendEmailEnabled bool   `env:"SEND_EMAIL_ENABLED" envDefault:"false"`
	TemplatesPath    string `env:"TEMPLATES_PATH"`
}

type Kafka struct {
	BootstrapServers  string        `env:"KAFKA_BOOTSTRAP_SERVERS,required"`
	GroupID           string        `env:"KAFKA_GROUP_ID" envDefault:"notification_service_group"`
	QuickConnectTopic string        `env:"QUICK_CONNECT_TOPIC" envDefault:"quick_connect_actions"`
	AccountTopic      string        `env:"STRIPE_ACCOUNT_TOPIC" envDefault:"stripe_account_updates"`
	PollTimeout       time.Duration `env:"KAFKA_POLL_TIMEOUT" envDefault:"100ms"`
}

type Email struct {
	Provider     string        `env:"EMAIL_PROVIDER" envDefault:"smtp"`
	From         string        `env:"MAIL_FROM"`
	SMTPHost     string        `env:"SMTP_HOST"`
	SMTPPort     string        `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string        `env:"SMTP_USER"`
	SMTPPassword string        `env:"SMTP_PASSWORD"`
	AWSRegion    string        `env:"AWS_REGION" envDefault:"us-east-1"`
	MaxAttempts  int           `env:"SEND_MAX_ATTEMPTS" envDefault:"3"`
	InitialDelay time.Duration `env:"SEND_INITIAL_DELAY" envDefault:"1s"`
}

// Load reads the optional .env files and parses the environment.
func Load(dotenvPaths ...string) (*Config, error) {
	for _, p := range dotenvPaths {
		if err := godotenv.Load(p); err != nil {
			log.WithField("path", p).Warn("Could not load .env file.")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Kafka.BootstrapServers = strings.Trim(cfg.Kafka.BootstrapServers, "\"")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Email.Provider {
	case "smtp":
		if c.Email.SMTPHost == "" || c.Email.SMTPUser == "" || c.Email.SMTPPassword == "" || c.Email.From == "" {
			return fmt.Errorf("smtp provider requires SMTP_HOST, SMTP_USER, SMTP_PASSWORD and MAIL_FROM")
		}
	case "ses":
		if c.Email.From == "" {
			return fmt.Errorf("ses provider requires MAIL_FROM")
		}
	case "console":
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q", c.Email.Provider)
	}
	if c.Email.MaxAttempts < 1 {
		return fmt.Errorf("SEND_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

// MigrationURL points golang-migrate at a dedicated migrations table so the
// service does not collide with other schemas in the same database.
func (c *Config) MigrationURL() string {
	if strings.Contains(c.DatabaseURL, "?") {
		return c.DatabaseURL + "&x-migrations-table=notification_schema_migrations"
	}
	return c.DatabaseURL + "?x-migrations-table=notification_schema_migrations"
}

// ConsumerGroup gives every topic its own consumer group so a rebalance on
// one topic leaves the other alone.
func ConsumerGroup(k Kafka, topic string) string {
	return k.GroupID + "." + topic
}
