package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dealerorders/internal/jobs"
	"dealerorders/internal/pkg/errs"

	"github.com/sirupsen/logrus"
)

const (
	defaultHTTPPort = "8080"
	defaultLockTTL  = 10 * time.Second
	defaultLockWait = 2 * time.Second
)

// Config holds process settings. Redis, SMTP and Pub/Sub are optional; an
// empty address, host or project disables the matching adapter.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	LockTTL       time.Duration
	LockWait      time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailTo       []string

	PubSubProjectID       string
	PubSubTopic           string
	GoogleCredentialsFile string

	LowStockCron string
	LogLevel     logrus.Level
}

// LoadConfig reads the settings through getenv, usually os.Getenv after
// godotenv has populated the environment.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:   withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:     getenv("DB_HOST"),
		DBPort:     withDefault(getenv("DB_PORT"), "5432"),
		DBUser:     getenv("DB_USER"),
		DBPassword: getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME"),
		DBSslMode:  withDefault(getenv("DB_SSLMODE"), "disable"),

		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),

		SMTPHost:     getenv("SMTP_HOST"),
		SMTPPort:     withDefault(getenv("SMTP_PORT"), "587"),
		SMTPUsername: getenv("SMTP_USERNAME"),
		SMTPPassword: getenv("SMTP_PASSWORD"),
		MailFrom:     getenv("MAIL_FROM"),
		MailTo:       splitList(getenv("MAIL_TO")),

		PubSubProjectID:       getenv("PUBSUB_PROJECT_ID"),
		PubSubTopic:           getenv("PUBSUB_TOPIC"),
		GoogleCredentialsFile: getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		LowStockCron: withDefault(getenv("LOW_STOCK_CRON"), jobs.DefaultLowStockAlertSpec),
	}

	var err error
	if cfg.LockTTL, err = parseDuration("LOCK_TTL", getenv("LOCK_TTL"), defaultLockTTL); err != nil {
		return Config{}, err
	}
	if cfg.LockWait, err = parseDuration("LOCK_WAIT", getenv("LOCK_WAIT"), defaultLockWait); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logrus.ParseLevel(withDefault(getenv("LOG_LEVEL"), "info")); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var err error
	if c.DBHost == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBUser == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.SMTPHost != "" && (c.MailFrom == "" || len(c.MailTo) == 0) {
		err = errors.Join(err, errs.NewValueIsRequiredError("MAIL_FROM and MAIL_TO"))
	}
	if c.PubSubProjectID != "" && c.PubSubTopic == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("PUBSUB_TOPIC"))
	}
	return err
}

// DSN is the Postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsInvalidError(key)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
