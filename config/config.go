package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey      string   `envconfig:"API_KEY"`
		AdminEmails []string `envconfig:"ADMIN_EMAILS"`
	} `envconfig:"APP"`

	// Booking holds the intake policy. Zero values leave a rule unconstrained.
	Booking struct {
		AdvanceNoticeDays int    `envconfig:"ADVANCE_NOTICE_DAYS"`
		MaxStayNights     int    `envconfig:"MAX_STAY_NIGHTS"`
		ReceiptMaxSizeMB  int    `envconfig:"RECEIPT_MAX_SIZE_MB" default:"5"`
		ReminderEnable    bool   `envconfig:"REMINDER_ENABLE"`
		ReminderCron      string `envconfig:"REMINDER_CRON"       default:"0 0 18 * * *"`
	} `envconfig:"BOOKING"`

	// Notification selects how messages leave the process (Transport: inline or kafka)
	// and which mailer finally delivers them (Driver: smtp, sendgrid or log).
	Notification struct {
		Transport     string `envconfig:"TRANSPORT"      default:"inline"`
		Driver        string `envconfig:"DRIVER"         default:"log"`
		Workers       int    `envconfig:"WORKERS"        default:"2"`
		QueueSize     int    `envconfig:"QUEUE_SIZE"     default:"100"`
		Topic         string `envconfig:"TOPIC"          default:"booking-notifications"`
		ConsumerGroup string `envconfig:"CONSUMER_GROUP" default:"booking-notifier"`
		SenderName    string `envconfig:"SENDER_NAME"    default:"Guest House"`
	} `envconfig:"NOTIFICATION"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host               string `envconfig:"HOST"`
				Port               string `envconfig:"PORT"`
				Password           string `envconfig:"PASSWORD"`
				DB                 int    `envconfig:"DB"`
				PoolSize           int    `envconfig:"POOL_SIZE"            default:"10"`
				DialTimeoutSeconds int    `envconfig:"DIAL_TIMEOUT_SECONDS" default:"5"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry           int          `envconfig:"MAX_RETRY"            default:"3"`
			RetryWaitTime      int          `envconfig:"RETRY_WAIT_TIME"      default:"2"`
			MaxOpenConns       int          `envconfig:"MAX_OPEN_CONNS"       default:"10"`
			MaxIdleConns       int          `envconfig:"MAX_IDLE_CONNS"       default:"10"`
			ConnMaxLifetimeMin int          `envconfig:"CONN_MAX_LIFETIME_MIN" default:"30"`
			MigrationTable     string       `envconfig:"MIGRATION_TABLE"`
			MigrationPath      string       `envconfig:"MIGRATION_PATH"       default:"file://migrations/postgres"`
			AutoMigrate        bool         `envconfig:"AUTO_MIGRATE"`
			Prefix             string       `envconfig:"PREFIX"`
			Read               PostgresNode `envconfig:"READ"`
			Write              PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
		} `envconfig:"S3"`
		SMTP struct {
			Host     string `envconfig:"HOST"`
			Port     int    `envconfig:"PORT"`
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
			From     string `envconfig:"FROM"`
		} `envconfig:"SMTP"`
		SendGrid struct {
			APIKey string `envconfig:"API_KEY"`
			From   string `envconfig:"FROM"`
		} `envconfig:"SENDGRID"`
	} `envconfig:"EXTERNAL"`
}

// PostgresNode is one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized from environment only")
		}
	}

	return &conf
}
