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
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
			Queue struct {
				DB int `envconfig:"DB" default:"1"`
			} `envconfig:"QUEUE"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret string `envconfig:"ACCESS_SECRET"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			MigrationPath  string `envconfig:"MIGRATION_PATH" default:"migrations/postgres"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		BookingTopic  string   `envconfig:"BOOKING_TOPIC" default:"booking-events"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	Booking struct {
		CommissionRate          string `envconfig:"COMMISSION_RATE" default:"0.10"`
		PayAtHotelAdvanceRate   string `envconfig:"PAY_AT_HOTEL_ADVANCE_RATE" default:"0.20"`
		NoShowHotelShareRate    string `envconfig:"NO_SHOW_HOTEL_SHARE_RATE" default:"0.50"`
		FirstBookingDiscount    string `envconfig:"FIRST_BOOKING_DISCOUNT" default:"0.20"`
		FirstBookingDiscountCap int64  `envconfig:"FIRST_BOOKING_DISCOUNT_CAP" default:"1000"`
		NoShowTrustPenalty      int    `envconfig:"NO_SHOW_TRUST_PENALTY" default:"15"`
		PayAtHotelRevokeAfter   int    `envconfig:"PAY_AT_HOTEL_REVOKE_AFTER" default:"3"`
		PlatformLoyaltyBonus    int64  `envconfig:"PLATFORM_LOYALTY_BONUS" default:"50"`
		PhoneRegion             string `envconfig:"PHONE_REGION" default:"ID"`
	} `envconfig:"BOOKING"`

	Channel struct {
		BaseURLs              map[string]string `envconfig:"BASE_URLS"`
		TimeoutSeconds        int               `envconfig:"TIMEOUT_SECONDS" default:"15"`
		RequestsPerSecond     float64           `envconfig:"REQUESTS_PER_SECOND" default:"5"`
		PullLookbackDays      int               `envconfig:"PULL_LOOKBACK_DAYS" default:"7"`
		PushHorizonDays       int               `envconfig:"PUSH_HORIZON_DAYS" default:"90"`
		LockTTLSeconds        int               `envconfig:"LOCK_TTL_SECONDS" default:"120"`
		LockWaitSeconds       int               `envconfig:"LOCK_WAIT_SECONDS" default:"10"`
		MaxRetry              int               `envconfig:"MAX_RETRY" default:"5"`
		Queue                 string            `envconfig:"QUEUE" default:"channel-sync"`
		WorkerConcurrency     int               `envconfig:"WORKER_CONCURRENCY" default:"10"`
		ScheduleSpec          string            `envconfig:"SCHEDULE_SPEC" default:"@every 15m"`
		CredentialSecret      string            `envconfig:"CREDENTIAL_SECRET"`
		ConflictArchiveBucket string            `envconfig:"CONFLICT_ARCHIVE_BUCKET"`
	} `envconfig:"CHANNEL"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
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
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}
