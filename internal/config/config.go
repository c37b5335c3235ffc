package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    Server    `yaml:"server"`
	App       App       `yaml:"app"`
	Database  Database  `yaml:"database"`
	Scheduler Scheduler `yaml:"scheduler"`
	S3        S3        `yaml:"s3"`
	OpenAI    OpenAI    `yaml:"openai"`
	Mailer    Mailer    `yaml:"mailer"`
}

// App holds application-level settings
type App struct {
	// Timezone anchors "today" for date validation and the planning cadence.
	Timezone string `yaml:"timezone" env:"APP_TIMEZONE" env-default:"America/Sao_Paulo"`
}

// S3 holds S3/MinIO storage configuration
type S3 struct {
	Endpoint        string `yaml:"endpoint" env:"S3_ENDPOINT" env-default:"http://localhost:9000"`
	AccessKeyID     string `yaml:"access_key_id" env:"S3_ACCESS_KEY_ID" env-default:"minioadmin"`
	SecretAccessKey string `yaml:"secret_access_key" env:"S3_SECRET_ACCESS_KEY" env-default:"minioadmin"`
	Bucket          string `yaml:"bucket" env:"S3_BUCKET" env-default:"media"`
	Region          string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	PublicURL       string `yaml:"public_url" env:"S3_PUBLIC_URL" env-default:"http://localhost:9000/media"`
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// Address returns the full server address
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}

// OpenAI holds generative assist configuration. An empty API key
// disables the assist endpoints.
type OpenAI struct {
	APIKey string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model  string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
}

// Mailer holds the transactional mail API configuration. An empty
// base URL disables publication reminders.
type Mailer struct {
	BaseURL    string   `yaml:"base_url" env:"MAILER_BASE_URL"`
	APIKey     string   `yaml:"api_key" env:"MAILER_API_KEY"`
	From       string   `yaml:"from" env:"MAILER_FROM" env-default:"planner@agency.local"`
	Recipients []string `yaml:"recipients" env:"MAILER_RECIPIENTS"`
}

// Database holds database configuration
type Database struct {
	// PostgreSQL
	PostgresDSN string `yaml:"postgres_dsn" env:"DATABASE_URL"`

	// Connection pool settings
	MaxOpenConns int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnLifetime time.Duration `yaml:"conn_lifetime" env:"DB_CONN_LIFETIME" env-default:"5m"`
}

// Scheduler holds the reminder scheduler configuration
type Scheduler struct {
	Enabled  bool          `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"false"`
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1h"`
}

// MustLoad loads configuration and exits on error. A YAML file named by
// CONFIG_FILE is read first when set; environment variables override it.
func MustLoad() Config {
	// .env is optional, used in development
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Fatalf("failed to load config file %s: %v", path, err)
		}
		return cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}
