package config

import "fmt"

type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Database      DatabaseConfig          `mapstructure:"database"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Session       SessionConfig           `mapstructure:"session"`
	Catalog       CatalogConfig           `mapstructure:"catalog"`
	Search        SearchConfig            `mapstructure:"search"`
	Matching      MatchingConfig          `mapstructure:"matching"`
	Notifications NotificationConfig      `mapstructure:"notifications"`
	Reminders     ReminderConfig          `mapstructure:"reminders"`
	Observability ObservabilityConfig     `mapstructure:"observability"`
	Logging       LoggingConfig           `mapstructure:"logging"`

	// EnvFile is the .env file that was loaded, if any.
	EnvFile string `mapstructure:"-"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	Plaintext      bool   `mapstructure:"plaintext"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

// SessionConfig selects where per-student application state lives.
type SessionConfig struct {
	Backend string `mapstructure:"backend"` // memory | redis
	TTL     int    `mapstructure:"ttl"`     // seconds, redis only
}

// CatalogConfig selects the employer catalog backend.
type CatalogConfig struct {
	Backend string `mapstructure:"backend"` // memory | postgres
	// Seed inserts the demo employers on startup; existing rows are kept.
	Seed bool `mapstructure:"seed"`
}

type SearchConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Index   string `mapstructure:"index"`
}

type MatchingConfig struct {
	Mode string `mapstructure:"mode"` // substring | folded
}

type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
}

type ReminderConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Schedule   string `mapstructure:"schedule"`
	WindowDays int    `mapstructure:"window_days"`
	TopicARN   string `mapstructure:"topic_arn"`
}

type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
	MetricsAddress string `mapstructure:"metrics_address"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func (c *Config) UsesPostgres() bool { return c.Catalog.Backend == "postgres" }

func (c *Config) UsesRedis() bool { return c.Session.Backend == "redis" }

func (c *Config) UsesElasticsearch() bool { return c.Search.Enabled }
