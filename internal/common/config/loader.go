package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml on top,
// then applies environment overrides and defaults.
func Load() (*Config, error) {
	envFile := loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig()

	cfg, err := build(v)
	if err != nil {
		return nil, err
	}
	cfg.EnvFile = envFile
	return cfg, nil
}

// LoadFromFile reads a single YAML file.
func LoadFromFile(path string) (*Config, error) {
	envFile := loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := build(v)
	if err != nil {
		return nil, err
	}
	cfg.EnvFile = envFile
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func build(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() string {
	possiblePaths := []string{".env", "../.env", "../../.env", "../../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return path
			}
		}
	}
	return ""
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// expandEnvVars resolves ${VAR} references inside string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			if expanded := os.ExpandEnv(strVal); expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

func overrideEmptyConfig(cfg *Config) {
	if cfg.Database.Postgres.User == "" {
		cfg.Database.Postgres.User = os.Getenv("DB_USER")
	}
	if cfg.Database.Postgres.Password == "" {
		cfg.Database.Postgres.Password = os.Getenv("DB_PASSWORD")
	}
	if cfg.Database.Redis.Password == "" {
		cfg.Database.Redis.Password = os.Getenv("REDIS_PASSWORD")
	}
	if cfg.Notifications.AWS.Region == "" {
		cfg.Notifications.AWS.Region = os.Getenv("AWS_REGION")
	}
	if cfg.Reminders.TopicARN == "" {
		cfg.Reminders.TopicARN = os.Getenv("REMINDER_TOPIC_ARN")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "placement-workers"
	}

	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Camunda.Timeout == 0 {
		cfg.Camunda.Timeout = 30000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 30000
	}

	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}

	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "memory"
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 86400
	}
	if cfg.Catalog.Backend == "" {
		cfg.Catalog.Backend = "memory"
	}
	if cfg.Search.Index == "" {
		cfg.Search.Index = "opportunities"
	}
	if cfg.Matching.Mode == "" {
		cfg.Matching.Mode = "substring"
	}

	if cfg.Notifications.RatePerSecond == 0 {
		cfg.Notifications.RatePerSecond = 14
	}
	if cfg.Notifications.AWS.Region == "" {
		cfg.Notifications.AWS.Region = "ap-south-1"
	}

	if cfg.Reminders.Schedule == "" {
		cfg.Reminders.Schedule = "0 9 * * *"
	}
	if cfg.Reminders.WindowDays == 0 {
		cfg.Reminders.WindowDays = 7
	}

	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = cfg.App.Name
	}
	if cfg.Observability.MetricsAddress == "" {
		cfg.Observability.MetricsAddress = ":8080"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	for key, worker := range cfg.Workers {
		if worker.MaxJobsActive == 0 {
			worker.MaxJobsActive = 5
		}
		if worker.Timeout == 0 {
			worker.Timeout = 30000
		}
		if worker.MaxRetries == 0 {
			worker.MaxRetries = 3
		}
		cfg.Workers[key] = worker
	}
}

// validateConfig only insists on connection settings for backends that are selected.
func validateConfig(cfg *Config) error {
	if cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required")
	}

	switch cfg.Session.Backend {
	case "memory":
	case "redis":
		if cfg.Database.Redis.Address == "" {
			return fmt.Errorf("database.redis.address is required when session.backend is redis")
		}
	default:
		return fmt.Errorf("session.backend must be memory or redis, got %q", cfg.Session.Backend)
	}

	switch cfg.Catalog.Backend {
	case "memory":
	case "postgres":
		if cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required when catalog.backend is postgres")
		}
		if cfg.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.database is required when catalog.backend is postgres")
		}
		if cfg.Database.Postgres.User == "" {
			return fmt.Errorf("database.postgres.user is required when catalog.backend is postgres")
		}
	default:
		return fmt.Errorf("catalog.backend must be memory or postgres, got %q", cfg.Catalog.Backend)
	}

	if cfg.Search.Enabled && len(cfg.Database.Elasticsearch.Addresses) == 0 {
		return fmt.Errorf("database.elasticsearch.addresses is required when search is enabled")
	}

	if cfg.Matching.Mode != "substring" && cfg.Matching.Mode != "folded" {
		return fmt.Errorf("matching.mode must be substring or folded, got %q", cfg.Matching.Mode)
	}

	if cfg.Reminders.Enabled && cfg.Reminders.TopicARN == "" {
		return fmt.Errorf("reminders.topic_arn is required when reminders are enabled")
	}

	return nil
}

func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker
	}
	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30000,
		MaxRetries:    3,
	}
}

func IsWorkerEnabled(cfg *Config, workerName string) bool {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker.Enabled
	}
	return true
}
