package predictcareerpath

import (
	"time"

	"placement-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(w config.WorkerConfig) *Config {
	timeout := config.GetDuration(w.Timeout)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Config{Timeout: timeout}
}
