package camunda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"placement-workers/internal/common/errors"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

type Client struct {
	client zbc.Client
	config *ClientConfig
}

type ClientConfig struct {
	GatewayAddress         string
	UsePlaintextConnection bool
	ConnectionTimeout      time.Duration
	RetryConfig            *RetryConfig
}

type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = &RetryConfig{
	MaxRetries: 3,
	BaseDelay:  1 * time.Second,
	MaxDelay:   10 * time.Second,
}

// NewClient dials the gateway and confirms the broker answers a topology request.
func NewClient(config *ClientConfig) (*Client, error) {
	if config.RetryConfig == nil {
		config.RetryConfig = DefaultRetryConfig
	}
	if config.ConnectionTimeout == 0 {
		config.ConnectionTimeout = 10 * time.Second
	}

	zeebeClient, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         config.GatewayAddress,
		UsePlaintextConnection: config.UsePlaintextConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Zeebe client: %w", err)
	}

	c := &Client{client: zeebeClient, config: config}
	if err := c.HealthCheck(context.Background()); err != nil {
		zeebeClient.Close()
		return nil, fmt.Errorf("failed to connect to Zeebe broker at %s: %w", config.GatewayAddress, err)
	}
	return c, nil
}

func (c *Client) Zeebe() zbc.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}

// ExecuteWithRetry retries transient gateway failures with capped exponential backoff.
func (c *Client) ExecuteWithRetry(
	ctx context.Context,
	operationName string,
	commandFunc func(context.Context) (interface{}, error),
) (interface{}, error) {
	return executeWithRetry(ctx, c.config.RetryConfig, operationName, commandFunc)
}

func executeWithRetry(
	ctx context.Context,
	rc *RetryConfig,
	operationName string,
	commandFunc func(context.Context) (interface{}, error),
) (interface{}, error) {
	for attempt := 0; ; attempt++ {
		result, err := commandFunc(ctx)
		if err == nil {
			return result, nil
		}
		if !isRetryableZeebeError(err) || attempt == rc.MaxRetries {
			return nil, mapZeebeError(err, operationName, attempt)
		}

		delay := rc.BaseDelay * time.Duration(1<<attempt)
		if delay > rc.MaxDelay {
			delay = rc.MaxDelay
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("operation %s cancelled after %d attempts: %w", operationName, attempt+1, ctx.Err())
		}
	}
}

var retryablePhrases = []string{
	"connection refused",
	"connection reset",
	"timeout",
	"deadline exceeded",
	"unavailable",
	"unreachable",
	"broken pipe",
}

func isRetryableZeebeError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, phrase := range retryablePhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

func mapZeebeError(err error, operation string, attempt int) error {
	msg := err.Error()
	lowerMsg := strings.ToLower(msg)

	wrapped := fmt.Errorf("zeebe operation '%s' failed after %d attempt(s): %s", operation, attempt+1, msg)

	switch {
	case strings.Contains(lowerMsg, "timeout") || strings.Contains(lowerMsg, "deadline exceeded"):
		return errors.NewTimeoutError("zeebe", wrapped)
	case strings.Contains(lowerMsg, "not found"):
		stdErr := errors.NewExternalServiceError("zeebe", wrapped)
		stdErr.Retryable = false
		return stdErr
	default:
		return errors.NewExternalServiceError("zeebe", wrapped)
	}
}

func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectionTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}
