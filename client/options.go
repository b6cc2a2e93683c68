package client

import (
	"errors"

	"github.com/1broseidon/imagegen/common"
	"github.com/1broseidon/imagegen/internal/logging"
)

// ErrNoProvider is returned when NewClient is called without a provider
var ErrNoProvider = errors.New("no provider configured")

// ErrEmptyPrompt is returned by Client.GenerateImage when the prompt is empty
// after trimming. The pipeline rejects empty prompts before calling the client,
// so only direct library callers see this error.
var ErrEmptyPrompt = errors.New("empty prompt")

// ClientOption is a function type for configuring the Client.
// It allows for flexible and extensible client configuration.
type ClientOption func(*Client)

// WithModel sets the model name passed to the provider.
// An empty name keeps DefaultModel.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithPromptTemplate replaces the instruction template.
// The template must contain exactly one %s verb, which receives the user's prompt.
func WithPromptTemplate(template string) ClientOption {
	return func(c *Client) {
		c.template = template
	}
}

// WithStreaming makes the client use the provider's streaming endpoint.
func WithStreaming(stream bool) ClientOption {
	return func(c *Client) {
		c.stream = stream
	}
}

// WithTemperature sets the sampling temperature. Zero leaves the model default.
func WithTemperature(temperature float32) ClientOption {
	return func(c *Client) {
		c.temperature = temperature
	}
}

// WithMaxTokens caps the output tokens of one generation. Zero leaves the model default.
func WithMaxTokens(maxTokens int) ClientOption {
	return func(c *Client) {
		c.maxTokens = maxTokens
	}
}

// WithLogger sets the logger for the client.
// The provided logger will be used for all logging operations within the client.
func WithLogger(logger logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithLogLevel sets the log level for the client.
// This option will only take effect if the client's logger supports setting log levels.
func WithLogLevel(level common.LogLevel) ClientOption {
	return func(c *Client) {
		if logger, ok := c.logger.(interface{ SetLevel(common.LogLevel) }); ok {
			logger.SetLevel(level)
		}
	}
}
