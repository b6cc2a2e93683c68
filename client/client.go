package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/1broseidon/imagegen/common"
	"github.com/1broseidon/imagegen/internal/logging"
	"github.com/1broseidon/imagegen/models"
)

// DefaultModel is the Gemini model used when no WithModel option is given.
const DefaultModel = "gemini-1.5-pro"

// DefaultPromptTemplate wraps the user's description; %s is replaced by the prompt.
const DefaultPromptTemplate = `Create a high-quality image based on this description: %s
Please generate a detailed, professional-looking image that would be suitable for a portfolio or resume website.
Respond with the image only, no text.`

// Provider interface defines the methods that each provider must implement
type Provider interface {
	GenerateImage(ctx context.Context, modelName string, input models.ImageGenerationInput) (*models.ImageGenerationResponse, error)
	Close() error
}

// Client represents the main imagegen client
type Client struct {
	provider Provider
	model    string
	template string
	stream      bool
	temperature float32
	maxTokens   int
	logger      logging.Logger
}

// NewClient creates a client that sends generation requests to provider.
func NewClient(provider Provider, options ...ClientOption) (*Client, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}

	c := &Client{
		provider: provider,
		model:    DefaultModel,
		template: DefaultPromptTemplate,
		logger:   logging.NewDefaultLogger(),
	}

	// Set default log level to Disabled
	c.logger.SetLevel(common.DisabledLevel)

	// Apply options
	for _, option := range options {
		option(c)
	}

	if strings.Count(c.template, "%s") != 1 {
		return nil, fmt.Errorf("prompt template must contain exactly one %%s verb: %q", c.template)
	}

	c.logger.Debugf("Initialized imagegen client for model %s", c.model)

	return c, nil
}

// Close closes the underlying provider
func (c *Client) Close() error {
	return c.provider.Close()
}

// Shutdown closes the client when it is owned by a dependency injector.
func (c *Client) Shutdown() error {
	return c.Close()
}

// Model returns the model requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Instruction returns the full text sent to the model for prompt.
func (c *Client) Instruction(prompt string) string {
	return fmt.Sprintf(c.template, prompt)
}

// GenerateImage wraps prompt in the instruction template and asks the model for an image.
// Failures are logged here and returned to the caller, which treats them as terminal.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*models.ImageGenerationResponse, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	input := models.ImageGenerationInput{
		Prompt:      c.Instruction(prompt),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Stream:      c.stream,
	}

	c.logger.Debugf("Generating image with model %s (stream=%t)", c.model, c.stream)
	resp, err := c.provider.GenerateImage(ctx, c.model, input)
	if err != nil {
		c.logger.Error("Failed to generate image:", err)
		return nil, fmt.Errorf("generate image: %w", err)
	}
	if resp == nil {
		c.logger.Error("Provider returned no response")
		return nil, errors.New("generate image: empty response")
	}

	c.logger.Infof("Received %d characters of text and %d inline images", len(resp.Text), len(resp.InlineImages))
	return resp, nil
}
