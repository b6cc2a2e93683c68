package client

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/1broseidon/imagegen/models"
)

type fakeProvider struct {
	model  string
	input  models.ImageGenerationInput
	resp   *models.ImageGenerationResponse
	err    error
	calls  int
	closed bool
}

func (f *fakeProvider) GenerateImage(_ context.Context, modelName string, input models.ImageGenerationInput) (*models.ImageGenerationResponse, error) {
	f.calls++
	f.model = modelName
	f.input = input
	return f.resp, f.err
}

func (f *fakeProvider) Close() error {
	f.closed = true
	return nil
}

func TestGenerateImage(t *testing.T) {
	ctx := context.Background()

	t.Run("WrapsPromptInTemplate", func(t *testing.T) {
		provider := &fakeProvider{resp: &models.ImageGenerationResponse{Text: "![r](https://x/y.png)"}}
		c, err := NewClient(provider)
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}

		resp, err := c.GenerateImage(ctx, "  a red circle \n")
		if err != nil {
			t.Fatalf("GenerateImage failed: %v", err)
		}
		if resp.Text != "![r](https://x/y.png)" {
			t.Errorf("Text = %q", resp.Text)
		}
		if provider.model != DefaultModel {
			t.Errorf("model = %q, want %q", provider.model, DefaultModel)
		}
		if !strings.HasPrefix(provider.input.Prompt, "Create a high-quality image based on this description: a red circle\n") {
			t.Errorf("prompt not wrapped: %q", provider.input.Prompt)
		}
		if !strings.HasSuffix(provider.input.Prompt, "Respond with the image only, no text.") {
			t.Errorf("prompt missing closing instruction: %q", provider.input.Prompt)
		}
		if provider.input.Temperature != 0 || provider.input.MaxTokens != 0 {
			t.Errorf("model defaults overridden: %+v", provider.input)
		}
	})

	t.Run("Options", func(t *testing.T) {
		provider := &fakeProvider{resp: &models.ImageGenerationResponse{}}
		c, err := NewClient(provider,
			WithModel("gemini-1.5-flash"),
			WithStreaming(true),
			WithPromptTemplate("draw %s"),
			WithTemperature(0.4),
			WithMaxTokens(256),
		)
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if _, err := c.GenerateImage(ctx, "a cat"); err != nil {
			t.Fatalf("GenerateImage failed: %v", err)
		}
		if provider.model != "gemini-1.5-flash" || !provider.input.Stream || provider.input.Prompt != "draw a cat" {
			t.Errorf("unexpected request: model=%q input=%+v", provider.model, provider.input)
		}
		if provider.input.Temperature != 0.4 || provider.input.MaxTokens != 256 {
			t.Errorf("generation settings not passed: %+v", provider.input)
		}
	})

	t.Run("EmptyPrompt", func(t *testing.T) {
		provider := &fakeProvider{}
		c, _ := NewClient(provider)
		if _, err := c.GenerateImage(ctx, "   "); !errors.Is(err, ErrEmptyPrompt) {
			t.Fatalf("expected ErrEmptyPrompt, got %v", err)
		}
		if provider.calls != 0 {
			t.Errorf("provider called %d times for an empty prompt", provider.calls)
		}
	})

	t.Run("ProviderError", func(t *testing.T) {
		quota := errors.New("quota exceeded")
		c, _ := NewClient(&fakeProvider{err: quota})
		if _, err := c.GenerateImage(ctx, "a cat"); !errors.Is(err, quota) {
			t.Fatalf("expected wrapped provider error, got %v", err)
		}
	})

	t.Run("NilResponse", func(t *testing.T) {
		c, _ := NewClient(&fakeProvider{})
		if _, err := c.GenerateImage(ctx, "a cat"); err == nil {
			t.Fatal("expected an error for a nil response")
		}
	})
}

func TestNewClient(t *testing.T) {
	if _, err := NewClient(nil); !errors.Is(err, ErrNoProvider) {
		t.Errorf("expected ErrNoProvider, got %v", err)
	}
	if _, err := NewClient(&fakeProvider{}, WithPromptTemplate("no verb")); err == nil {
		t.Error("expected an error for a template without a placeholder")
	}

	provider := &fakeProvider{}
	c, err := NewClient(provider)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if err := c.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if !provider.closed {
		t.Error("Shutdown did not close the provider")
	}
}
