package googlegemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/1broseidon/imagegen/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const providerName = "googlegemini"

// ErrNoContent is returned when the model produced no candidates.
var ErrNoContent = errors.New("no content generated")

// GoogleGeminiProvider implements image generation against the Gemini API
type GoogleGeminiProvider struct {
	client *genai.Client
}

// NewGoogleGeminiProvider creates a new Google Gemini provider authenticated with apiKey.
// Extra client options are appended after the API key, e.g. a custom endpoint.
func NewGoogleGeminiProvider(ctx context.Context, apiKey string, opts ...option.ClientOption) (*GoogleGeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is empty")
	}

	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GoogleGeminiProvider{
		client: client,
	}, nil
}

// Close closes the Google Gemini client
func (p *GoogleGeminiProvider) Close() error {
	return p.client.Close()
}

// GenerateImage sends input.Prompt to the named model and returns the first candidate.
// When input.Stream is set the streaming endpoint is used and the chunks are joined.
func (p *GoogleGeminiProvider) GenerateImage(ctx context.Context, modelName string, input models.ImageGenerationInput) (*models.ImageGenerationResponse, error) {
	model := p.client.GenerativeModel(modelName)
	if input.Temperature > 0 {
		model.SetTemperature(input.Temperature)
	}
	if input.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(input.MaxTokens))
	}

	if input.Stream {
		return p.generateStream(ctx, model, input.Prompt)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(input.Prompt))
	if err != nil {
		return nil, err
	}
	return convertResponse(resp)
}

func (p *GoogleGeminiProvider) generateStream(ctx context.Context, model *genai.GenerativeModel, prompt string) (*models.ImageGenerationResponse, error) {
	iter := model.GenerateContentStream(ctx, genai.Text(prompt))

	var result *models.ImageGenerationResponse
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		chunk, err := convertResponse(resp)
		if errors.Is(err, ErrNoContent) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = mergeResponses(result, chunk)
	}

	if result == nil {
		return nil, ErrNoContent
	}
	return result, nil
}

// convertResponse joins the text parts of the first candidate and collects its inline blobs.
func convertResponse(resp *genai.GenerateContentResponse) (*models.ImageGenerationResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, ErrNoContent
	}
	candidate := resp.Candidates[0]

	out := &models.ImageGenerationResponse{
		Provider:     providerName,
		FinishReason: fmt.Sprint(candidate.FinishReason),
		Usage: &models.Usage{
			CompletionTokens: int(candidate.TokenCount),
			TotalTokens:      int(candidate.TokenCount),
		},
	}
	if candidate.Content == nil {
		return out, nil
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			text.WriteString(string(v))
		case genai.Blob:
			if strings.HasPrefix(v.MIMEType, "image/") && len(v.Data) > 0 {
				out.InlineImages = append(out.InlineImages, models.InlineImage{MIMEType: v.MIMEType, Data: v.Data})
			}
		}
	}
	out.Text = text.String()

	return out, nil
}

func mergeResponses(acc, chunk *models.ImageGenerationResponse) *models.ImageGenerationResponse {
	if acc == nil {
		return chunk
	}
	acc.Text += chunk.Text
	acc.InlineImages = append(acc.InlineImages, chunk.InlineImages...)
	if chunk.FinishReason != "" {
		acc.FinishReason = chunk.FinishReason
	}
	if chunk.Usage != nil {
		acc.Usage.CompletionTokens += chunk.Usage.CompletionTokens
		acc.Usage.TotalTokens += chunk.Usage.TotalTokens
	}
	return acc
}
