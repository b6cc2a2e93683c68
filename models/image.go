package models

// ImageGenerationInput represents the input for an image generation request.
type ImageGenerationInput struct {
	Prompt      string // Full instruction text sent to the model
	MaxTokens   int
	Temperature float32
	Stream      bool
}

// ImageGenerationResponse represents the model's reply to an image generation request.
type ImageGenerationResponse struct {
	Text         string        // Concatenated text parts of the first candidate
	InlineImages []InlineImage // Image blobs returned in place of, or alongside, text
	FinishReason string
	Usage        *Usage
	Provider     string
}

// HasInlineImage reports whether the response carries at least one inline image.
func (r *ImageGenerationResponse) HasInlineImage() bool {
	return r != nil && len(r.InlineImages) > 0
}

// InlineImage is raw image data embedded in a model response.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// Usage represents the token usage information for a request.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
