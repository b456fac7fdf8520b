// internal/ai/gemini.go
package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const extractionPrompt = "Please extract and list all the text visible in this image."

// GeminiGenerator implements Generator against the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}

func (g *GeminiGenerator) ExtractImageText(ctx context.Context, image []byte, mimeType string) (string, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(extractionPrompt),
		genai.NewPartFromBytes(image, mimeType),
	}, genai.RoleUser)

	result, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{content}, nil)
	if err != nil {
		return "", fmt.Errorf("gemini text extraction failed: %w", err)
	}
	return result.Text(), nil
}
