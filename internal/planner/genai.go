package planner

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGenAIModel is used when no model name is configured.
const DefaultGenAIModel = "gemini-2.0-flash"

// GenAIModel is a TextModel backed by Google's Gemini API.
type GenAIModel struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGenAIModel creates a Gemini client for the given API key.
func NewGenAIModel(ctx context.Context, apiKey, model string, temperature float32) (*GenAIModel, error) {
	if apiKey == "" {
		return nil, errors.New("GenAI API key is required")
	}
	if model == "" {
		model = DefaultGenAIModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAIModel{client: client, model: model, temperature: temperature}, nil
}

// Generate sends prompt and returns the concatenated text of the first candidate.
func (m *GenAIModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx,
		m.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(m.temperature),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("GenAI returned no text")
	}
	return text, nil
}

// Name returns the model identifier.
func (m *GenAIModel) Name() string { return fmt.Sprintf("genai:%s", m.model) }
