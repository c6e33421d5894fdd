package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/outflo/outflo-backend/internal/models"
)

const generationModel = "gemini-2.0-flash"

// TextGenerator is a single-call text generation backend.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator generates text through Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: generationModel}, nil
}

// GenerateText submits the prompt and returns the response text verbatim.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// MessageService maps a person/company description to one generated outreach
// message. Stateless; one request, one external call, no retries.
type MessageService struct {
	generator TextGenerator
}

func NewMessageService(generator TextGenerator) *MessageService {
	return &MessageService{generator: generator}
}

// Generate builds the outreach prompt and returns the generated text.
func (s *MessageService) Generate(ctx context.Context, input *models.MessageRequest) (*models.MessageResponse, error) {
	prompt := BuildOutreachPrompt(input)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logrus.Errorf("Generation call failed: %v", err)
		return nil, ErrGenerationFailed
	}

	return &models.MessageResponse{Message: text}, nil
}
