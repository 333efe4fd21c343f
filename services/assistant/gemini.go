// File: services/assistant/gemini.go
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiEngine implements ProposalEngine on top of the Gemini API. Every
// call carries a hard deadline; expiry is reported as backend
// unavailability so the resolver falls back instead of blocking.
type GeminiEngine struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiEngine(apiKey, modelName string, timeout time.Duration) *GeminiEngine {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	return &GeminiEngine{model: model, timeout: timeout}
}

func (g *GeminiEngine) Propose(ctx context.Context, p Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Copy the model so the per-call system instruction does not race
	// with concurrent sessions.
	model := *g.model
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(p.System)}}

	resp, err := model.GenerateContent(ctx, genai.Text(p.Contents))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty candidate set", ErrBackendUnavailable)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no text parts", ErrBackendUnavailable)
	}
	return sb.String(), nil
}
