// Package narrative implements the generator port over the Gemini API. The
// service degrades to computed-only responses when no API key is configured,
// so every construction path tolerates a nil or unavailable generator.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"ziwei-backend/application/ports"
	"ziwei-backend/domain/core/valueobjects"
	apperrors "ziwei-backend/pkg/errors"
)

// GeminiGenerator implements ports.NarrativeGenerator with the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator. With an empty API key
// it returns an unavailable generator rather than an error, so deployments
// without credentials still boot.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		logger.Info("Gemini API key not configured, narrative generation disabled")
		return &GeminiGenerator{model: model, logger: logger}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Available reports whether the generator has credentials configured
func (g *GeminiGenerator) Available() bool {
	return g.client != nil
}

// Generate produces a plain text reply. One attempt, no retries: callers
// already treat failures as absence of narrative.
func (g *GeminiGenerator) Generate(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeResult, error) {
	return g.generate(ctx, req, "")
}

// GenerateSections produces a structured JSON report
func (g *GeminiGenerator) GenerateSections(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeSections, *ports.NarrativeResult, error) {
	result, err := g.generate(ctx, req, "application/json")
	if err != nil {
		return nil, nil, err
	}

	var sections ports.NarrativeSections
	if err := json.Unmarshal([]byte(stripCodeFences(result.Text)), &sections); err != nil {
		g.logger.Warn("Generator returned malformed section JSON",
			zap.Error(err),
			zap.String("model", g.model),
		)
		return nil, nil, apperrors.NewExternalError("gemini", fmt.Errorf("malformed section response: %w", err))
	}
	return &sections, result, nil
}

func (g *GeminiGenerator) generate(ctx context.Context, req ports.NarrativeRequest, responseMIMEType string) (*ports.NarrativeResult, error) {
	if !g.Available() {
		return nil, apperrors.NewUnavailableError("gemini")
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == valueobjects.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	cfg := &genai.GenerateContentConfig{}
	if len(contents) == 0 {
		// Single-shot prompts (reports, summaries) carry everything in the
		// system prompt; the API still needs at least one content entry.
		contents = append(contents, genai.NewContentFromText(req.SystemPrompt, genai.RoleUser))
	} else if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxOutputTokens)
	}
	if responseMIMEType != "" {
		cfg.ResponseMIMEType = responseMIMEType
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		g.logger.Warn("Gemini generation failed",
			zap.Error(err),
			zap.String("model", g.model),
		)
		return nil, apperrors.NewExternalError("gemini", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, apperrors.NewExternalError("gemini", fmt.Errorf("empty response"))
	}

	result := &ports.NarrativeResult{
		Text:  text,
		Model: g.model,
	}
	if resp.UsageMetadata != nil {
		result.TokensInput = int(resp.UsageMetadata.PromptTokenCount)
		result.TokensOutput = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return result, nil
}

// stripCodeFences unwraps ```json fenced blocks some models emit despite the
// JSON response MIME type.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
