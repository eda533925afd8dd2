package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/voyago/voyago-api/internal/config"
	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/generation"
)

// locationSchema is the shape of one entry in the provider's JSON array.
type locationSchema struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Generator implements generation.LocationGenerator using Google's Gemini
// API. Each call is a single blocking round trip with no retry.
type Generator struct {
	logger      *slog.Logger
	client      *genai.Client
	model       string
	temperature float32
}

// Ensure Generator implements the LocationGenerator interface
var _ generation.LocationGenerator = (*Generator)(nil)

// NewGenerator creates a new Gemini-backed location generator.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name and temperature
//
// Returns a properly initialized Generator or an error if the configuration
// is invalid or the client cannot be created.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:      logger,
		client:      client,
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateLocations implements generation.LocationGenerator.
func (g *Generator) GenerateLocations(
	ctx context.Context,
	req generation.Request,
) ([]domain.Location, error) {
	prompt := BuildPrompt(req)

	g.logger.DebugContext(ctx, "calling Gemini",
		"model", g.model,
		"city", req.CityName,
		"location_count", req.NumberOfLocations,
		"prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](g.temperature),
		},
	)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	raw, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini returned unusable response", "error", err)
		return nil, err
	}

	locations, err := parseLocations(raw)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to parse Gemini response",
			"error", err,
			"raw_length", len(raw))
		return nil, err
	}

	g.logger.InfoContext(ctx, "Gemini generated locations",
		"city", req.CityName,
		"requested", req.NumberOfLocations,
		"returned", len(locations))

	return locations, nil
}

// extractText pulls the raw text out of a generation response, mapping
// empty or safety-blocked responses to generation errors.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrGenerationFailed)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: generation stopped by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrGenerationFailed)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		b.WriteString(part.Text)
	}

	text := b.String()
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", generation.ErrGenerationFailed)
	}

	return text, nil
}

// parseLocations parses the provider's raw text as a JSON array of
// {name, description} entries. Every entry must carry a non-empty name and
// description; anything else rejects the whole response as a format error
// carrying the raw text.
func parseLocations(raw string) ([]domain.Location, error) {
	var entries []locationSchema
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &entries); err != nil {
		return nil, generation.NewResponseFormatError(raw, err)
	}

	locations := make([]domain.Location, 0, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, generation.NewResponseFormatError(raw,
				fmt.Errorf("entry %d missing name", i))
		}
		if strings.TrimSpace(entry.Description) == "" {
			return nil, generation.NewResponseFormatError(raw,
				fmt.Errorf("entry %d missing description", i))
		}

		locations = append(locations, domain.Location{
			ID:          uuid.New(),
			Name:        entry.Name,
			Description: entry.Description,
		})
	}

	return locations, nil
}

// stripCodeFences removes a surrounding markdown code fence if present.
// Gemini often wraps JSON output in ```json ... ``` even when told not to.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line (```json).
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}
