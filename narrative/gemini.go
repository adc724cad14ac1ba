package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Prompt asks the model for one mystery-stone outcome
const Prompt = `You are the dungeon master of a magical mine. The player just mined a "Mystery Stone".
Generate a random short event description (max 10 words) and a gameplay effect.
Effects can be:
- Finding extra gold (GOLD)
- Gaining extra time (TIME)
- A temporary strength burst (STRENGTH_BUFF)
- Just a funny message with no effect (NOTHING)

Make it fun and varied.`

// ErrMissingAPIKey is returned when the Gemini backend has no credentials
var ErrMissingAPIKey = errors.New("gemini api key not set")

// GeminiConfig configures the Gemini generator
type GeminiConfig struct {
	// BaseURL overrides the API host; empty uses the SDK default
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Gemini asks a Gemini model for structured mystery events
type Gemini struct {
	config GeminiConfig
	client *genai.Client
	schema map[string]any
}

// NewGemini builds a generator; httpClient may be nil to use one with config.Timeout
func NewGemini(ctx context.Context, config GeminiConfig, httpClient *http.Client) (*Gemini, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if config.Model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}

	raw, err := responseSchemaJSON()
	if err != nil {
		return nil, err
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("decode result schema: %w", err)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	cc := &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: config.BaseURL,
		},
	}
	if config.Timeout > 0 {
		cc.HTTPOptions.Timeout = &config.Timeout
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Gemini{config: config, client: client, schema: schema}, nil
}

// Generate implements Generator
func (g *Gemini) Generate(ctx context.Context) (Result, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(Prompt), &genai.GenerateContentConfig{
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: g.schema,
	})
	if err != nil {
		return Result{}, fmt.Errorf("gemini request: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return Result{}, fmt.Errorf("%w: empty response", ErrMalformedResult)
	}
	return Decode([]byte(text))
}
