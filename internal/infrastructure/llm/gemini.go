// Package llm adapts the hosted Gemini API to the ports.Completer interface.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
	"github.com/lexbridge/legal-assistant/internal/pkg/metrics"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 60 * time.Second
)

// Sampling parameters. Deterministic requests pin temperature to zero and
// narrow nucleus sampling so repeated calls converge on the same text.
var (
	deterministicTemperature float32 = 0
	deterministicTopP        float32 = 0.1
	creativeTemperature      float32 = 0.7
	creativeTopP             float32 = 0.95
)

// Config holds the gateway settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// generator is the subset of *genai.Models used by the gateway.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gateway implements ports.Completer on top of google.golang.org/genai.
type Gateway struct {
	models  generator
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

var _ ports.Completer = (*Gateway)(nil)

// New builds a Gateway. An empty API key is not an error: the gateway is
// returned unconfigured and every Complete call fails fast.
func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Gateway, error) {
	g := &Gateway{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     log.With().Str("component", "llm").Logger(),
	}
	if g.model == "" {
		g.model = DefaultModel
	}
	if g.timeout <= 0 {
		g.timeout = DefaultTimeout
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		g.log.Warn().Msg("LLM_API_KEY not set, generation endpoints will return 503")
		return g, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("llm: create client: %w", err)
	}
	g.models = client.Models
	return g, nil
}

// Configured reports whether an API key was supplied.
func (g *Gateway) Configured() bool {
	return g.models != nil
}

// Complete sends one system+user exchange and returns the model text.
func (g *Gateway) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ports.CompletionOptions) (string, error) {
	op := operationLabel(opts)
	if !g.Configured() {
		metrics.LLMRequestsTotal.WithLabelValues(op, "not_configured").Inc()
		return "", domain.ErrLLMNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(userPrompt), generationConfig(systemPrompt, opts))
	metrics.LLMRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		result := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			result = "timeout"
		}
		metrics.LLMRequestsTotal.WithLabelValues(op, result).Inc()
		g.log.Error().Err(err).Str("model", g.model).Str("operation", op).Str("result", result).Msg("completion request failed")
		return "", fmt.Errorf("%w: %s", domain.ErrLLMUnavailable, result)
	}

	text := ""
	if resp != nil {
		text = resp.Text()
	}
	if strings.TrimSpace(text) == "" {
		metrics.LLMRequestsTotal.WithLabelValues(op, "empty").Inc()
		g.log.Error().Str("model", g.model).Str("operation", op).Msg("completion returned no text")
		return "", fmt.Errorf("%w: empty response", domain.ErrLLMUnavailable)
	}

	metrics.LLMRequestsTotal.WithLabelValues(op, "ok").Inc()
	return text, nil
}

// generationConfig maps completion options onto the provider request config.
func generationConfig(systemPrompt string, opts ports.CompletionOptions) *genai.GenerateContentConfig {
	temperature, topP := creativeTemperature, creativeTopP
	if opts.Deterministic {
		temperature, topP = deterministicTemperature, deterministicTopP
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(temperature),
		TopP:              genai.Ptr(topP),
	}
	if opts.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxOutputTokens)
	}
	return cfg
}

func operationLabel(opts ports.CompletionOptions) string {
	if opts.Operation == "" {
		return "unknown"
	}
	return opts.Operation
}
