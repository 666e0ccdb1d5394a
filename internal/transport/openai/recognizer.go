// Package openai implements the entity recognizer boundary on top of an
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/syntax922/immich-search/internal/domain"
	"github.com/syntax922/immich-search/internal/metrics"
)

const systemPrompt = `You are a named-entity tagger for photo search queries.
Extract every location and date/time expression from the user's query.
Respond with JSON only, in the form:
{"entities":[{"text":"<exact substring from the query>","type":"LOCATION"|"DATE"|"OTHER"}]}
The "text" value must be copied verbatim from the query. Do not invent
entities and do not normalize or reformat them.`

// Recognizer is an entity recognizer using an OpenAI-compatible API.
type Recognizer struct {
	client   *openai.Client
	model    string
	provider string
	logger   *zap.Logger
}

// Config holds the recognizer provider settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Logger   *zap.Logger
}

// NewRecognizer creates an OpenAI-compatible entity recognizer.
func NewRecognizer(cfg *Config) *Recognizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Recognizer{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Recognize asks the model for entity mentions and locates each mention in
// the source text locally. Model-reported offsets are not requested at all:
// models miscount characters, and a local search against the verbatim
// mention is deterministic.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]domain.Span, error) {
	req := openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	}

	start := time.Now()

	resp, err := r.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.RecognizerRequestsTotal.WithLabelValues(r.provider, r.model, "error").Inc()
		metrics.RecognizerErrorsTotal.WithLabelValues(r.provider, r.model, "api_error").Inc()
		return nil, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.RecognizerRequestsTotal.WithLabelValues(r.provider, r.model, "error").Inc()
		metrics.RecognizerErrorsTotal.WithLabelValues(r.provider, r.model, "empty_response").Inc()
		return nil, fmt.Errorf("empty completion response: %w", domain.ErrRecognizerUnavailable)
	}

	spans, err := spansFromContent(text, resp.Choices[0].Message.Content)
	if err != nil {
		metrics.RecognizerRequestsTotal.WithLabelValues(r.provider, r.model, "error").Inc()
		metrics.RecognizerErrorsTotal.WithLabelValues(r.provider, r.model, "bad_payload").Inc()
		return nil, fmt.Errorf("parse completion: %v: %w", err, domain.ErrRecognizerUnavailable)
	}

	metrics.RecognizerRequestsTotal.WithLabelValues(r.provider, r.model, "success").Inc()
	metrics.RecognizerRequestDuration.WithLabelValues(r.provider, r.model).Observe(duration.Seconds())

	return spans, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (r *Recognizer) HealthCheck(ctx context.Context) error {
	if _, err := r.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

type entityPayload struct {
	Entities []struct {
		Text string `json:"text"`
		Type string `json:"type"`
	} `json:"entities"`
}

// spansFromContent decodes the model's JSON and resolves each mention to
// byte offsets with a forward case-insensitive search, dropping mentions
// the model hallucinated. Repeated mentions resolve to successive
// occurrences because the cursor only moves forward.
func spansFromContent(text, content string) ([]domain.Span, error) {
	var payload entityPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}

	cursor := 0
	var spans []domain.Span
	for _, ent := range payload.Entities {
		mention := strings.TrimSpace(ent.Text)
		if mention == "" || cursor >= len(text) {
			continue
		}
		start, end := indexFold(text, mention, cursor)
		if start < 0 {
			continue
		}
		spans = append(spans, domain.Span{
			Text:  text[start:end],
			Kind:  spanKind(ent.Type),
			Start: start,
			End:   end,
		})
		cursor = end
	}

	return spans, nil
}

// indexFold locates mention in text at or after cursor, exact match first,
// then case-insensitively. Matching runs over the original bytes so the
// offsets stay valid even when case folding changes a rune's byte length
// (e.g. U+0130 lowers to a 1-byte 'i'); the matched region in text may be
// a different byte length than the mention.
func indexFold(text, mention string, cursor int) (start, end int) {
	if idx := strings.Index(text[cursor:], mention); idx >= 0 {
		start = cursor + idx
		return start, start + len(mention)
	}
	for i := cursor; i < len(text); {
		if end, ok := foldMatch(text, i, mention); ok {
			return i, end
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return -1, -1
}

// foldMatch reports whether mention matches text at offset i rune by rune
// under simple case folding, returning the end offset of the match in text.
func foldMatch(text string, i int, mention string) (int, bool) {
	for j := 0; j < len(mention); {
		if i >= len(text) {
			return 0, false
		}
		tr, ts := utf8.DecodeRuneInString(text[i:])
		mr, ms := utf8.DecodeRuneInString(mention[j:])
		if tr != mr && unicode.ToLower(tr) != unicode.ToLower(mr) {
			return 0, false
		}
		i += ts
		j += ms
	}
	return i, true
}

func spanKind(entityType string) domain.SpanKind {
	switch strings.ToUpper(entityType) {
	case "LOCATION", "GPE", "LOC":
		return domain.SpanLocation
	case "DATE", "TIME":
		return domain.SpanDate
	default:
		return domain.SpanOther
	}
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrRecognizerUnavailable for correct
// 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrRecognizerUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("recognizer API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("recognizer API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("recognizer request failed: %w", wrap)
}
