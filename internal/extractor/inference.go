package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abdullahzahoor404/telco-scanner/internal/inference"
	"github.com/abdullahzahoor404/telco-scanner/internal/models"
)

// Generator is the single call the inference strategy needs from the
// completion client.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// RetryPolicy bounds the rate-limit retry loop. The delay is fixed,
// not exponential, and blocks the calling goroutine; Sleep is
// injectable so tests run without real waiting.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Sleep       func(time.Duration)
}

// DefaultRetryPolicy matches the quota behavior of free-tier
// completion endpoints: three attempts with a 20s cool-down.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: 20 * time.Second, Sleep: time.Sleep}
}

// minPageText guards the quota-limited call: page text shorter than
// this almost certainly means the page failed to render.
const minPageText = 200

// maxPromptText caps how much page text goes into one prompt.
const maxPromptText = 12000

// Inference is the extraction strategy that delegates field
// recognition to a text-to-structure model behind an
// OpenAI-compatible endpoint.
type Inference struct {
	log    *slog.Logger
	client Generator
	model  string
	retry  RetryPolicy
}

// NewInference creates the model-backed strategy.
func NewInference(log *slog.Logger, client Generator, model string, retry RetryPolicy) *Inference {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	if retry.Sleep == nil {
		retry.Sleep = time.Sleep
	}
	return &Inference{log: log, client: client, model: model, retry: retry}
}

// Name implements Strategy.
func (*Inference) Name() string { return "inference" }

// Extract implements Strategy. Rate limits are retried a bounded
// number of times with a fixed cool-down; every other failure, and a
// payload still unparseable after the bracket-repair pass, degrades to
// zero offers rather than an error.
func (e *Inference) Extract(ctx context.Context, operator string, page models.PageText) ([]models.Offer, error) {
	text := page.Joined()
	if len(text) < minPageText {
		e.log.WarnContext(ctx, "Page text too short, skipping inference call",
			"operator", operator, "length", len(text))
		return nil, nil
	}

	prompt := buildPrompt(operator, text)

	var payload string
	for attempt := 1; ; attempt++ {
		out, err := e.client.Generate(ctx, e.model, prompt)
		if err == nil {
			payload = out
			break
		}
		if !errors.Is(err, inference.ErrRateLimited) || attempt >= e.retry.MaxAttempts {
			e.log.WarnContext(ctx, "Inference call failed",
				"operator", operator, "attempt", attempt, "error", err)
			return nil, nil
		}
		e.log.InfoContext(ctx, "Rate limited, cooling down before retry",
			"operator", operator, "attempt", attempt, "delay", e.retry.Delay)
		e.retry.Sleep(e.retry.Delay)
	}

	offers, err := parseOffers(operator, payload)
	if err != nil {
		e.log.WarnContext(ctx, "Inference payload unparseable",
			"operator", operator, "error", err)
		return nil, nil
	}

	return offers, nil
}

func buildPrompt(operator, text string) string {
	var b strings.Builder
	b.WriteString("You are a data extraction assistant for telecom offer pages.\n")
	b.WriteString("Extract every prepaid offer from the page text below.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString(`1. Return ONLY a JSON array of objects with exactly these string fields: "name", "price", "validity", "details".` + "\n")
	b.WriteString(`2. "price" is the numeric amount only, no currency symbols.` + "\n")
	b.WriteString(`3. "validity" is one of: Daily, Weekly, Monthly, 3 Days, N/A.` + "\n")
	b.WriteString(`4. "details" is a comma-separated list of data/minutes/SMS allowances.` + "\n")
	b.WriteString("5. No explanations, no markdown fences, no text outside the array.\n\n")
	b.WriteString("Operator: " + operator + "\n\n")
	b.WriteString("Page text:\n")
	b.WriteString(clip(text, maxPromptText))
	return b.String()
}

type inferredOffer struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Validity string `json:"validity"`
	Details  string `json:"details"`
}

// parseOffers decodes the model payload, tolerating the markup models
// like to add: surrounding code fences are stripped, and when the
// payload does not begin with a list marker the substring between the
// first '[' and the last ']' is parsed instead.
func parseOffers(operator, payload string) ([]models.Offer, error) {
	cleaned := stripFences(payload)

	if !strings.HasPrefix(cleaned, "[") {
		start := strings.Index(cleaned, "[")
		end := strings.LastIndex(cleaned, "]")
		if start == -1 || end < start {
			return nil, errors.New("payload contains no JSON array")
		}
		cleaned = cleaned[start : end+1]
	}

	var parsed []inferredOffer
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("decode offer array: %w", err)
	}

	offers := make([]models.Offer, 0, len(parsed))
	for _, in := range parsed {
		offers = append(offers, models.Offer{
			Operator: operator,
			Name:     orNA(in.Name),
			Price:    orNA(in.Price),
			Validity: orNA(in.Validity),
			Details:  orNA(in.Details),
		})
	}
	return offers, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// orNA fills a missing field so one sparse object never fails the
// whole batch.
func orNA(s string) string {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		return trimmed
	}
	return models.NoValue
}

func clip(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:limit]
}
