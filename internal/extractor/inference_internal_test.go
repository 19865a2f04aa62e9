package extractor

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/abdullahzahoor404/telco-scanner/internal/inference"
	"github.com/abdullahzahoor404/telco-scanner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator fails with the queued errors first, then succeeds with
// the fixed output on every following call.
type stubGenerator struct {
	errs    []error
	output  string
	calls   int
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, _, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return "", err
	}
	return s.output, nil
}

// longPage builds a page comfortably above the minimum-length guard.
func longPage(lines ...string) models.PageText {
	block := models.RawBlock(lines)
	for len(strings.Join(block, "\n")) < minPageText {
		block = append(block, "Enjoy non-stop streaming with the best prepaid bundles on the network")
	}
	return models.PageText{Blocks: []models.RawBlock{block}}
}

const validPayload = `[
	{"name": "Weekly Super Card", "price": "250", "validity": "Weekly", "details": "10GB Data, 500 Mins"},
	{"name": "Monthly Mega", "price": "600", "validity": "Monthly", "details": "20GB Data"}
]`

func newTestInference(client Generator, retry RetryPolicy) *Inference {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewInference(logger, client, "test-model", retry)
}

func TestInference_Extract_Success(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{output: validPayload}
	infer := newTestInference(gen, DefaultRetryPolicy())

	offers, err := infer.Extract(t.Context(), "Jazz", longPage("Weekly Super Card", "Rs. 250"))

	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "Jazz", offers[0].Operator)
	assert.Equal(t, "Weekly Super Card", offers[0].Name)
	assert.Equal(t, "250", offers[0].Price)
	assert.Equal(t, 1, gen.calls)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Operator: Jazz")
}

// A rate-limit signal is retried with a fixed cool-down; the same
// request succeeds on the third attempt and the total wait equals two
// backoff intervals.
func TestInference_Extract_RateLimitedThenSuccess(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{
		errs:   []error{inference.ErrRateLimited, inference.ErrRateLimited},
		output: validPayload,
	}

	var slept []time.Duration
	retry := RetryPolicy{
		MaxAttempts: 3,
		Delay:       20 * time.Second,
		Sleep:       func(d time.Duration) { slept = append(slept, d) },
	}
	infer := newTestInference(gen, retry)

	offers, err := infer.Extract(t.Context(), "Jazz", longPage())

	require.NoError(t, err)
	assert.Len(t, offers, 2)
	assert.Equal(t, 3, gen.calls)
	assert.Equal(t, []time.Duration{20 * time.Second, 20 * time.Second}, slept)

	// Identical prompt on every attempt: a retry is the same request.
	require.Len(t, gen.prompts, 3)
	assert.Equal(t, gen.prompts[0], gen.prompts[1])
	assert.Equal(t, gen.prompts[0], gen.prompts[2])
}

func TestInference_Extract_RateLimitExhausted(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{
		errs: []error{inference.ErrRateLimited, inference.ErrRateLimited, inference.ErrRateLimited},
	}

	sleeps := 0
	retry := RetryPolicy{
		MaxAttempts: 3,
		Delay:       time.Second,
		Sleep:       func(time.Duration) { sleeps++ },
	}
	infer := newTestInference(gen, retry)

	offers, err := infer.Extract(t.Context(), "Jazz", longPage())

	// Exhausted retries degrade to zero offers, never to an error.
	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.Equal(t, 3, gen.calls)
	assert.Equal(t, 2, sleeps)
}

func TestInference_Extract_TerminalErrorNotRetried(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{errs: []error{assert.AnError}}

	retry := RetryPolicy{
		MaxAttempts: 3,
		Delay:       time.Second,
		Sleep:       func(time.Duration) { t.Fatal("terminal errors must not wait") },
	}
	infer := newTestInference(gen, retry)

	offers, err := infer.Extract(t.Context(), "Jazz", longPage())

	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.Equal(t, 1, gen.calls)
}

// Short page text means the page likely failed to render: the
// quota-limited call is skipped entirely.
func TestInference_Extract_ShortPageSkipsCall(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{output: validPayload}
	infer := newTestInference(gen, DefaultRetryPolicy())

	page := models.PageText{Blocks: []models.RawBlock{{"Rs. 100"}}}
	offers, err := infer.Extract(t.Context(), "Jazz", page)

	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.Zero(t, gen.calls)
}

func TestInference_Extract_MalformedPayload(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{output: "the page has no offers, sorry"}
	infer := newTestInference(gen, DefaultRetryPolicy())

	offers, err := infer.Extract(t.Context(), "Jazz", longPage())

	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestParseOffers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		payload       string
		expectedCount int
		expectError   bool
	}{
		{
			name:          "bare array",
			payload:       validPayload,
			expectedCount: 2,
		},
		{
			name:          "array wrapped in code fences",
			payload:       "```json\n" + validPayload + "\n```",
			expectedCount: 2,
		},
		{
			name:          "array with preamble and trailing chatter",
			payload:       "Here are the extracted offers:\n" + validPayload + "\nLet me know if you need more.",
			expectedCount: 2,
		},
		{
			name:        "no array at all",
			payload:     "I could not find any offers on this page.",
			expectError: true,
		},
		{
			name:        "broken JSON inside brackets",
			payload:     `[{"name": "Weekly Super Card",]`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			offers, err := parseOffers("Zong", tc.payload)

			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, offers, tc.expectedCount)
		})
	}
}

// A sparse object never fails the batch: missing fields default to N/A.
func TestParseOffers_MissingFieldsDefaultToNA(t *testing.T) {
	t.Parallel()

	offers, err := parseOffers("Zong", `[{"name": "Mystery Bundle"}]`)

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Mystery Bundle", offers[0].Name)
	assert.Equal(t, models.NoValue, offers[0].Price)
	assert.Equal(t, models.NoValue, offers[0].Validity)
	assert.Equal(t, models.NoValue, offers[0].Details)
}
