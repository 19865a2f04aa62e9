package extractor_test

import (
	"testing"

	"github.com/abdullahzahoor404/telco-scanner/internal/extractor"
	"github.com/abdullahzahoor404/telco-scanner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlock(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		block    models.RawBlock
		expected models.Offer
	}{
		{
			name:  "full offer card",
			block: models.RawBlock{"Weekly Super Card", "10GB Data", "500 Mins", "Rs. 250 Incl. Tax"},
			expected: models.Offer{
				Operator: "Jazz",
				Name:     "Weekly Super Card",
				Price:    "250",
				Validity: "Weekly",
				Details:  "10GB Data, 500 Mins",
			},
		},
		{
			name:  "no price line",
			block: models.RawBlock{"Monthly Mega Bundle", "5000 SMS"},
			expected: models.Offer{
				Operator: "Jazz",
				Name:     "Monthly Mega Bundle",
				Price:    "N/A",
				Validity: "Monthly",
				Details:  "5000 SMS",
			},
		},
		{
			name:  "no price and no details",
			block: models.RawBlock{"Super Bundle"},
			expected: models.Offer{
				Operator: "Jazz",
				Name:     "Super Bundle",
				Price:    "N/A",
				Validity: "N/A",
				Details:  "Check Site",
			},
		},
		{
			name:  "only one price line consumed, first match wins",
			block: models.RawBlock{"Daily Offer", "Rs. 50", "PKR 60"},
			expected: models.Offer{
				Operator: "Jazz",
				Name:     "Daily Offer",
				Price:    "50",
				Validity: "Daily",
				Details:  "Check Site",
			},
		},
		{
			name:  "last validity keyword wins",
			block: models.RawBlock{"Super Card", "daily recharge", "weekly validity"},
			expected: models.Offer{
				Operator: "Jazz",
				Name:     "Super Card",
				Price:    "N/A",
				Validity: "Weekly",
				Details:  "Check Site",
			},
		},
		{
			name:  "chrome-only block resolves to sentinel",
			block: models.RawBlock{"4G", "SUBSCRIBE", "Rs. 100"},
			expected: models.Offer{
				Operator: "Jazz",
				Name:     "Unknown Bundle",
				Price:    "100",
				Validity: "N/A",
				Details:  "Check Site",
			},
		},
		{
			name:  "empty block resolves to all defaults",
			block: models.RawBlock{},
			expected: models.Offer{
				Operator: "Jazz",
				Name:     "Unknown Bundle",
				Price:    "N/A",
				Validity: "N/A",
				Details:  "Check Site",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			offer := extractor.ExtractBlock("Jazz", tc.block)

			assert.Equal(t, tc.expected, offer)
		})
	}
}

// The line chosen as price is never counted in details or eligible as
// the name, even when it would match both.
func TestExtractBlock_PriceLineExclusivity(t *testing.T) {
	t.Parallel()

	// The price line also matches the data-allowance rule and would
	// qualify as a name by length.
	block := models.RawBlock{"Rs. 300 for 5GB extra", "Weekly Power Pack", "1GB Data"}

	offer := extractor.ExtractBlock("Zong", block)

	assert.Equal(t, "300", offer.Price)
	assert.Equal(t, "Weekly Power Pack", offer.Name)
	assert.Equal(t, "1GB Data", offer.Details)
}

// A detail line never becomes the name, even when it precedes every
// other candidate.
func TestExtractBlock_DetailLineNotName(t *testing.T) {
	t.Parallel()

	block := models.RawBlock{"10GB Data Bundle", "Super Weekly Offer"}

	offer := extractor.ExtractBlock("Zong", block)

	assert.Equal(t, "Super Weekly Offer", offer.Name)
	assert.Equal(t, "10GB Data Bundle", offer.Details)
}

// Extraction is a pure function: two calls over the same block yield
// identical offers.
func TestExtractBlock_Idempotent(t *testing.T) {
	t.Parallel()

	block := models.RawBlock{"Weekly Super Card", "10GB Data", "500 Mins", "Rs. 250 Incl. Tax"}

	first := extractor.ExtractBlock("Jazz", block)
	second := extractor.ExtractBlock("Jazz", block)

	assert.Equal(t, first, second)
}

func TestPattern_Extract(t *testing.T) {
	t.Parallel()

	pattern := extractor.NewPattern()
	page := models.PageText{Blocks: []models.RawBlock{
		{"Weekly Super Card", "10GB Data", "Rs. 250"},
		// Page chrome: resolves to the sentinel and must be dropped.
		{"4G", "SUBSCRIBE"},
		{"Monthly Mega", "5000 SMS", "PKR 600"},
	}}

	offers, err := pattern.Extract(t.Context(), "Jazz", page)

	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "Weekly Super Card", offers[0].Name)
	assert.Equal(t, "Monthly Mega", offers[1].Name)
	for _, offer := range offers {
		assert.Equal(t, "Jazz", offer.Operator)
		assert.NotEqual(t, models.UnknownName, offer.Name)
	}
}

func TestPattern_Extract_EmptyPage(t *testing.T) {
	t.Parallel()

	pattern := extractor.NewPattern()

	offers, err := pattern.Extract(t.Context(), "Jazz", models.PageText{})

	require.NoError(t, err)
	assert.Empty(t, offers)
}
