package extractor

import (
	"context"
	"strings"

	"github.com/abdullahzahoor404/telco-scanner/internal/models"
)

// Pattern is the deterministic rule-based extraction strategy. It is
// stateless and never fails: a block with nothing recognizable in it
// comes back with the sentinel name and default fields.
type Pattern struct{}

// NewPattern creates the rule-based strategy.
func NewPattern() *Pattern { return &Pattern{} }

// Name implements Strategy.
func (*Pattern) Name() string { return "pattern" }

// Extract implements Strategy: every block yields one candidate, and
// candidates that resolved to the sentinel name are dropped. That is
// the primary false-positive filter, since arbitrary page chrome flows
// through the classifier too.
func (*Pattern) Extract(_ context.Context, operator string, page models.PageText) ([]models.Offer, error) {
	var offers []models.Offer
	for _, block := range page.Blocks {
		offer := ExtractBlock(operator, block)
		if offer.Name == models.UnknownName {
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// ExtractBlock assembles exactly one offer candidate from one card
// block. Line classification is mutually exclusive between price,
// details and name: the first price line wins and is consumed, detail
// lines are accumulated in order, and the name is the first remaining
// qualifying line. Validity is the exception, checked on every
// non-price line with the last match winning.
func ExtractBlock(operator string, block models.RawBlock) models.Offer {
	offer := models.Offer{
		Operator: operator,
		Name:     models.UnknownName,
		Price:    models.NoValue,
		Validity: models.NoValue,
		Details:  models.DefaultDetails,
	}

	// At most one price line is consumed, even if several qualify.
	priceIdx := -1
	for i, line := range block {
		if token, matched := MatchPrice(line); matched {
			offer.Price = token
			priceIdx = i
			break
		}
	}

	var details []string
	isDetailLine := make([]bool, len(block))
	for i, line := range block {
		if i == priceIdx {
			continue
		}
		if IsDetail(line) {
			details = append(details, line)
			isDetailLine[i] = true
		}
		if label, matched := MatchValidity(line); matched {
			offer.Validity = label
		}
	}

	for i, line := range block {
		if i == priceIdx || isDetailLine[i] {
			continue
		}
		if IsNameCandidate(line) {
			offer.Name = line
			break
		}
	}

	if len(details) > 0 {
		offer.Details = strings.Join(details, ", ")
	}

	return offer
}
