package extractor

import (
	"context"
	"log/slog"

	"github.com/abdullahzahoor404/telco-scanner/internal/models"
)

// Strategy is the common contract both extraction engines satisfy: raw
// page text plus an operator label in, zero or more offers out. The
// selection or fallback policy between strategies belongs to the
// caller's wiring, not to the engines themselves.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string
	// Extract turns the page's card blocks into offer candidates.
	Extract(ctx context.Context, operator string, page models.PageText) ([]models.Offer, error)
}

// Chain composes strategies in priority order and returns the first
// non-empty result. A strategy error is logged and treated as "no
// offers" so the next strategy still gets its chance.
type Chain struct {
	log        *slog.Logger
	strategies []Strategy
}

// NewChain creates a fallback chain over the given strategies.
func NewChain(log *slog.Logger, strategies ...Strategy) *Chain {
	return &Chain{log: log, strategies: strategies}
}

// Name implements Strategy.
func (c *Chain) Name() string { return "chain" }

// Extract implements Strategy.
func (c *Chain) Extract(ctx context.Context, operator string, page models.PageText) ([]models.Offer, error) {
	for _, strategy := range c.strategies {
		offers, err := strategy.Extract(ctx, operator, page)
		if err != nil {
			c.log.WarnContext(ctx, "Extraction strategy failed, trying next",
				"strategy", strategy.Name(), "operator", operator, "error", err)
			continue
		}
		if len(offers) > 0 {
			return offers, nil
		}
	}
	return nil, nil
}
