package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdullahzahoor404/telco-scanner/internal/detector"
	"github.com/abdullahzahoor404/telco-scanner/internal/extractor"
	"github.com/abdullahzahoor404/telco-scanner/internal/fetcher"
	"github.com/abdullahzahoor404/telco-scanner/internal/models"
	"github.com/abdullahzahoor404/telco-scanner/internal/repository"
)

// Watcher is the orchestrator that performs a full scan cycle over all
// configured sources.
type Watcher struct {
	log      *slog.Logger
	fetcher  fetcher.PageFetcher
	strategy extractor.Strategy
	repo     repository.Ledger
	sources  []models.Source
	now      func() time.Time
}

type Interface interface {
	// Scan performs the full scan cycle and returns the appended rows.
	Scan(ctx context.Context) ([]models.Row, error)
}

// NewWatcher creates a new Watcher instance.
func NewWatcher(
	log *slog.Logger,
	pageFetcher fetcher.PageFetcher,
	strategy extractor.Strategy,
	repo repository.Ledger,
	sources []models.Source,
) *Watcher {
	return &Watcher{
		log:      log,
		fetcher:  pageFetcher,
		strategy: strategy,
		repo:     repo,
		sources:  sources,
		now:      time.Now,
	}
}

// Scan fetches every source page, extracts offer candidates, compares
// each against the ledger snapshot and appends the dated rows. A
// source that fails to fetch or extract is skipped; the run continues
// with the remaining sources.
func (w *Watcher) Scan(ctx context.Context) ([]models.Row, error) {
	const opn = "watcher.Scan"
	log := w.log.With("op", opn)

	// The snapshot is taken once, before anything is appended, so
	// offers found in this run never see each other as history.
	records, err := w.repo.GetAllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load ledger snapshot: %w", opn, err)
	}
	lookup := models.BuildLookup(records)
	log.InfoContext(ctx, "Loaded ledger snapshot", "records", len(records))

	date := w.now().Format("2006-01-02")

	var newRows []models.Row
	for _, src := range w.sources {
		blocks, err := w.fetcher.FetchBlocks(ctx, src)
		if err != nil {
			log.ErrorContext(ctx, "Failed to fetch source page",
				"operator", src.Operator, "url", src.URL, "error", err)
			continue
		}

		offers, err := w.strategy.Extract(ctx, src.Operator, models.PageText{Blocks: blocks})
		if err != nil {
			log.ErrorContext(ctx, "Extraction failed",
				"operator", src.Operator, "strategy", w.strategy.Name(), "error", err)
			continue
		}
		log.InfoContext(ctx, "Extracted offers", "operator", src.Operator, "count", len(offers))

		for _, offer := range offers {
			result := detector.Compare(offer, lookup)
			newRows = append(newRows, models.Row{
				Date:     date,
				Operator: offer.Operator,
				Name:     offer.Name,
				Validity: offer.Validity,
				Details:  offer.Details,
				Price:    offer.Price,
				Remark:   result.Remark,
			})
		}
	}

	if len(newRows) == 0 {
		log.InfoContext(ctx, "Scan finished with no offers")
		return nil, nil
	}

	if err = w.repo.AppendRows(ctx, newRows); err != nil {
		return nil, fmt.Errorf("%s: failed to append rows: %w", opn, err)
	}
	log.InfoContext(ctx, "Appended scan results", "rows", len(newRows))

	return newRows, nil
}
