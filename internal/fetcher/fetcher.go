package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/abdullahzahoor404/telco-scanner/internal/models"
)

// defaultSelector is used when a source does not name its own card
// selector.
const defaultSelector = ".card"

// PageFetcher supplies the raw card blocks of a source page. It is the
// page-text collaborator the extraction core consumes from.
type PageFetcher interface {
	FetchBlocks(ctx context.Context, src models.Source) ([]models.RawBlock, error)
}

// Fetcher downloads a source page over plain HTTP and slices it into
// card blocks. Pages that render offers client-side need a different
// provider behind the same interface.
type Fetcher struct {
	log    *slog.Logger
	client *http.Client
}

// NewFetcher creates a fetcher with the default HTTP client.
func NewFetcher(log *slog.Logger) *Fetcher {
	return &Fetcher{log: log, client: http.DefaultClient}
}

// FetchBlocks retrieves the page and returns one RawBlock per matched
// card node: the node's visible text split into trimmed, non-empty
// lines.
func (f *Fetcher) FetchBlocks(ctx context.Context, src models.Source) ([]models.RawBlock, error) {
	resp, err := f.getHTMLResponse(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to get html response: %w", err)
	}
	defer resp.Body.Close()

	return f.parseCards(ctx, resp.Body, src.Selector)
}

func (f *Fetcher) getHTMLResponse(ctx context.Context, rawURL string) (*http.Response, error) {
	reqURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source URL %s: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", reqURL.String(), err)
	}

	req.Header.Add("User-Agent", "Mozilla/5.0 (compatible; GoHttpClient/1.0)")

	f.log.DebugContext(ctx, "Send request", "method", req.Method, "URL", req.URL)

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", rawURL, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: [%d] %s", res.StatusCode, res.Status)
	}

	f.log.InfoContext(ctx, "Successfully received http response", "status code", res.StatusCode)

	return res, nil
}

func (f *Fetcher) parseCards(ctx context.Context, inp io.Reader, selector string) ([]models.RawBlock, error) {
	doc, err := goquery.NewDocumentFromReader(inp)
	if err != nil {
		return nil, fmt.Errorf("data cannot be parsed as HTML: %w", err)
	}

	if selector == "" {
		selector = defaultSelector
	}

	var blocks []models.RawBlock
	doc.Find(selector).Each(func(idx int, s *goquery.Selection) {
		block := splitLines(s.Text())
		if len(block) == 0 {
			f.log.WarnContext(ctx, "card node has no visible text", "index", idx, "selector", selector)
			return
		}
		f.log.DebugContext(ctx, "Parsed card block", "index", idx, "lines", len(block))
		blocks = append(blocks, block)
	})

	return blocks, nil
}

// splitLines trims every line and drops the empty ones, matching the
// RawBlock contract.
func splitLines(text string) models.RawBlock {
	var lines models.RawBlock
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
