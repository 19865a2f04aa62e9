package models

import "strings"

// Fallback field values shared by both extraction strategies.
const (
	UnknownName    = "Unknown Bundle"
	NoValue        = "N/A"
	DefaultDetails = "Check Site"
)

// RawBlock holds the trimmed, non-empty text lines of one visually
// grouped page region believed to represent a single offer card.
type RawBlock []string

// PageText is the raw material handed to an extraction strategy: the
// card blocks of one source page.
type PageText struct {
	Blocks []RawBlock
}

// Joined flattens all blocks into one newline-separated string.
func (p PageText) Joined() string {
	var lines []string
	for _, block := range p.Blocks {
		lines = append(lines, block...)
	}
	return strings.Join(lines, "\n")
}

// Offer is the structured result of extracting one offer card.
type Offer struct {
	Operator string
	Name     string
	Price    string
	Validity string
	Details  string
}

// HistoricalRecord is a previously persisted offer observation.
type HistoricalRecord struct {
	Date     string
	Operator string
	Name     string
	Validity string
	Details  string
	Price    string
}

// Row is the seven-field tuple appended to the ledger. The field order
// (date, operator, name, validity, details, price, remark) is the
// stable storage format and must not be reordered.
type Row struct {
	Date     string
	Operator string
	Name     string
	Validity string
	Details  string
	Price    string
	Remark   string
}

// Lookup returns the most recent historical record for an exact
// (operator, name) key.
type Lookup func(operator, name string) (HistoricalRecord, bool)

// BuildLookup indexes ledger records by (operator, name). Records must
// arrive in append order: a later record overwrites an earlier one, so
// the last appended row per key is the authoritative one. There is no
// timestamp ordering.
func BuildLookup(records []HistoricalRecord) Lookup {
	type key struct{ operator, name string }

	latest := make(map[key]HistoricalRecord, len(records))
	for _, rec := range records {
		latest[key{rec.Operator, rec.Name}] = rec
	}

	return func(operator, name string) (HistoricalRecord, bool) {
		rec, found := latest[key{operator, name}]
		return rec, found
	}
}
