package extractor

import (
	"regexp"
	"strings"
)

// Classification precedence for a single line: price beats everything
// (a price line is excluded from detail and name checks), detail beats
// name candidacy, and the validity check is independent of all of
// them. A detail line may still contribute a validity hint.

// priceMarkers flag a line as the price line, case-insensitively.
var priceMarkers = []string{"rs.", "pkr", "consumer price", "incl. tax"}

// priceToken captures the first run of digits and grouping separators.
var priceToken = regexp.MustCompile(`[0-9][0-9.,]*`)

// detailRules recognize allowance lines: an integer followed by a
// data, minutes or SMS unit. A line is a detail line if any rule hits.
var detailRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s*(?:GB|MB)`),
	regexp.MustCompile(`(?i)\d+\s*Mins`),
	regexp.MustCompile(`(?i)\d+\s*SMS`),
}

// validityRules map a keyword to its canonical validity label, checked
// in order; the first keyword found decides the line's hint.
var validityRules = []struct {
	keyword string
	label   string
}{
	{"weekly", "Weekly"},
	{"monthly", "Monthly"},
	{"daily", "Daily"},
	{"3 day", "3 Days"},
}

// nameExclusions disqualify a line from being the offer name.
var nameExclusions = []string{"subscribe", "consumer price"}

const minNameLength = 3

// MatchPrice reports whether the line is a price line and, if so,
// returns the normalized price token: the first run of digits and
// grouping separators, or the whole line when it carries no digits.
func MatchPrice(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, marker := range priceMarkers {
		if strings.Contains(lower, marker) {
			if token := priceToken.FindString(line); token != "" {
				return token, true
			}
			return line, true
		}
	}
	return "", false
}

// IsDetail reports whether the line carries a data, minutes or SMS
// allowance.
func IsDetail(line string) bool {
	for _, rule := range detailRules {
		if rule.MatchString(line) {
			return true
		}
	}
	return false
}

// MatchValidity returns the canonical validity label hinted by the
// line, if any.
func MatchValidity(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, rule := range validityRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.label, true
		}
	}
	return "", false
}

// IsNameCandidate reports whether the line may serve as an offer name:
// longer than three characters and free of call-to-action or price
// boilerplate.
func IsNameCandidate(line string) bool {
	if len(line) <= minNameLength {
		return false
	}
	lower := strings.ToLower(line)
	for _, excluded := range nameExclusions {
		if strings.Contains(lower, excluded) {
			return false
		}
	}
	return true
}
