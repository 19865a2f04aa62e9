package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPrice(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		line          string
		expectedToken string
		expectedMatch bool
	}{
		{
			name:          "Rs. marker with amount",
			line:          "Rs. 250 Incl. Tax",
			expectedToken: "250",
			expectedMatch: true,
		},
		{
			name:          "PKR marker with decimal amount",
			line:          "PKR. 500.00 Consumer Price",
			expectedToken: "500.00",
			expectedMatch: true,
		},
		{
			name:          "grouping separators preserved",
			line:          "Consumer Price 1,200",
			expectedToken: "1,200",
			expectedMatch: true,
		},
		{
			name:          "marker without digits falls back to whole line",
			line:          "Incl. Tax",
			expectedToken: "Incl. Tax",
			expectedMatch: true,
		},
		{
			name:          "case-insensitive marker",
			line:          "pkr 99",
			expectedToken: "99",
			expectedMatch: true,
		},
		{
			name:          "plain text is not a price",
			line:          "Weekly Super Card",
			expectedToken: "",
			expectedMatch: false,
		},
		{
			name:          "digits alone are not a price",
			line:          "500 Mins",
			expectedToken: "",
			expectedMatch: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			token, matched := MatchPrice(tc.line)

			assert.Equal(t, tc.expectedMatch, matched)
			assert.Equal(t, tc.expectedToken, token)
		})
	}
}

func TestIsDetail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		line     string
		expected bool
	}{
		{name: "data allowance in GB", line: "10GB Data", expected: true},
		{name: "data allowance in MB with space", line: "500 MB internet", expected: true},
		{name: "minutes allowance", line: "500 Mins", expected: true},
		{name: "sms allowance lowercase", line: "1000 sms", expected: true},
		{name: "unit without integer", line: "Unlimited GB", expected: false},
		{name: "plain text", line: "Weekly Super Card", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, IsDetail(tc.line))
		})
	}
}

func TestMatchValidity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		line          string
		expectedLabel string
		expectedMatch bool
	}{
		{name: "weekly keyword", line: "Weekly Super Card", expectedLabel: "Weekly", expectedMatch: true},
		{name: "monthly keyword lowercase", line: "valid monthly", expectedLabel: "Monthly", expectedMatch: true},
		{name: "daily keyword", line: "DAILY bundle", expectedLabel: "Daily", expectedMatch: true},
		{name: "3 day keyword", line: "Valid for 3 days", expectedLabel: "3 Days", expectedMatch: true},
		{name: "no keyword", line: "10GB Data", expectedLabel: "", expectedMatch: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			label, matched := MatchValidity(tc.line)

			assert.Equal(t, tc.expectedMatch, matched)
			assert.Equal(t, tc.expectedLabel, label)
		})
	}
}

// A detail line can still carry a validity hint: the two checks are
// independent.
func TestDetailAndValidityAreIndependent(t *testing.T) {
	t.Parallel()

	line := "10GB weekly data"

	assert.True(t, IsDetail(line))

	label, matched := MatchValidity(line)
	assert.True(t, matched)
	assert.Equal(t, "Weekly", label)
}

func TestIsNameCandidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		line     string
		expected bool
	}{
		{name: "regular title", line: "Weekly Super Card", expected: true},
		{name: "too short", line: "4G", expected: false},
		{name: "exactly three characters", line: "Max", expected: false},
		{name: "four characters qualifies", line: "Maxi", expected: true},
		{name: "subscribe button text", line: "SUBSCRIBE NOW", expected: false},
		{name: "consumer price boilerplate", line: "Consumer Price applies", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, IsNameCandidate(tc.line))
		})
	}
}
