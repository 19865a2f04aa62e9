package inference

import "strings"

// ResolveModel picks the first preferred name that the endpoint can
// serve. Preference entries are substrings checked in order against
// the capability-queried set, so "gpt-4o-mini" selects whichever
// dated variant the endpoint advertises.
func ResolveModel(preferred, available []string) (string, bool) {
	for _, want := range preferred {
		for _, have := range available {
			if strings.Contains(have, want) {
				return have, true
			}
		}
	}
	return "", false
}
