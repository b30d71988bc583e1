package extract

import "strings"

// strategy is a single extraction attempt. An empty result means the
// strategy found nothing and the next one should run.
type strategy func() string

// firstOf tries each strategy in order and returns the first non-blank
// result, trimmed. When every attempt comes back empty the default is
// returned instead, so callers never see a missing value.
func firstOf(def string, attempts ...strategy) string {
	for _, attempt := range attempts {
		if v := strings.TrimSpace(attempt()); v != "" {
			return v
		}
	}
	return def
}
