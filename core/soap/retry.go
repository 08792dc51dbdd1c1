package soap

import (
	"fmt"
	"strings"
	"time"
)

// Backoff is an ordered retry policy: one wait per retry, consumed in order.
// A call is attempted len(policy)+1 times; the empty policy means a single
// attempt.
type Backoff []time.Duration

// ParseBackoff parses a comma-separated list of durations ("1s,3s,5s") into
// a Backoff. An empty string yields an empty policy.
func ParseBackoff(s string) (Backoff, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	policy := make(Backoff, 0, len(parts))
	for _, part := range parts {
		d, err := time.ParseDuration(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid retry wait %q: %w", part, err)
		}
		policy = append(policy, d)
	}

	return policy, nil
}
