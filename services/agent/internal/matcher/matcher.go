// Package matcher maps free-text support messages to canned replies via an
// ordered keyword table.
package matcher

import (
	"strings"

	"pacifisai/pkg/domain"
)

// Response is one canned reply plus its presentation metadata. The caller is
// expected to delay presenting the reply by LatencySeconds; the matcher never
// sleeps.
type Response struct {
	Reply          string           `json:"reply"`
	Sentiment      domain.Sentiment `json:"sentiment"`
	LatencySeconds float64          `json:"latencySeconds"`
}

type rule struct {
	keywords  []string
	reply     string
	sentiment domain.Sentiment
	latency   float64
}

// Match selects the reply for the input. Matching is case-insensitive
// substring containment, first matching rule wins. Total function: input
// with no keyword falls through to the default response.
func Match(input string) Response {
	normalized := strings.ToLower(input)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(normalized, keyword) {
				return Response{Reply: r.reply, Sentiment: r.sentiment, LatencySeconds: r.latency}
			}
		}
	}
	return defaultResponse
}

// Default returns the fallback response payload.
func Default() Response {
	return defaultResponse
}
