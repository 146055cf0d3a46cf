package matcher

import (
	"strings"
	"testing"

	"pacifisai/pkg/domain"
)

func TestMatchGreeting(t *testing.T) {
	got := Match("hello there")
	if !strings.HasPrefix(got.Reply, "Hello! I'm your PacifisAI assistant.") {
		t.Fatalf("expected greeting reply, got %q", got.Reply)
	}
	if got.Sentiment != domain.SentimentPositive {
		t.Fatalf("greeting sentiment: got %q", got.Sentiment)
	}
	if got.LatencySeconds != 0.3 {
		t.Fatalf("greeting latency: got %v", got.LatencySeconds)
	}
}

func TestMatchFirstRuleWins(t *testing.T) {
	// "broken" sits in the problem rule, which precedes both the refund and
	// the order rules in the table. Table order decides, not best fit.
	got := Match("I want a refund for my broken order")
	if !strings.Contains(got.Reply, "you're experiencing an issue") {
		t.Fatalf("expected the problem-rule reply, got %q", got.Reply)
	}
	if got.Sentiment != domain.SentimentNeutral || got.LatencySeconds != 0.4 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	lower := Match("this is terrible")
	upper := Match("THIS IS TERRIBLE")
	if lower != upper {
		t.Fatalf("case must not affect matching: %+v vs %+v", lower, upper)
	}
	if lower.Sentiment != domain.SentimentNegative {
		t.Fatalf("expected negative sentiment, got %q", lower.Sentiment)
	}
}

func TestMatchUnknownInputFallsBack(t *testing.T) {
	got := Match("asdkjasd")
	if got != Default() {
		t.Fatalf("expected exact default payload, got %+v", got)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	first := Match("thanks, that was excellent")
	for i := 0; i < 5; i++ {
		if again := Match("thanks, that was excellent"); again != first {
			t.Fatalf("match must be deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestGreetingPayload(t *testing.T) {
	if Greeting.Sentiment != domain.SentimentPositive || Greeting.LatencySeconds != 0.1 {
		t.Fatalf("unexpected greeting payload: %+v", Greeting)
	}
}
