package dataset

import "testing"

func TestOverviewDataShape(t *testing.T) {
	overview := OverviewData()
	if len(overview.KPIs) != 4 {
		t.Fatalf("expected 4 KPIs, got %d", len(overview.KPIs))
	}
	if len(overview.SentimentTrend) != 6 {
		t.Fatalf("expected 6 months of sentiment, got %d", len(overview.SentimentTrend))
	}
	if overview.SentimentTrend[0].Month != "Jan" || overview.SentimentTrend[5].Month != "Jun" {
		t.Fatal("sentiment months out of order")
	}
	var total int
	for _, status := range overview.TicketStatus {
		total += status.Value
	}
	if total != 432+89+23 {
		t.Fatalf("ticket status total mismatch: %d", total)
	}
}

func TestFeedbackDistributionSumsToWhole(t *testing.T) {
	var total int
	for _, slice := range FeedbackData().Distribution {
		total += slice.Value
	}
	if total != 100 {
		t.Fatalf("distribution must cover 100%%, got %d", total)
	}
}

func TestEscalationInProgressHasNoSatisfaction(t *testing.T) {
	for _, c := range EscalationData().Recent {
		if c.Status == "in-progress" && c.Satisfaction != nil {
			t.Fatalf("in-progress escalation %s must not carry a satisfaction score", c.ID)
		}
		if c.Status == "resolved" && c.Satisfaction == nil {
			t.Fatalf("resolved escalation %s must carry a satisfaction score", c.ID)
		}
	}
}

func TestEmpathyExamplesCarryScoredResponses(t *testing.T) {
	empathy := EmpathyData()
	if len(empathy.Examples) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(empathy.Examples))
	}
	for _, example := range empathy.Examples {
		if example.Message == "" || example.AIResponse == "" || example.Tone == "" {
			t.Fatalf("scenario %d is incomplete: %+v", example.ID, example)
		}
		if example.EmpathyScore <= 0 || example.EmpathyScore > 100 {
			t.Fatalf("scenario %d has empathy score out of range: %d", example.ID, example.EmpathyScore)
		}
	}
	if empathy.Examples[0].Sentiment != "angry" || empathy.Examples[2].Sentiment != "positive" {
		t.Fatal("scenario sentiments out of order")
	}
}

func TestDatasetsAreFreshPerCall(t *testing.T) {
	first := KnowledgeData()
	first.Categories[0].Articles = 0
	if KnowledgeData().Categories[0].Articles == 0 {
		t.Fatal("dataset accessors must return independent copies")
	}
}
