package analytics

import (
	"encoding/json"
	"testing"

	"github.com/aura-labs/aura/internal/models"
	"github.com/aura-labs/aura/internal/nlp"
)

// demoMessages mirrors the seven demo messages inserted at first boot.
var demoMessages = []struct {
	customerID string
	text       string
}{
	{"cust_001", "I am angry my order is late and want a refund asap"},
	{"cust_002", "Love the product but your support was slow last week"},
	{"cust_003", "Everything was awesome, thank you team!"},
	{"cust_004", "My payment failed again, please fix this now!"},
	{"cust_005", "Website keeps crashing when I try to check out"},
	{"cust_006", "Great experience overall"},
	{"cust_007", "Hate that my delivery was delayed twice"},
}

func demoInputs() ([]models.Message, []models.Sentiment, []models.CustomerSentiment) {
	var msgs []models.Message
	var sentiments []models.Sentiment
	var rows []models.CustomerSentiment
	for i, d := range demoMessages {
		s := nlp.ScoreSentiment(d.text)
		msgs = append(msgs, models.Message{
			ID:     string(rune('a' + i)),
			Sender: models.SenderCustomer,
			Text:   d.text,
		})
		sentiments = append(sentiments, models.Sentiment{
			Score: s.Score, Label: s.Label, Urgent: s.Urgent,
		})
		rows = append(rows, models.CustomerSentiment{
			CustomerID: d.customerID, Label: s.Label, Urgent: s.Urgent,
		})
	}
	return msgs, sentiments, rows
}

func TestComputeDemoVolume(t *testing.T) {
	msgs, sentiments, rows := demoInputs()
	summary := Compute(msgs, sentiments, rows)
	if summary.Volume != 7 {
		t.Fatalf("expected volume 7, got %d", summary.Volume)
	}
}

func TestComputeDemoSentimentTrend(t *testing.T) {
	msgs, sentiments, rows := demoInputs()
	summary := Compute(msgs, sentiments, rows)

	// cust_002/003/006 score positive, cust_001/007 negative, the
	// rest carry no polarity keywords.
	want := TrendCounts{Pos: 3, Neg: 2, Neu: 2}
	if summary.SentimentTrend != want {
		t.Fatalf("trend mismatch: got %+v, want %+v", summary.SentimentTrend, want)
	}
}

func TestComputeDemoTopIssues(t *testing.T) {
	msgs, sentiments, rows := demoInputs()
	summary := Compute(msgs, sentiments, rows)

	if len(summary.TopIssues) != 5 {
		t.Fatalf("expected 5 issues, got %d", len(summary.TopIssues))
	}
	// Every keyword appears once across the demo set, so the ranking
	// falls back to first-encounter order within the first message
	// ("order" is a stopword and skipped).
	want := []string{"angry", "late", "want", "refund", "asap"}
	for i, issue := range summary.TopIssues {
		if issue.Keyword != want[i] || issue.Count != 1 {
			t.Fatalf("issue %d = %+v, want {%s 1}", i, issue, want[i])
		}
	}
}

func TestComputeDemoChurn(t *testing.T) {
	msgs, sentiments, rows := demoInputs()
	summary := Compute(msgs, sentiments, rows)

	// cust_001: angry+late+refund with asap. cust_007: hate+delay,
	// urgent via the two-negative rule. cust_004 is urgent ("now")
	// but scores neutral, so it must not appear.
	entries := summary.Churn.ByCustomer
	if len(entries) != 2 {
		t.Fatalf("expected 2 churn entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].CustomerID != "cust_001" || entries[0].Risk != 0.3 {
		t.Fatalf("unexpected first churn entry: %+v", entries[0])
	}
	if entries[1].CustomerID != "cust_007" || entries[1].Risk != 0.3 {
		t.Fatalf("unexpected second churn entry: %+v", entries[1])
	}
}

func TestChurnRiskCapped(t *testing.T) {
	var rows []models.CustomerSentiment
	for i := 0; i < 6; i++ {
		rows = append(rows, models.CustomerSentiment{
			CustomerID: "cust_x", Label: nlp.LabelNegative, Urgent: true,
		})
	}
	entries := churnByCustomer(rows)
	if len(entries) != 1 || entries[0].Risk != 1.0 {
		t.Fatalf("expected risk capped at 1.0, got %+v", entries)
	}
}

func TestTopIssuesStableRanking(t *testing.T) {
	msgs := []models.Message{
		{Text: "billing billing billing"},
		{Text: "shipping shipping"},
		{Text: "website website"},
		{Text: "password"},
	}
	issues := topIssues(msgs)
	want := []IssueCount{
		{"billing", 3}, {"shipping", 2}, {"website", 2}, {"password", 1},
	}
	if len(issues) != len(want) {
		t.Fatalf("expected %d issues, got %d", len(want), len(issues))
	}
	for i := range want {
		if issues[i] != want[i] {
			t.Fatalf("issue %d = %+v, want %+v", i, issues[i], want[i])
		}
	}
}

func TestIssueCountSerializesAsPair(t *testing.T) {
	b, err := json.Marshal(IssueCount{Keyword: "refund", Count: 3})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `["refund",3]` {
		t.Fatalf("unexpected encoding: %s", b)
	}
}

func TestComputeEmptyStore(t *testing.T) {
	summary := Compute(nil, nil, nil)
	if summary.Volume != 0 {
		t.Fatalf("expected zero volume, got %d", summary.Volume)
	}
	if len(summary.TopIssues) != 0 || len(summary.Churn.ByCustomer) != 0 {
		t.Fatalf("expected empty rankings, got %+v", summary)
	}
}
