// Package analytics derives the manager dashboard numbers from the
// accumulated chat history. Every call recomputes from a full scan;
// work is O(total messages), which is the intended operating point for
// this service.
package analytics

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/aura-labs/aura/internal/models"
	"github.com/aura-labs/aura/internal/nlp"
)

const topIssueLimit = 5

var issueTokenRegex = regexp.MustCompile(`[a-zA-Z]{4,}`)

// stopwords are dropped from the issue ranking: they dominate support
// text without naming a problem.
var stopwords = map[string]bool{
	"please": true, "thank": true, "thanks": true, "order": true,
	"issue": true, "could": true, "would": true,
}

// TrendCounts holds sentiment record counts per label.
type TrendCounts struct {
	Pos int `json:"pos"`
	Neg int `json:"neg"`
	Neu int `json:"neu"`
}

// IssueCount is one entry of the top-issue ranking. It serializes as a
// ["keyword", count] pair to keep the wire shape stable for existing
// dashboard clients.
type IssueCount struct {
	Keyword string
	Count   int
}

// MarshalJSON renders the pair form.
func (c IssueCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Keyword, c.Count})
}

// ChurnEntry is the per-customer churn heuristic.
type ChurnEntry struct {
	CustomerID string  `json:"customer_id"`
	Risk       float64 `json:"risk"`
}

// Churn wraps the per-customer entries.
type Churn struct {
	ByCustomer []ChurnEntry `json:"by_customer"`
}

// Summary is the analytics response body.
type Summary struct {
	Volume         int          `json:"volume"`
	SentimentTrend TrendCounts  `json:"sentiment_trend"`
	TopIssues      []IssueCount `json:"top_issues"`
	Churn          Churn        `json:"churn"`
}

// Compute aggregates the dashboard summary from full scans of the
// customer messages, the sentiment records, and the sentiment rows
// joined with their customer. Input slice order is significant: it
// pins the tie-breaks of the issue ranking and the churn listing, so
// callers must supply rows in insertion order.
func Compute(customerMessages []models.Message, sentiments []models.Sentiment, rows []models.CustomerSentiment) Summary {
	trend := TrendCounts{}
	for _, s := range sentiments {
		switch s.Label {
		case nlp.LabelPositive:
			trend.Pos++
		case nlp.LabelNegative:
			trend.Neg++
		case nlp.LabelNeutral:
			trend.Neu++
		}
	}

	return Summary{
		Volume:         len(customerMessages),
		SentimentTrend: trend,
		TopIssues:      topIssues(customerMessages),
		Churn:          Churn{ByCustomer: churnByCustomer(rows)},
	}
}

// topIssues ranks issue keywords by descending occurrence count, ties
// broken by first encounter, truncated to five entries. Every
// occurrence counts, not just one per message.
func topIssues(customerMessages []models.Message) []IssueCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, m := range customerMessages {
		for _, tok := range issueTokenRegex.FindAllString(strings.ToLower(m.Text), -1) {
			if stopwords[tok] {
				continue
			}
			if _, ok := counts[tok]; !ok {
				firstSeen[tok] = order
				order++
			}
			counts[tok]++
		}
	}

	ranked := make([]IssueCount, 0, len(counts))
	for tok, n := range counts {
		ranked = append(ranked, IssueCount{Keyword: tok, Count: n})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Keyword] < firstSeen[ranked[j].Keyword]
	})

	if len(ranked) > topIssueLimit {
		ranked = ranked[:topIssueLimit]
	}
	return ranked
}

// churnByCustomer counts urgent-negative customer messages and maps
// the count to a risk score capped at 1.0. Customers without a
// qualifying message are omitted entirely.
func churnByCustomer(rows []models.CustomerSentiment) []ChurnEntry {
	counts := make(map[string]int)
	var seen []string

	for _, row := range rows {
		if row.Label != nlp.LabelNegative || !row.Urgent {
			continue
		}
		if _, ok := counts[row.CustomerID]; !ok {
			seen = append(seen, row.CustomerID)
		}
		counts[row.CustomerID]++
	}

	entries := make([]ChurnEntry, 0, len(seen))
	for _, cid := range seen {
		entries = append(entries, ChurnEntry{
			CustomerID: cid,
			Risk:       min(1.0, 0.3*float64(counts[cid])),
		})
	}
	return entries
}
