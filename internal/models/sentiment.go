package models

// Sentiment is the scored polarity of exactly one customer message.
// Written together with the message and never recomputed.
type Sentiment struct {
	ID        string  `json:"id"`
	MessageID string  `json:"message_id"`
	Score     float64 `json:"score"` // [-1.0, 1.0]
	Label     string  `json:"label"` // pos, neg or neu
	Urgent    bool    `json:"urgent"`
}

// CustomerSentiment is a sentiment joined with the owning customer,
// as produced by the churn scan.
type CustomerSentiment struct {
	CustomerID string
	Label      string
	Urgent     bool
}
