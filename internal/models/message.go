package models

import "time"

// Message senders.
const (
	SenderCustomer = "customer"
	SenderBot      = "bot"
	SenderAgent    = "agent"
)

// Message is a single chat turn. Messages are append-only: never
// mutated or deleted once written.
type Message struct {
	ID             string    `json:"id"` // ULID
	ConversationID string    `json:"conversation_id"`
	Sender         string    `json:"sender"`
	Text           string    `json:"text"`
	TS             time.Time `json:"ts"`
}
