package models

import "time"

// Conversation groups the messages exchanged with a single customer.
// Created on the first message and immutable thereafter.
type Conversation struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConversationSummary is one row of the manager conversation list:
// a conversation paired with its most recent message.
type ConversationSummary struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	LastText   string    `json:"last_text"`
	LastTS     time.Time `json:"last_ts"`
}
