package store

import (
	"context"
	"sort"
	"sync"

	"github.com/aura-labs/aura/internal/models"
)

// MemoryStore is an in-memory DataStore. It backs tests and mirrors
// the storage semantics of the SQL stores: one lock acquisition per
// exchange stands in for the transaction, and all listings preserve
// insertion order.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]models.Conversation
	messages      []models.Message
	sentiments    []models.Sentiment
	faqs          []models.FAQ
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string]models.Conversation),
	}
}

// Close is a no-op.
func (s *MemoryStore) Close() {}

// Ping always succeeds.
func (s *MemoryStore) Ping(_ context.Context) error { return nil }

// SaveExchange appends one chat turn under a single lock.
func (s *MemoryStore) SaveExchange(_ context.Context, ex Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[ex.Conversation.ID]; !ok {
		s.conversations[ex.Conversation.ID] = ex.Conversation
	}
	s.messages = append(s.messages, ex.CustomerMessage)
	s.sentiments = append(s.sentiments, ex.Sentiment)
	s.messages = append(s.messages, ex.BotMessage)
	return nil
}

// ListMessages returns a conversation's messages in ascending time order.
func (s *MemoryStore) ListMessages(_ context.Context, conversationID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Message
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TS.Before(out[j].TS) })
	return out, nil
}

// ListConversationSummaries returns one row per conversation with its
// most recent message, newest first.
func (s *MemoryStore) ListConversationSummaries(_ context.Context) ([]models.ConversationSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []models.ConversationSummary
	for i := len(s.messages) - 1; i >= 0; i-- {
		m := s.messages[i]
		if seen[m.ConversationID] {
			continue
		}
		conv, ok := s.conversations[m.ConversationID]
		if !ok {
			continue
		}
		seen[m.ConversationID] = true
		out = append(out, models.ConversationSummary{
			ID:         conv.ID,
			CustomerID: conv.CustomerID,
			LastText:   m.Text,
			LastTS:     m.TS,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LastTS.After(out[j].LastTS) })
	return out, nil
}

// ListCustomerMessages returns all customer messages in insertion order.
func (s *MemoryStore) ListCustomerMessages(_ context.Context) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Message
	for _, m := range s.messages {
		if m.Sender == models.SenderCustomer {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListSentiments returns every sentiment record.
func (s *MemoryStore) ListSentiments(_ context.Context) ([]models.Sentiment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Sentiment, len(s.sentiments))
	copy(out, s.sentiments)
	return out, nil
}

// ListCustomerSentiments joins customer messages with their sentiment
// and owning customer.
func (s *MemoryStore) ListCustomerSentiments(_ context.Context) ([]models.CustomerSentiment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byMessage := make(map[string]models.Sentiment, len(s.sentiments))
	for _, sent := range s.sentiments {
		byMessage[sent.MessageID] = sent
	}

	var out []models.CustomerSentiment
	for _, m := range s.messages {
		if m.Sender != models.SenderCustomer {
			continue
		}
		sent, ok := byMessage[m.ID]
		if !ok {
			continue
		}
		conv, ok := s.conversations[m.ConversationID]
		if !ok {
			continue
		}
		out = append(out, models.CustomerSentiment{
			CustomerID: conv.CustomerID,
			Label:      sent.Label,
			Urgent:     sent.Urgent,
		})
	}
	return out, nil
}

// CreateFAQ appends a new FAQ entry.
func (s *MemoryStore) CreateFAQ(_ context.Context, faq models.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faqs = append(s.faqs, faq)
	return nil
}

// ListFAQs returns all FAQ entries in insertion order.
func (s *MemoryStore) ListFAQs(_ context.Context) ([]models.FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FAQ, len(s.faqs))
	copy(out, s.faqs)
	return out, nil
}

// CountFAQs returns the number of FAQ entries.
func (s *MemoryStore) CountFAQs(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.faqs)), nil
}

// CountMessages returns the number of messages of any sender.
func (s *MemoryStore) CountMessages(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.messages)), nil
}
