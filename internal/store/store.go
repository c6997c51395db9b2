package store

import (
	"context"

	"github.com/aura-labs/aura/internal/models"
)

// Exchange is everything one chat-send persists: the conversation (a
// no-op when it already exists), the customer message, its sentiment,
// and the paired bot reply. Implementations must write the whole
// exchange atomically so readers never observe a customer message
// without its sentiment or bot reply.
type Exchange struct {
	Conversation    models.Conversation
	CustomerMessage models.Message
	Sentiment       models.Sentiment
	BotMessage      models.Message
}

// DataStore defines the persistence operations behind the chat API.
// PostgresStore, SQLiteStore and MemoryStore implement this interface.
type DataStore interface {
	// Connection management
	Close()
	Ping(ctx context.Context) error

	// Chat operations
	SaveExchange(ctx context.Context, ex Exchange) error
	ListMessages(ctx context.Context, conversationID string) ([]models.Message, error)
	ListConversationSummaries(ctx context.Context) ([]models.ConversationSummary, error)

	// Analytics scans. All listings are in insertion order: the
	// aggregator's tie-breaks depend on it.
	ListCustomerMessages(ctx context.Context) ([]models.Message, error)
	ListSentiments(ctx context.Context) ([]models.Sentiment, error)
	ListCustomerSentiments(ctx context.Context) ([]models.CustomerSentiment, error)

	// FAQ operations
	CreateFAQ(ctx context.Context, faq models.FAQ) error
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
	CountFAQs(ctx context.Context) (int64, error)
	CountMessages(ctx context.Context) (int64, error)
}
