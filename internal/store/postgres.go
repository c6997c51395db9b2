package store

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aura-labs/aura/internal/models"
)

// PostgresStore handles PostgreSQL database operations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL store with a connection pool.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	store := &PostgresStore{pool: pool}

	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// initSchema creates tables if they don't exist. The seq columns pin
// insertion order, which the matcher and aggregator tie-breaks rely on.
func (s *PostgresStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversations (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(id),
		sender TEXT NOT NULL,
		text TEXT NOT NULL,
		ts TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sentiments (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		message_id TEXT UNIQUE NOT NULL REFERENCES messages(id),
		score DOUBLE PRECISION NOT NULL,
		label TEXT NOT NULL,
		urgent BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE IF NOT EXISTS faqs (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		tags JSONB NOT NULL DEFAULT '[]'
	);

	CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id);
	CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages(sender);
	`

	_, err := s.pool.Exec(ctx, schema)
	return err
}

// Close closes the database connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping checks the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// SaveExchange writes one chat turn in a single transaction.
func (s *PostgresStore) SaveExchange(ctx context.Context, ex Exchange) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO conversations (id, customer_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, ex.Conversation.ID, ex.Conversation.CustomerID, ex.Conversation.CreatedAt); err != nil {
		return err
	}

	for _, m := range []models.Message{ex.CustomerMessage, ex.BotMessage} {
		if _, err := tx.Exec(ctx, `
			INSERT INTO messages (id, conversation_id, sender, text, ts)
			VALUES ($1, $2, $3, $4, $5)
		`, m.ID, m.ConversationID, m.Sender, m.Text, m.TS); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO sentiments (id, message_id, score, label, urgent)
		VALUES ($1, $2, $3, $4, $5)
	`, ex.Sentiment.ID, ex.Sentiment.MessageID, ex.Sentiment.Score, ex.Sentiment.Label, ex.Sentiment.Urgent); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListMessages returns a conversation's messages in ascending time order.
func (s *PostgresStore) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, conversation_id, sender, text, ts
		FROM messages
		WHERE conversation_id = $1
		ORDER BY ts ASC, seq ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPgMessages(rows)
}

// ListConversationSummaries returns one row per conversation with its
// most recent message, newest first.
func (s *PostgresStore) ListConversationSummaries(ctx context.Context) ([]models.ConversationSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.customer_id, m.text, m.ts
		FROM messages m
		JOIN conversations c ON m.conversation_id = c.id
		ORDER BY m.ts DESC, m.seq DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var out []models.ConversationSummary
	for rows.Next() {
		var cs models.ConversationSummary
		if err := rows.Scan(&cs.ID, &cs.CustomerID, &cs.LastText, &cs.LastTS); err != nil {
			return nil, err
		}
		if seen[cs.ID] {
			continue
		}
		seen[cs.ID] = true
		out = append(out, cs)
	}
	return out, rows.Err()
}

// ListCustomerMessages returns all customer messages in insertion order.
func (s *PostgresStore) ListCustomerMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, conversation_id, sender, text, ts
		FROM messages
		WHERE sender = $1
		ORDER BY ts ASC, seq ASC
	`, models.SenderCustomer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPgMessages(rows)
}

// ListSentiments returns every sentiment record.
func (s *PostgresStore) ListSentiments(ctx context.Context) ([]models.Sentiment, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, message_id, score, label, urgent
		FROM sentiments
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Sentiment
	for rows.Next() {
		var sent models.Sentiment
		if err := rows.Scan(&sent.ID, &sent.MessageID, &sent.Score, &sent.Label, &sent.Urgent); err != nil {
			return nil, err
		}
		out = append(out, sent)
	}
	return out, rows.Err()
}

// ListCustomerSentiments joins customer messages with their sentiment
// and owning customer, in message insertion order.
func (s *PostgresStore) ListCustomerSentiments(ctx context.Context) ([]models.CustomerSentiment, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.customer_id, sn.label, sn.urgent
		FROM messages m
		JOIN sentiments sn ON sn.message_id = m.id
		JOIN conversations c ON m.conversation_id = c.id
		WHERE m.sender = $1
		ORDER BY m.ts ASC, m.seq ASC
	`, models.SenderCustomer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CustomerSentiment
	for rows.Next() {
		var row models.CustomerSentiment
		if err := rows.Scan(&row.CustomerID, &row.Label, &row.Urgent); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CreateFAQ inserts a new FAQ entry.
func (s *PostgresStore) CreateFAQ(ctx context.Context, faq models.FAQ) error {
	tags, err := json.Marshal(faq.Tags)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO faqs (id, question, answer, tags)
		VALUES ($1, $2, $3, $4)
	`, faq.ID, faq.Question, faq.Answer, tags)
	return err
}

// ListFAQs returns all FAQ entries in insertion order.
func (s *PostgresStore) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, question, answer, tags
		FROM faqs
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FAQ
	for rows.Next() {
		var faq models.FAQ
		var tags []byte
		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Answer, &tags); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tags, &faq.Tags); err != nil {
			return nil, err
		}
		out = append(out, faq)
	}
	return out, rows.Err()
}

// CountFAQs returns the number of FAQ entries.
func (s *PostgresStore) CountFAQs(ctx context.Context) (int64, error) {
	return s.countRows(ctx, `SELECT COUNT(*) FROM faqs`)
}

// CountMessages returns the number of messages of any sender.
func (s *PostgresStore) CountMessages(ctx context.Context) (int64, error) {
	return s.countRows(ctx, `SELECT COUNT(*) FROM messages`)
}

func (s *PostgresStore) countRows(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanPgMessages(rows pgx.Rows) ([]models.Message, error) {
	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Text, &m.TS); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
