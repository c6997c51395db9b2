package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aura-labs/aura/internal/models"
)

// SQLiteStore handles SQLite database operations. It is the default
// backend when no DATABASE_URL is configured.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
// If dbPath is empty, defaults to "./data/aura.db"
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = "./data/aura.db"
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// initSchema creates tables if they don't exist.
func (s *SQLiteStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversations (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(id),
		sender TEXT NOT NULL,
		text TEXT NOT NULL,
		ts DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sentiments (
		id TEXT PRIMARY KEY,
		message_id TEXT UNIQUE NOT NULL REFERENCES messages(id),
		score REAL NOT NULL,
		label TEXT NOT NULL,
		urgent INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS faqs (
		id TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]'
	);

	CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id);
	CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages(sender);
	CREATE INDEX IF NOT EXISTS idx_sentiments_message ON sentiments(message_id);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() {
	s.db.Close()
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveExchange writes one chat turn in a single transaction: commit
// everything or nothing.
func (s *SQLiteStore) SaveExchange(ctx context.Context, ex Exchange) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO conversations (id, customer_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, ex.Conversation.ID, ex.Conversation.CustomerID, ex.Conversation.CreatedAt); err != nil {
		return err
	}

	for _, m := range []models.Message{ex.CustomerMessage, ex.BotMessage} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO messages (id, conversation_id, sender, text, ts)
			VALUES (?, ?, ?, ?, ?)
		`, m.ID, m.ConversationID, m.Sender, m.Text, m.TS); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sentiments (id, message_id, score, label, urgent)
		VALUES (?, ?, ?, ?, ?)
	`, ex.Sentiment.ID, ex.Sentiment.MessageID, ex.Sentiment.Score, ex.Sentiment.Label, ex.Sentiment.Urgent); err != nil {
		return err
	}

	return tx.Commit()
}

// ListMessages returns a conversation's messages in ascending time
// order. An unknown conversation yields an empty slice, not an error.
func (s *SQLiteStore) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conversation_id, sender, text, ts
		FROM messages
		WHERE conversation_id = ?
		ORDER BY ts ASC, rowid ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// ListConversationSummaries returns one row per conversation with its
// most recent message, newest conversations first.
func (s *SQLiteStore) ListConversationSummaries(ctx context.Context) ([]models.ConversationSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.customer_id, m.text, m.ts
		FROM messages m
		JOIN conversations c ON m.conversation_id = c.id
		ORDER BY m.ts DESC, m.rowid DESC
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
func (s *SQLiteStore) ListCustomerMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conversation_id, sender, text, ts
		FROM messages
		WHERE sender = ?
		ORDER BY ts ASC, rowid ASC
	`, models.SenderCustomer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// ListSentiments returns every sentiment record.
func (s *SQLiteStore) ListSentiments(ctx context.Context) ([]models.Sentiment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, message_id, score, label, urgent
		FROM sentiments
		ORDER BY rowid ASC
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
func (s *SQLiteStore) ListCustomerSentiments(ctx context.Context) ([]models.CustomerSentiment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.customer_id, sn.label, sn.urgent
		FROM messages m
		JOIN sentiments sn ON sn.message_id = m.id
		JOIN conversations c ON m.conversation_id = c.id
		WHERE m.sender = ?
		ORDER BY m.ts ASC, m.rowid ASC
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

// CreateFAQ inserts a new FAQ entry. Tags persist as a JSON array.
func (s *SQLiteStore) CreateFAQ(ctx context.Context, faq models.FAQ) error {
	tags, err := json.Marshal(faq.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO faqs (id, question, answer, tags)
		VALUES (?, ?, ?, ?)
	`, faq.ID, faq.Question, faq.Answer, string(tags))
	return err
}

// ListFAQs returns all FAQ entries in insertion order. The matcher's
// tie-break depends on this ordering.
func (s *SQLiteStore) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, answer, tags
		FROM faqs
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FAQ
	for rows.Next() {
		var faq models.FAQ
		var tags string
		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Answer, &tags); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &faq.Tags); err != nil {
			return nil, err
		}
		out = append(out, faq)
	}
	return out, rows.Err()
}

// CountFAQs returns the number of FAQ entries.
func (s *SQLiteStore) CountFAQs(ctx context.Context) (int64, error) {
	return s.countRows(ctx, `SELECT COUNT(*) FROM faqs`)
}

// CountMessages returns the number of messages of any sender.
func (s *SQLiteStore) CountMessages(ctx context.Context) (int64, error) {
	return s.countRows(ctx, `SELECT COUNT(*) FROM messages`)
}

func (s *SQLiteStore) countRows(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
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
