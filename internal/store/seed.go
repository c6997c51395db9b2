package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/aura-labs/aura/internal/models"
	"github.com/aura-labs/aura/internal/nlp"
)

// seedFAQs are inserted once, on the first boot against an empty store.
var seedFAQs = []models.FAQ{
	{
		ID:       "faq_refund",
		Question: "How do refunds work?",
		Answer:   "Refunds are processed within 5–7 business days to your original payment method.",
		Tags:     []string{"refund", "return", "money back"},
	},
	{
		ID:       "faq_pricing",
		Question: "What are your pricing plans?",
		Answer:   "Standard $20/month, Pro $49/month. Annual saves 2 months.",
		Tags:     []string{"pricing", "plans", "cost"},
	},
}

// seedMessages are reproducible demo fixtures; tests and demos rely on
// these exact texts and their derived sentiments.
var seedMessages = []struct {
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

// Seed inserts the fixture FAQ entries and demo conversations when the
// store is empty. Safe to call on every boot: a non-empty store is
// left untouched.
func Seed(ctx context.Context, s DataStore, logger zerolog.Logger) error {
	faqCount, err := s.CountFAQs(ctx)
	if err != nil {
		return err
	}
	if faqCount == 0 {
		for _, faq := range seedFAQs {
			if err := s.CreateFAQ(ctx, faq); err != nil {
				return err
			}
		}
		logger.Info().Int("count", len(seedFAQs)).Msg("seeded FAQ entries")
	}

	msgCount, err := s.CountMessages(ctx)
	if err != nil {
		return err
	}
	if msgCount > 0 {
		return nil
	}

	for _, seed := range seedMessages {
		now := time.Now().UTC()
		convID := uuid.NewString()
		msgID := ulid.Make().String()
		sent := nlp.ScoreSentiment(seed.text)

		ex := Exchange{
			Conversation: models.Conversation{
				ID:         convID,
				CustomerID: seed.customerID,
				CreatedAt:  now,
			},
			CustomerMessage: models.Message{
				ID:             msgID,
				ConversationID: convID,
				Sender:         models.SenderCustomer,
				Text:           seed.text,
				TS:             now,
			},
			Sentiment: models.Sentiment{
				ID:        uuid.NewString(),
				MessageID: msgID,
				Score:     sent.Score,
				Label:     sent.Label,
				Urgent:    sent.Urgent,
			},
			BotMessage: models.Message{
				ID:             ulid.Make().String(),
				ConversationID: convID,
				Sender:         models.SenderBot,
				Text:           "Thanks! Noted.",
				TS:             now,
			},
		}
		if err := s.SaveExchange(ctx, ex); err != nil {
			return err
		}
	}

	logger.Info().Int("count", len(seedMessages)).Msg("seeded demo conversations")
	return nil
}
