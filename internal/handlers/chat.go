package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/aura-labs/aura/internal/metrics"
	"github.com/aura-labs/aura/internal/models"
	"github.com/aura-labs/aura/internal/nlp"
	"github.com/aura-labs/aura/internal/store"
)

// SendMessageRequest represents the chat-send request.
type SendMessageRequest struct {
	CustomerID     string `json:"customer_id"`
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// SentimentOut is the sentiment fragment of the chat reply.
type SentimentOut struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// ChatReply represents the chat-send response.
type ChatReply struct {
	Reply          string       `json:"reply"`
	Sentiment      SentimentOut `json:"sentiment"`
	Urgent         bool         `json:"urgent"`
	ConversationID string       `json:"conversation_id"`
	MessageID      string       `json:"message_id"`
}

// MessageOut represents one message in the history response.
type MessageOut struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Sender         string    `json:"sender"`
	Text           string    `json:"text"`
	TS             time.Time `json:"ts"`
}

// SendMessage handles one chat turn: score the customer message,
// generate the bot reply, and persist the whole exchange atomically.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.CustomerID = sanitizeID(req.CustomerID)
	if req.CustomerID == "" {
		h.Error(w, http.StatusBadRequest, "customer_id is required")
		return
	}
	if req.Message == "" {
		h.Error(w, http.StatusBadRequest, "message is required")
		return
	}
	if len(req.Message) > maxMessageLength {
		h.Error(w, http.StatusUnprocessableEntity, "message too long (max 4096 bytes)")
		return
	}

	convID := sanitizeID(req.ConversationID)
	if convID == "" {
		convID = uuid.NewString()
	}

	sent := nlp.ScoreSentiment(req.Message)

	faqs, err := h.db.ListFAQs(r.Context())
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "database error")
		return
	}
	reply, source := nlp.GenerateReply(req.Message, faqs)

	now := time.Now().UTC()
	msgID := ulid.Make().String()

	ex := store.Exchange{
		Conversation: models.Conversation{
			ID:         convID,
			CustomerID: req.CustomerID,
			CreatedAt:  now,
		},
		CustomerMessage: models.Message{
			ID:             msgID,
			ConversationID: convID,
			Sender:         models.SenderCustomer,
			Text:           req.Message,
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
			Text:           reply,
			TS:             now,
		},
	}

	if err := h.db.SaveExchange(r.Context(), ex); err != nil {
		h.Error(w, http.StatusInternalServerError, "failed to store exchange")
		return
	}

	metrics.MessagesReceived.Inc()
	metrics.RepliesGenerated.WithLabelValues(source).Inc()
	metrics.SentimentsScored.WithLabelValues(sent.Label).Inc()
	if sent.Urgent {
		metrics.UrgentMessages.Inc()
	}

	if h.cache != nil {
		h.cache.InvalidateSummary(r.Context())
	}

	h.JSON(w, http.StatusOK, ChatReply{
		Reply:          reply,
		Sentiment:      SentimentOut{Score: sent.Score, Label: sent.Label},
		Urgent:         sent.Urgent,
		ConversationID: convID,
		MessageID:      msgID,
	})
}

// History returns a conversation's messages in ascending time order.
// An unknown conversation yields an empty list, not an error.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	convID := sanitizeID(r.URL.Query().Get("conversation_id"))
	if convID == "" {
		h.Error(w, http.StatusBadRequest, "conversation_id is required")
		return
	}

	msgs, err := h.db.ListMessages(r.Context(), convID)
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "database error")
		return
	}

	out := make([]MessageOut, len(msgs))
	for i, m := range msgs {
		out[i] = MessageOut{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			Sender:         m.Sender,
			Text:           m.Text,
			TS:             m.TS,
		}
	}

	h.JSON(w, http.StatusOK, out)
}
