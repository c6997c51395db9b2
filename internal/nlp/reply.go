package nlp

import "github.com/aura-labs/aura/internal/models"

// Reply sources, used as metric labels.
const (
	SourceFAQ      = "faq"
	SourceIntent   = "intent"
	SourceFallback = "fallback"
)

// cannedReplies are part of the observable contract; the literals must
// not be reworded.
var cannedReplies = map[string]string{
	"refund":   "I’m sorry about the trouble. I can help with refunds. Could you share your order ID?",
	"pricing":  "Sure — our Standard plan is $20/month and Pro is $49/month. Would you like monthly or annual details?",
	"delivery": "I can check that. Please share your order ID and I’ll look up your shipment status right away.",
	"payment":  "Got it — payment issues are frustrating. Do you see an error message? I can help retry or switch the method.",
	"account":  "You can reach support 24/7 via the Help page or email support@example.com. For password resets, use the Reset link.",
	"greeting": "Hi! I’m here to help. What can I assist you with today?",
}

const fallbackReply = "Thanks for reaching out! I’m here to help. Could you give me a few more details?"

// GenerateReply composes the matchers: an FAQ hit returns its answer
// verbatim and short-circuits intent detection; otherwise the intent's
// canned reply is used, or the fallback when no rule matches. The
// second return value names which path produced the reply.
func GenerateReply(text string, faqs []models.FAQ) (string, string) {
	if f := MatchFAQ(text, faqs); f != nil {
		return f.Answer, SourceFAQ
	}
	if intent := DetectIntent(text); intent != IntentNone {
		return cannedReplies[intent], SourceIntent
	}
	return fallbackReply, SourceFallback
}
