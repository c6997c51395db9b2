package nlp

import "strings"

// IntentNone is returned when no rule matches.
const IntentNone = "none"

type intentRule struct {
	name     string
	keywords []string
}

// intentRules is an ORDERED list: earlier rules win on overlap, so a
// message mentioning both refunds and pricing classifies as refund.
// Reordering changes observable behavior.
var intentRules = []intentRule{
	{"refund", []string{"refund", "money back", "return"}},
	{"pricing", []string{"pricing", "price", "cost", "plan", "plans", "upgrade"}},
	{"delivery", []string{"delivery", "deliver", "shipping", "ship", "track", "tracking", "order status", "where is my order"}},
	{"payment", []string{"payment", "charge", "charged", "bill", "billing", "invoice", "card", "failed", "declined"}},
	{"account", []string{"support", "help", "contact", "agent", "human", "login", "password", "reset"}},
	{"greeting", []string{"hello", "hi ", "hey", "good morning", "good evening", "thanks", "thank you"}},
}

// DetectIntent returns the first intent whose keyword list has a
// substring match in the lower-cased text, or IntentNone.
func DetectIntent(text string) string {
	t := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, k := range rule.keywords {
			if strings.Contains(t, k) {
				return rule.name
			}
		}
	}
	return IntentNone
}
