package nlp

import "testing"

func TestDetectIntentRuleOrder(t *testing.T) {
	// refund is declared before pricing, so it wins the overlap.
	if got := DetectIntent("I want a refund and ask about pricing"); got != "refund" {
		t.Fatalf("expected refund, got %s", got)
	}
}

func TestDetectIntentPerRule(t *testing.T) {
	cases := map[string]string{
		"what does the pro plan cost":        "pricing",
		"where is my order":                  "delivery",
		"my card was charged twice":          "payment",
		"i forgot my password":               "account",
		"hello there":                        "greeting",
		"good morning":                       "greeting",
		"the weather is nice today":          IntentNone,
		"can I get my money back":            "refund",
		"tracking number please":             "delivery",
		"need to talk to a human":            "account",
	}
	for text, want := range cases {
		if got := DetectIntent(text); got != want {
			t.Fatalf("DetectIntent(%q) = %s, want %s", text, got, want)
		}
	}
}

func TestDetectIntentHiNeedsTrailingSpace(t *testing.T) {
	// The greeting rule matches "hi " with a trailing space, so a bare
	// "hi" does not classify.
	if got := DetectIntent("hi"); got != IntentNone {
		t.Fatalf("bare hi should not match, got %s", got)
	}
	if got := DetectIntent("hi team"); got != "greeting" {
		t.Fatalf("expected greeting, got %s", got)
	}
}

func TestDetectIntentCaseInsensitive(t *testing.T) {
	if got := DetectIntent("REFUND ME"); got != "refund" {
		t.Fatalf("expected refund, got %s", got)
	}
}
