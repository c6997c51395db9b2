// Package nlp implements the deterministic keyword-rule engine behind
// the support bot: sentiment scoring, intent detection, FAQ matching
// and reply generation. There is no learning and no external model
// call; identical input always produces identical output.
package nlp

import "strings"

// Sentiment labels.
const (
	LabelPositive = "pos"
	LabelNegative = "neg"
	LabelNeutral  = "neu"
)

// Sentiment is the result of scoring one customer utterance.
type Sentiment struct {
	Score  float64 `json:"score"` // [-1.0, 1.0]
	Label  string  `json:"label"`
	Urgent bool    `json:"urgent"`
}

var posWords = []string{
	"great", "thanks", "thank you", "love", "awesome", "helpful",
	"happy", "amazing", "perfect",
}

var negWords = []string{
	"angry", "upset", "terrible", "hate", "late", "broken", "refund",
	"worst", "delay", "ridiculous", "issue", "complaint",
}

var urgentTokens = []string{
	"urgent", "asap", "now", "immediately", "right away", "cant",
	"can't", "cannot", "down", "escalate", "manager", "supervisor",
}

// ScoreSentiment maps free text to a polarity score, a label and an
// urgency flag. Keywords match as substrings of the lower-cased text;
// each keyword counts at most once no matter how often it repeats.
// Score steps are 0.25 per net keyword, clamped to [-1.0, 1.0].
func ScoreSentiment(text string) Sentiment {
	t := strings.ToLower(text)

	pos := countMatches(t, posWords)
	neg := countMatches(t, negWords)

	score := 0.0
	switch {
	case pos > neg:
		score = min(1.0, 0.25*float64(pos-neg))
	case neg > pos:
		score = max(-1.0, -0.25*float64(neg-pos))
	}

	label := LabelNeutral
	if score > 0.05 {
		label = LabelPositive
	} else if score < -0.05 {
		label = LabelNegative
	}

	urgent := countMatches(t, urgentTokens) > 0 || (label == LabelNegative && neg >= 2)

	return Sentiment{Score: score, Label: label, Urgent: urgent}
}

func countMatches(lowered string, keywords []string) int {
	n := 0
	for _, w := range keywords {
		if strings.Contains(lowered, w) {
			n++
		}
	}
	return n
}
