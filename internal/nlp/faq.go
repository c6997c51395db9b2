package nlp

import (
	"regexp"
	"strings"

	"github.com/aura-labs/aura/internal/models"
)

// faqTokenRegex extracts the alphabetic runs (4+ chars) that count as
// match tokens. Shorter runs carry too little signal at this scale.
var faqTokenRegex = regexp.MustCompile(`[a-zA-Z]{4,}`)

// tokenSet collapses the text into a set of lower-cased tokens.
func tokenSet(text string) map[string]struct{} {
	words := faqTokenRegex.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// MatchFAQ returns the FAQ entry with the strictly highest token
// overlap against the input, or nil when nothing overlaps. Overlap is
// computed against the entry's question tokens plus its tags; tags are
// lower-cased but compared whole, so a tag like "money back" only
// matches the literal token "money back" (which tokenization never
// produces) rather than its words. Ties keep the first entry seen, so
// items must be supplied in a stable insertion order.
func MatchFAQ(text string, items []models.FAQ) *models.FAQ {
	tokens := tokenSet(text)
	if len(tokens) == 0 || len(items) == 0 {
		return nil
	}

	var best *models.FAQ
	bestScore := 0
	for i := range items {
		candidates := tokenSet(items[i].Question)
		for _, tag := range items[i].Tags {
			candidates[strings.ToLower(tag)] = struct{}{}
		}

		overlap := 0
		for tok := range tokens {
			if _, ok := candidates[tok]; ok {
				overlap++
			}
		}
		if overlap > bestScore {
			bestScore = overlap
			best = &items[i]
		}
	}

	if bestScore < 1 {
		return nil
	}
	return best
}
