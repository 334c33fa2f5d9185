package pipeline

import (
	"strings"
	"unicode"
)

const maxKeywords = 20

// stopwords is a compact list tuned for splitting clinical dialogue into
// candidate phrases; boundaries open wherever a stopword or punctuation sits.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"i": true, "i'm": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "my": true, "your": true, "his": true, "her": true,
	"its": true, "our": true, "their": true, "me": true, "him": true, "them": true,
	"is": true, "am": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"can": true, "could": true, "should": true, "shall": true, "may": true,
	"might": true, "must": true, "to": true, "of": true, "in": true, "on": true,
	"at": true, "by": true, "for": true, "with": true, "about": true,
	"that": true, "this": true, "these": true, "those": true, "there": true,
	"now": true, "then": true, "so": true, "very": true, "really": true,
	"just": true, "only": true, "how": true, "what": true, "when": true,
	"where": true, "why": true, "yes": true, "no": true, "not": true,
	"today": true, "lot": true, "doctor": true, "patient": true,
}

// extractKeywords pulls multiword noun-like phrases from text: stopwords and
// punctuation delimit candidates, single words and non-alphabetic runs are
// dropped, duplicates collapse case-insensitively preserving order, capped
// at maxKeywords.
func extractKeywords(text string) []string {
	keywords := []string{}
	seen := map[string]bool{}

	var phrase []string
	flush := func() {
		if len(phrase) >= 2 {
			candidate := strings.Join(phrase, " ")
			key := strings.ToLower(candidate)
			if !seen[key] && len(candidate) >= 3 {
				seen[key] = true
				keywords = append(keywords, candidate)
			}
		}
		phrase = nil
	}

	for _, raw := range strings.Fields(text) {
		word := strings.TrimFunc(raw, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		boundary := word != raw && strings.IndexFunc(raw, unicode.IsPunct) >= 0
		if word == "" || stopwords[strings.ToLower(word)] || !hasLetter(word) {
			flush()
			continue
		}
		phrase = append(phrase, word)
		if boundary { // trailing punctuation closes the phrase
			flush()
		}
		if len(keywords) >= maxKeywords {
			break
		}
	}
	flush()

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
