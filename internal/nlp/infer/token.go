package infer

import (
	"fmt"
	"strings"
)

// Span is one aggregated entity span from a token-classification model.
type Span struct {
	Text  string
	Label string
	Score float64
}

// TokenClassifier runs a token-classification NER model and aggregates
// BIO-tagged subword predictions into word-level spans.
type TokenClassifier struct {
	enc    *encoder
	labels []string
}

// Default label set for CoNLL-style NER heads.
var defaultNERLabels = []string{
	"O", "B-MISC", "I-MISC", "B-PER", "I-PER", "B-ORG", "I-ORG", "B-LOC", "I-LOC",
}

// NewTokenClassifier loads the model; an error means the strategy is
// unavailable, not that the caller should abort.
func NewTokenClassifier(cfg Config) (*TokenClassifier, error) {
	enc, err := newEncoder(cfg)
	if err != nil {
		return nil, err
	}
	labels := cfg.Labels
	if len(labels) == 0 {
		labels = defaultNERLabels
	}
	return &TokenClassifier{enc: enc, labels: labels}, nil
}

// Extract returns entity spans found in text, in document order.
func (c *TokenClassifier) Extract(text string) ([]Span, error) {
	logits, dims, en, err := c.enc.forward(text)
	if err != nil {
		return nil, err
	}
	if len(dims) != 3 {
		return nil, fmt.Errorf("unexpected logits shape %v", dims)
	}
	seqLen, numLabels := int(dims[1]), int(dims[2])
	if numLabels != len(c.labels) {
		return nil, fmt.Errorf("label count mismatch: model %d, config %d", numLabels, len(c.labels))
	}

	var spans []Span
	var cur *Span
	var curScores []float64
	flush := func() {
		if cur == nil {
			return
		}
		var sum float64
		for _, s := range curScores {
			sum += s
		}
		cur.Score = sum / float64(len(curScores))
		cur.Text = strings.TrimSpace(cur.Text)
		if cur.Text != "" {
			spans = append(spans, *cur)
		}
		cur, curScores = nil, nil
	}

	for i := 0; i < seqLen && i < len(en.Tokens); i++ {
		if i < len(en.SpecialTokenMask) && en.SpecialTokenMask[i] == 1 {
			flush()
			continue
		}
		probs := softmax(logits[i*numLabels : (i+1)*numLabels])
		best, bestScore := 0, 0.0
		for j, p := range probs {
			if p > bestScore {
				best, bestScore = j, p
			}
		}
		tag := c.labels[best]
		if tag == "O" {
			flush()
			continue
		}
		kind := strings.TrimPrefix(strings.TrimPrefix(tag, "B-"), "I-")
		token := en.Tokens[i]
		continuation := strings.HasPrefix(token, "##")
		word := strings.TrimPrefix(token, "##")

		switch {
		case cur != nil && cur.Label == kind && (continuation || strings.HasPrefix(tag, "I-")):
			if continuation {
				cur.Text += word
			} else {
				cur.Text += " " + word
			}
			curScores = append(curScores, bestScore)
		default:
			flush()
			cur = &Span{Text: word, Label: kind}
			curScores = []float64{bestScore}
		}
	}
	flush()
	return spans, nil
}

// Close releases model resources.
func (c *TokenClassifier) Close() {
	if c.enc != nil {
		c.enc.Close()
	}
}
