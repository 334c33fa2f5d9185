package infer

import "fmt"

// Prediction is the top-scoring label of a sequence classifier.
type Prediction struct {
	Label string
	Score float64
}

// SequenceClassifier runs a sequence-classification model (one label per
// input text).
type SequenceClassifier struct {
	enc    *encoder
	labels []string
}

// Default label order for sentiment heads.
var defaultSentimentLabels = []string{"negative", "neutral", "positive"}

func NewSequenceClassifier(cfg Config) (*SequenceClassifier, error) {
	enc, err := newEncoder(cfg)
	if err != nil {
		return nil, err
	}
	labels := cfg.Labels
	if len(labels) == 0 {
		labels = defaultSentimentLabels
	}
	return &SequenceClassifier{enc: enc, labels: labels}, nil
}

// Classify returns the highest-scoring label for text.
func (c *SequenceClassifier) Classify(text string) (Prediction, error) {
	logits, dims, _, err := c.enc.forward(text)
	if err != nil {
		return Prediction{}, err
	}
	if len(dims) != 2 || int(dims[1]) != len(c.labels) {
		return Prediction{}, fmt.Errorf("unexpected logits shape %v for %d labels", dims, len(c.labels))
	}
	probs := softmax(logits)
	best, bestScore := 0, 0.0
	for i, p := range probs {
		if p > bestScore {
			best, bestScore = i, p
		}
	}
	return Prediction{Label: c.labels[best], Score: bestScore}, nil
}

// Close releases model resources.
func (c *SequenceClassifier) Close() {
	if c.enc != nil {
		c.enc.Close()
	}
}
