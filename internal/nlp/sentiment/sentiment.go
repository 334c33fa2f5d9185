// Package sentiment classifies patient dialogue into a fixed three-way
// sentiment taxonomy and an intent category. The sentiment path tries the
// statistical classifier first and falls back to keyword scoring; intent is
// always rule-based.
package sentiment

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

// DefaultConfidenceThreshold is the score below which a statistical
// prediction is treated the same as an unavailable model.
const DefaultConfidenceThreshold = 0.6

var anxiousKeywords = []string{
	"worried", "anxious", "concerned", "nervous", "worry", "scared", "fearful",
	"panic", "stress", "stressed", "apprehensive", "uneasy", "distressed",
	"afraid", "terrified", "frightened", "alarmed", "troubled", "bothered",
}

var reassuredKeywords = []string{
	"relief", "relieved", "great to hear", "that's good to hear", "reassure",
	"reassured", "thank you doctor", "comfortable", "confident", "optimistic",
	"hopeful", "better", "improving", "good news", "reassuring", "calm",
	"peaceful", "satisfied", "content", "pleased", "grateful",
}

var neutralKeywords = []string{
	"okay", "fine", "normal", "usual", "regular", "standard", "typical",
	"average", "moderate", "manageable", "acceptable", "stable",
}

// Intent keyword sets, evaluated in this priority order.
var seekingReassuranceKeywords = []string{
	"will i", "should i", "worry about", "affect me", "does this mean",
	"is it serious", "how long", "what if", "concerned about", "afraid",
	"should i be worried", "is this normal", "what does this mean",
	"am i okay", "will this get better", "is it dangerous",
}

var expressingConcernKeywords = []string{
	"concern", "worry", "anxious", "nervous", "scared", "fearful",
	"bothered", "troubled", "distressed", "upset", "frightened",
}

var reportingSymptomsKeywords = []string{
	"pain", "hurt", "ache", "symptom", "suffered", "injury", "problem",
	"issue", "trouble", "discomfort", "feeling", "experiencing", "having",
	"feels like", "notice", "develop", "occur", "appear",
}

// Classifier holds the registry reference and the confidence threshold.
type Classifier struct {
	registry  *registry.Registry
	threshold float64
	maxChars  int
}

func NewClassifier(reg *registry.Registry, threshold float64, maxChars int) *Classifier {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &Classifier{registry: reg, threshold: threshold, maxChars: maxChars}
}

// Analyze classifies an utterance or full transcript.
func (c *Classifier) Analyze(text string) model.SentimentResult {
	outcome := c.statisticalSentiment(text)
	c.registry.Observe("sentiment", outcome.Status)
	if outcome.OK() {
		return model.SentimentResult{
			Sentiment:  outcome.Value,
			Intent:     classifyIntent(text),
			Confidence: 0.9,
			Method:     model.MethodStatistical,
		}
	}
	return model.SentimentResult{
		Sentiment:  scoreSentiment(text),
		Intent:     classifyIntent(text),
		Confidence: 0.7,
		Method:     model.MethodRuleBased,
	}
}

// statisticalSentiment maps the model's top label onto the medical taxonomy,
// trusting it only above the configured threshold.
func (c *Classifier) statisticalSentiment(text string) registry.Outcome[model.Sentiment] {
	clf, ok := c.registry.Sentiment.Get()
	if !ok {
		return registry.Unavailable[model.Sentiment]()
	}
	pred, err := clf.Classify(textproc.Truncate(strings.TrimSpace(text), c.maxChars))
	if err != nil {
		log.Warn().Err(err).Msg("sentiment inference failed")
		return registry.Unavailable[model.Sentiment]()
	}
	if pred.Score <= c.threshold {
		return registry.LowConfidence[model.Sentiment]()
	}
	label := strings.ToLower(pred.Label)
	switch {
	case strings.Contains(label, "positive") || strings.Contains(label, "joy"):
		return registry.Ok(model.SentimentReassured)
	case strings.Contains(label, "negative") || strings.Contains(label, "sadness") || strings.Contains(label, "anger"):
		return registry.Ok(model.SentimentAnxious)
	case strings.Contains(label, "neutral"):
		return registry.Ok(model.SentimentNeutral)
	}
	return registry.LowConfidence[model.Sentiment]()
}

// scoreSentiment counts keyword occurrences per taxonomy class. Anxious wins
// only when strictly greater than both others; reassured beats neutral;
// everything else is Neutral.
func scoreSentiment(text string) model.Sentiment {
	lower := strings.ToLower(text)
	anxious := countHits(lower, anxiousKeywords)
	reassured := countHits(lower, reassuredKeywords)
	neutral := countHits(lower, neutralKeywords)

	switch {
	case anxious > reassured && anxious > neutral:
		return model.SentimentAnxious
	case reassured > neutral:
		return model.SentimentReassured
	default:
		return model.SentimentNeutral
	}
}

// classifyIntent evaluates the keyword sets in fixed priority order, then an
// interrogative check, then the default.
func classifyIntent(text string) model.Intent {
	lower := strings.ToLower(text)
	switch {
	case anyContained(lower, seekingReassuranceKeywords):
		return model.IntentSeekingReassurance
	case anyContained(lower, expressingConcernKeywords):
		return model.IntentExpressingConcern
	case anyContained(lower, reportingSymptomsKeywords):
		return model.IntentReportingSymptoms
	case textproc.LooksInterrogative(text):
		return model.IntentSeekingReassurance
	}
	return model.IntentReportingSymptoms
}

func countHits(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func anyContained(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
