package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
)

func newTestClassifier() *Classifier {
	return NewClassifier(registry.New(registry.Config{}), 0, 0)
}

func TestAnalyzeFallsBackToRules(t *testing.T) {
	// "worried" matches the anxious sentiment set but no concern intent
	// keyword ("worry" is not a substring of it), so "pain" decides the
	// intent.
	result := newTestClassifier().Analyze("I'm really worried about this pain")

	assert.Equal(t, model.SentimentAnxious, result.Sentiment)
	assert.Equal(t, model.IntentReportingSymptoms, result.Intent)
	assert.Equal(t, model.MethodRuleBased, result.Method)
	assert.Equal(t, 0.7, result.Confidence)
}

func TestAnalyzeConcernOutranksSymptoms(t *testing.T) {
	result := newTestClassifier().Analyze("I'm nervous about this pain")

	assert.Equal(t, model.SentimentAnxious, result.Sentiment)
	assert.Equal(t, model.IntentExpressingConcern, result.Intent)
	assert.Equal(t, model.MethodRuleBased, result.Method)
}

func TestAnalyzeReportsOutcome(t *testing.T) {
	outcomes := map[string]registry.Status{}
	reg := registry.New(registry.Config{
		OnOutcome: func(strategy string, status registry.Status) {
			outcomes[strategy] = status
		},
	})

	NewClassifier(reg, 0, 0).Analyze("I'm fine")

	assert.Equal(t, registry.StatusUnavailable, outcomes["sentiment"])
}

func TestAnalyzeTaxonomyMembership(t *testing.T) {
	texts := []string{
		"I'm scared it will never heal",
		"That is such a relief, thank you doctor",
		"It feels okay, pretty normal",
		"",
	}
	for _, text := range texts {
		result := newTestClassifier().Analyze(text)
		assert.Contains(t, []model.Sentiment{
			model.SentimentAnxious, model.SentimentNeutral, model.SentimentReassured,
		}, result.Sentiment, "text: %q", text)
		assert.Contains(t, []model.Intent{
			model.IntentSeekingReassurance, model.IntentReportingSymptoms, model.IntentExpressingConcern,
		}, result.Intent, "text: %q", text)
	}
}

func TestScoreSentimentTieBreaks(t *testing.T) {
	// Anxious requires a strict majority over both other classes.
	assert.Equal(t, model.SentimentReassured, scoreSentiment("nervous yet calm"))

	// Reassured beats neutral on any surplus.
	assert.Equal(t, model.SentimentReassured, scoreSentiment("okay, relieved and hopeful"))

	// Nothing matched: neutral.
	assert.Equal(t, model.SentimentNeutral, scoreSentiment("the appointment is on Tuesday"))

	assert.Equal(t, model.SentimentAnxious, scoreSentiment("so worried and scared"))
}

func TestClassifyIntentPriorities(t *testing.T) {
	assert.Equal(t, model.IntentSeekingReassurance, classifyIntent("Will I be able to run again?"))
	assert.Equal(t, model.IntentExpressingConcern, classifyIntent("I'm nervous and troubled by it"))
	assert.Equal(t, model.IntentReportingSymptoms, classifyIntent("I've been experiencing discomfort"))

	// Interrogative fallback when no keyword set matches.
	assert.Equal(t, model.IntentSeekingReassurance, classifyIntent("And after the summer?"))

	// Default.
	assert.Equal(t, model.IntentReportingSymptoms, classifyIntent("Good morning."))
}
