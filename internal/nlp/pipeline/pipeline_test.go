package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscribe/notetaker-api/internal/nlp/extract"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
	"github.com/medscribe/notetaker-api/internal/nlp/sentiment"
	"github.com/medscribe/notetaker-api/internal/nlp/summarize"
)

func newTestPipeline() *Pipeline {
	reg := registry.New(registry.Config{})
	extractor := extract.NewExtractor(reg, 0)
	return New(extractor, summarize.NewSummarizer(extractor), sentiment.NewClassifier(reg, 0, 0))
}

const transcript = `Patient: I'm Janet Jones. I was in a car accident and suffered a whiplash injury.
My neck and back hurt a lot. I had ten physiotherapy sessions and I'm worried it will come back.
Now I only have occasional back pain. Doctor: You should make a full recovery within six months.`

func TestProcessEndToEnd(t *testing.T) {
	result := newTestPipeline().Process(transcript, nil)

	assert.Equal(t, "Janet Jones", result.Entities.PatientName)
	assert.Contains(t, strings.ToLower(result.Entities.Diagnosis), "whiplash")
	assert.NotEmpty(t, result.Summary.Symptoms)
	assert.NotNil(t, result.Keywords)

	assert.Contains(t, []string{"Anxious", "Neutral", "Reassured"}, result.Sentiment.Session)
	assert.NotEmpty(t, result.Sentiment.Intent)

	assert.NotEmpty(t, result.SOAP.Subjective.ChiefComplaint)
	assert.NotEmpty(t, result.SOAP.Objective.PhysicalExam)
	assert.NotEmpty(t, result.SOAP.Assessment.Diagnosis)
	assert.NotEmpty(t, result.SOAP.Plan.Treatment)
}

func TestProcessDeterministic(t *testing.T) {
	p := newTestPipeline()
	first := p.Process(transcript, nil)
	second := p.Process(transcript, nil)
	assert.Equal(t, first, second)
}

func TestProcessEmptyInput(t *testing.T) {
	result := newTestPipeline().Process("   \n  ", nil)

	assert.Equal(t, "", result.Entities.PatientName)
	assert.Empty(t, result.Entities.Symptoms)
	assert.Equal(t, []string{}, result.Keywords)
	assert.Equal(t, "Not recorded", result.SOAP.Subjective.PatientName)
}

func TestExtractKeywordsPhrases(t *testing.T) {
	got := extractKeywords("Severe headache now. Then severe headache so bad.")
	assert.Equal(t, []string{"Severe headache"}, got)
}

func TestExtractKeywordsDropsSingleWords(t *testing.T) {
	got := extractKeywords("The headache was bad.")
	assert.Empty(t, got)
}

func TestExtractKeywordsCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString(string(rune('a'+i%26)) + "lpha ")
		sb.WriteString(string(rune('a'+i%26)) + "ravo and ")
	}
	got := extractKeywords(sb.String())
	require.LessOrEqual(t, len(got), maxKeywords)
}

func TestExtractKeywordsNonNil(t *testing.T) {
	assert.Equal(t, []string{}, extractKeywords(""))
	assert.Equal(t, []string{}, extractKeywords("a the and or"))
}
