package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medscribe/notetaker-api/internal/nlp/extract"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
)

func newTestSummarizer() *Summarizer {
	extractor := extract.NewExtractor(registry.New(registry.Config{}), 0)
	return NewSummarizer(extractor)
}

func TestSummarizeCarAccident(t *testing.T) {
	text := "Patient: I'm Janet Jones. I was in a car accident and suffered a whiplash injury. " +
		"My neck and back hurt a lot. I had ten physiotherapy sessions. " +
		"Now I only have occasional back pain. Full recovery within six months is expected."

	rec := newTestSummarizer().Summarize(text)

	assert.Equal(t, "Janet Jones", rec.PatientName)
	assert.Contains(t, strings.ToLower(rec.Diagnosis), "whiplash")
	assert.NotEmpty(t, rec.Symptoms)
	assert.NotEmpty(t, rec.Treatment)
	assert.Contains(t, strings.ToLower(rec.CurrentStatus), "occasional back")
	assert.Contains(t, strings.ToLower(rec.Prognosis), "six months")
}

func TestSummarizeEnrichmentAddsCapitalizedMatches(t *testing.T) {
	// "dizziness" is a symptom enrichment pattern; it must come back
	// capitalized and deduplicated case-insensitively.
	rec := newTestSummarizer().Summarize("I keep having dizziness after the crash. The dizziness is worse at night.")

	count := 0
	for _, s := range rec.Symptoms {
		if strings.EqualFold(s, "dizziness") {
			count++
		}
	}
	assert.Equal(t, 1, count, "symptoms: %v", rec.Symptoms)
}

func TestSummarizeDiagnosisLadder(t *testing.T) {
	// Fall text triggers no cascade diagnosis; the summarizer's broader
	// ladder attributes it.
	rec := newTestSummarizer().Summarize("I had a bad fall on the stairs and my arm is sore.")
	assert.Equal(t, "Fall-related injury", rec.Diagnosis)
}

func TestSummarizeTidy(t *testing.T) {
	rec := newTestSummarizer().Summarize("Some ordinary sentence with no clinical content.")

	assert.NotNil(t, rec.Symptoms)
	assert.NotNil(t, rec.Treatment)
	for _, s := range append(append([]string{}, rec.Symptoms...), rec.Treatment...) {
		assert.NotEmpty(t, strings.TrimSpace(s))
	}
	assert.Equal(t, strings.TrimSpace(rec.PatientName), rec.PatientName)
}

func TestSummarizeEmptyInput(t *testing.T) {
	rec := newTestSummarizer().Summarize("")
	assert.Equal(t, "", rec.PatientName)
	assert.Empty(t, rec.Symptoms)
	assert.Empty(t, rec.Treatment)
	assert.Equal(t, "", rec.Diagnosis)
	assert.Equal(t, "", rec.CurrentStatus)
	assert.Equal(t, "", rec.Prognosis)
}
