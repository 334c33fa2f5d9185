package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscribe/notetaker-api/internal/nlp/registry"
)

const carAccidentTranscript = `Patient: I'm Janet Jones. I was in a car accident and suffered a whiplash injury. My neck and back hurt a lot for four weeks. I had ten physiotherapy sessions and took painkillers. Now I only have occasional back pain. Doctor: You should make a full recovery within six months.`

// newTestExtractor builds an extractor backed by a registry with no model
// files configured, so every statistical strategy reports unavailable and the
// cascade runs on rules alone.
func newTestExtractor() *Extractor {
	return NewExtractor(registry.New(registry.Config{}), 0)
}

func TestExtractCarAccident(t *testing.T) {
	rec := newTestExtractor().Extract(carAccidentTranscript)

	assert.Equal(t, "Janet Jones", rec.PatientName)
	assert.True(t, containsFold(rec.Symptoms, "neck pain"), "symptoms: %v", rec.Symptoms)
	assert.True(t, containsFold(rec.Symptoms, "back pain"), "symptoms: %v", rec.Symptoms)
	assert.Contains(t, strings.ToLower(rec.Diagnosis), "whiplash")
	assert.Contains(t, rec.Treatment, "10 physiotherapy sessions")
	assert.Equal(t, "Occasional back pain", rec.CurrentStatus)
	assert.Equal(t, "Within six months", rec.Prognosis)
}

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t "} {
		rec := newTestExtractor().Extract(text)
		assert.Equal(t, "", rec.PatientName)
		assert.NotNil(t, rec.Symptoms)
		assert.Empty(t, rec.Symptoms)
		assert.NotNil(t, rec.Treatment)
		assert.Empty(t, rec.Treatment)
		assert.Equal(t, "", rec.Diagnosis)
	}
}

func TestExtractNoDuplicates(t *testing.T) {
	rec := newTestExtractor().Extract(carAccidentTranscript + " " + carAccidentTranscript)

	assertNoFoldDuplicates(t, rec.Symptoms)
	assertNoFoldDuplicates(t, rec.Treatment)
	for _, s := range rec.Symptoms {
		assert.Equal(t, strings.TrimSpace(s), s)
		assert.NotEmpty(t, s)
	}
}

func TestExtractKeywordsSeeFullText(t *testing.T) {
	// Keyword strategies scan the whole transcript; only the statistical
	// model input is truncated.
	long := strings.Repeat("The patient described the events of that day in detail. ", 20) +
		"Eventually she mentioned persistent back pain."
	require.Greater(t, len(long), DefaultMaxModelChars)

	rec := newTestExtractor().Extract(long)
	assert.True(t, containsFold(rec.Symptoms, "back pain"), "symptoms: %v", rec.Symptoms)
}

func TestExtractSessionCountTemplate(t *testing.T) {
	rec := newTestExtractor().Extract("I completed 8 physiotherapy sessions last month.")
	assert.Contains(t, rec.Treatment, "8 physiotherapy sessions")
}

func TestExtractReportsStrategyOutcomes(t *testing.T) {
	outcomes := map[string]registry.Status{}
	reg := registry.New(registry.Config{
		OnOutcome: func(strategy string, status registry.Status) {
			outcomes[strategy] = status
		},
	})

	NewExtractor(reg, 0).Extract(carAccidentTranscript)

	// Without model files the clinical strategy is unavailable; the
	// linguistic strategy still contributes its lexical spans.
	assert.Equal(t, registry.StatusUnavailable, outcomes["clinical_ner"])
	assert.Equal(t, registry.StatusOk, outcomes["general_ner"])
}

func TestExtractDetailedTypedSpans(t *testing.T) {
	_, spans := newTestExtractor().ExtractDetailed(
		"I paid $150 on 3/14/2024 and did six weeks of rest, about 80% better.")

	assert.Contains(t, spans.Money, "$150")
	assert.Contains(t, spans.Date, "3/14/2024")
	assert.Contains(t, spans.Percent, "80%")
	assert.Contains(t, spans.Quantity, "six weeks")
}

func containsFold(list []string, v string) bool {
	for _, e := range list {
		if strings.EqualFold(e, v) {
			return true
		}
	}
	return false
}

func assertNoFoldDuplicates(t *testing.T, list []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, v := range list {
		key := strings.ToLower(v)
		assert.False(t, seen[key], "duplicate entry %q in %v", v, list)
		seen[key] = true
	}
}
