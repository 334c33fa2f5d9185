// Package extract implements the multi-strategy entity extraction cascade:
// a statistical token-classification model, a linguistic typed-span
// recognizer, and a keyword/regex matcher, run unconditionally and merged
// under fixed precedence rules into one EntityRecord. The cascade never
// returns an error; a failed strategy simply contributes nothing.
package extract

import (
	"strings"

	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
)

// DefaultMaxModelChars bounds statistical model input when no override is
// configured. It respects model input limits, not latency.
const DefaultMaxModelChars = 512

// Extractor runs the cascade against a shared model registry.
type Extractor struct {
	registry      *registry.Registry
	maxModelChars int
}

func NewExtractor(reg *registry.Registry, maxModelChars int) *Extractor {
	if maxModelChars <= 0 {
		maxModelChars = DefaultMaxModelChars
	}
	return &Extractor{registry: reg, maxModelChars: maxModelChars}
}

// Extract merges all strategies into one canonical record.
func (e *Extractor) Extract(text string) model.EntityRecord {
	rec, _ := e.ExtractDetailed(text)
	return rec
}

// ExtractDetailed additionally returns the auxiliary typed spans for callers
// that expose extraction internals.
func (e *Extractor) ExtractDetailed(text string) (model.EntityRecord, TypedSpans) {
	rec := model.NewEntityRecord()
	if strings.TrimSpace(text) == "" {
		return rec, TypedSpans{}
	}
	lower := strings.ToLower(text)

	statistical := e.statisticalSpans(text)
	linguistic := e.linguisticSpans(text)
	keywords := matchKeywords(text)

	e.registry.Observe("clinical_ner", statistical.Status)
	e.registry.Observe("general_ner", linguistic.Status)

	// Patient name: inline trigger table, then speaker-line fallback.
	rec.PatientName = PatientName(text)

	// Statistical spans: a person/org span becomes the name candidate only
	// when nothing else found one; pain-like surface text joins symptoms.
	if statistical.OK() {
		for _, span := range statistical.Value {
			word := strings.ToLower(span.Text)
			switch {
			case (span.Label == "PER" || span.Label == "ORG") && rec.PatientName == "":
				rec.PatientName = span.Text
			case strings.Contains(word, "pain") || strings.Contains(word, "hurt"):
				rec.Symptoms = appendUnique(rec.Symptoms, span.Text)
			}
		}
	}

	for _, s := range keywords.Symptoms {
		rec.Symptoms = appendUnique(rec.Symptoms, s)
	}
	if len(keywords.Diagnoses) > 0 {
		rec.Diagnosis = keywords.Diagnoses[0]
	}
	for _, t := range keywords.Treatments {
		rec.Treatment = appendUnique(rec.Treatment, t)
	}

	rec.CurrentStatus = CurrentStatus(text)
	rec.Prognosis = Prognosis(text)

	// Fallback ladders fill fields primary extraction left empty.
	if rec.Diagnosis == "" {
		rec.Diagnosis = InferDiagnosis(lower)
	}
	if rec.CurrentStatus == "" {
		rec.CurrentStatus = InferStatus(lower)
	}
	if rec.Prognosis == "" {
		rec.Prognosis = InferPrognosis(lower)
	}

	// Forced co-occurrence rules.
	if strings.Contains(lower, "neck") && strings.Contains(lower, "back") {
		rec.Symptoms = appendUnique(rec.Symptoms, "Neck pain")
		rec.Symptoms = appendUnique(rec.Symptoms, "Back pain")
	}
	if strings.Contains(lower, "ten physiotherapy sessions") || strings.Contains(lower, "10 physiotherapy sessions") {
		rec.Treatment = appendUnique(rec.Treatment, "10 physiotherapy sessions")
	} else if m := sessionCountRe.FindStringSubmatch(lower); m != nil {
		rec.Treatment = appendUnique(rec.Treatment, m[1]+" physiotherapy sessions")
	}

	var spans TypedSpans
	if linguistic.OK() {
		spans = linguistic.Value
	}
	return rec, spans
}
