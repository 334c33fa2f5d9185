// Package summarize produces the patient-facing summary record. It never
// trusts a caller-provided entity record: it re-runs the extraction cascade,
// layers additional regex-derived signal on top, and fills remaining gaps
// with the shared lexical-trigger ladders.
package summarize

import (
	"regexp"
	"strings"

	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/internal/nlp/extract"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

// Enrichment patterns run in addition to the cascade's own vocabulary; these
// matches are capitalized rather than relocated.
var symptomEnrichment = []*regexp.Regexp{
	regexp.MustCompile(`neck pain`), regexp.MustCompile(`back pain`),
	regexp.MustCompile(`head pain`), regexp.MustCompile(`shoulder pain`),
	regexp.MustCompile(`chest pain`), regexp.MustCompile(`abdominal pain`),
	regexp.MustCompile(`knee pain`), regexp.MustCompile(`hip pain`),
	regexp.MustCompile(`headache`), regexp.MustCompile(`dizziness`),
	regexp.MustCompile(`nausea`), regexp.MustCompile(`fatigue`),
	regexp.MustCompile(`stiffness`), regexp.MustCompile(`swelling`),
	regexp.MustCompile(`bruising`), regexp.MustCompile(`numbness`),
}

var treatmentEnrichment = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s+(?:physiotherapy|physio|therapy)\s+sessions`),
	regexp.MustCompile(`painkillers?`), regexp.MustCompile(`medication`),
	regexp.MustCompile(`surgery`), regexp.MustCompile(`operation`),
	regexp.MustCompile(`injection`), regexp.MustCompile(`rehabilitation`),
	regexp.MustCompile(`exercise`), regexp.MustCompile(`stretching`),
	regexp.MustCompile(`massage`), regexp.MustCompile(`heat therapy`),
	regexp.MustCompile(`ice therapy`),
}

// Summarizer wraps the extraction cascade.
type Summarizer struct {
	extractor *extract.Extractor
}

func NewSummarizer(extractor *extract.Extractor) *Summarizer {
	return &Summarizer{extractor: extractor}
}

// Summarize builds the summary record for text.
func (s *Summarizer) Summarize(text string) model.SummaryRecord {
	entities := s.extractor.Extract(text)

	rec := model.SummaryRecord{
		PatientName:   entities.PatientName,
		Symptoms:      append([]string{}, entities.Symptoms...),
		Diagnosis:     entities.Diagnosis,
		Treatment:     append([]string{}, entities.Treatment...),
		CurrentStatus: entities.CurrentStatus,
		Prognosis:     entities.Prognosis,
	}

	// The name is always recomputed; the cascade may have taken a weaker
	// statistical candidate.
	if rec.PatientName == "" {
		rec.PatientName = extract.PatientName(text)
	}

	lower := strings.ToLower(text)
	rec.Symptoms = enrich(rec.Symptoms, symptomEnrichment, lower)
	rec.Treatment = enrich(rec.Treatment, treatmentEnrichment, lower)

	if rec.Diagnosis == "" {
		rec.Diagnosis = extract.InferSummaryDiagnosis(lower)
	}
	if rec.CurrentStatus == "" {
		rec.CurrentStatus = extract.InferStatus(lower)
	}
	if rec.Prognosis == "" {
		rec.Prognosis = extract.InferPrognosis(lower)
	}

	return tidy(rec)
}

// enrich appends capitalized pattern matches not already present under
// case-insensitive comparison.
func enrich(existing []string, patterns []*regexp.Regexp, lower string) []string {
	for _, re := range patterns {
		for _, m := range re.FindAllString(lower, -1) {
			m = strings.TrimSpace(m)
			if m == "" || containsFold(existing, m) {
				continue
			}
			existing = append(existing, textproc.Capitalize(m))
		}
	}
	return existing
}

// tidy trims every string field and drops empty list entries.
func tidy(rec model.SummaryRecord) model.SummaryRecord {
	rec.PatientName = strings.TrimSpace(rec.PatientName)
	rec.Diagnosis = strings.TrimSpace(rec.Diagnosis)
	rec.CurrentStatus = strings.TrimSpace(rec.CurrentStatus)
	rec.Prognosis = strings.TrimSpace(rec.Prognosis)
	rec.Symptoms = compact(rec.Symptoms)
	rec.Treatment = compact(rec.Treatment)
	return rec
}

func compact(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(list []string, v string) bool {
	for _, existing := range list {
		if strings.EqualFold(existing, v) {
			return true
		}
	}
	return false
}
