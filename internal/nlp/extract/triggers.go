package extract

import (
	"regexp"
	"strings"

	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

// The lexical trigger tables for patient name, current status and prognosis
// live here and only here; the cascade and the summarizer both consume them
// so the two derivations cannot drift apart.

// nameTriggers match an inline self-introduction. The lead-in phrase is
// case-insensitive; the captured name must be capitalized.
var nameTriggers = []*regexp.Regexp{
	regexp.MustCompile(`(?:(?i)i'?m|(?i)i am)\s+(?:(?i)(?:mr|mrs|ms|dr)\.?\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?:(?i)my name is|(?i)my name'?s)\s+(?:(?i)(?:mr|mrs|ms|dr)\.?\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?:(?i)this is)\s+(?:(?i)(?:mr|mrs|ms|dr)\.?\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?:(?i)you can call me|(?i)call me)\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`(?:(?i)i go by)\s+(?:(?i)(?:mr|mrs|ms|dr)\.?\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?:(?i)(?:patient|pt):\s*(?:i'?m|i am))\s+(?:(?i)(?:mr|mrs|ms|dr)\.?\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

// statusTriggers and prognosisTriggers run against lower-cased text; the
// first match wins and its capture is cleaned per textproc.CleanCapture.
var statusTriggers = []*regexp.Regexp{
	regexp.MustCompile(`now only\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`currently\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`still\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`only\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`occasional\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`no longer\s+(.*?)(?:\.|$)`),
}

var prognosisTriggers = []*regexp.Regexp{
	regexp.MustCompile(`full recovery\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`expected\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`prognosis\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`should recover\s+(.*?)(?:\.|$)`),
	regexp.MustCompile(`within\s+(.*?)(?:\.|$)`),
}

// PatientName applies the inline name triggers in order, then falls back to a
// speaker-labeled "Patient:" line. Titles are stripped from any capture.
func PatientName(text string) string {
	for _, re := range nameTriggers {
		if m := re.FindStringSubmatch(text); m != nil {
			name := textproc.StripTitle(m[1])
			if len(name) > 1 {
				return name
			}
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToLower(line), "patient:") {
			continue
		}
		candidate := strings.TrimSpace(line[len("patient:"):])
		words := strings.Fields(candidate)
		if len(words) >= 2 && words[0] != "" && words[0][0] >= 'A' && words[0][0] <= 'Z' {
			return textproc.StripTitle(candidate)
		}
	}
	return ""
}

// CurrentStatus applies the status trigger table to lower-cased text.
func CurrentStatus(text string) string {
	return applyTriggers(statusTriggers, text)
}

// Prognosis applies the prognosis trigger table to lower-cased text.
func Prognosis(text string) string {
	return applyTriggers(prognosisTriggers, text)
}

func applyTriggers(triggers []*regexp.Regexp, text string) string {
	lower := strings.ToLower(text)
	for _, re := range triggers {
		if m := re.FindStringSubmatch(lower); m != nil {
			if cleaned := textproc.CleanCapture(m[1]); cleaned != "" {
				return cleaned
			}
		}
	}
	return ""
}

// Inference ladders applied only when a field is still empty after primary
// extraction. Each is an ordered list of substring conditions; the first hit
// wins. They are shared between the cascade and the summarizer.

type inferRule struct {
	all   []string // every substring must occur
	any   []string // at least one must occur (ignored when empty)
	value string
}

func applyLadder(rules []inferRule, lower string) string {
	for _, r := range rules {
		hit := true
		for _, s := range r.all {
			if !strings.Contains(lower, s) {
				hit = false
				break
			}
		}
		if hit && len(r.any) > 0 {
			hit = false
			for _, s := range r.any {
				if strings.Contains(lower, s) {
					hit = true
					break
				}
			}
		}
		if hit {
			return r.value
		}
	}
	return ""
}

var diagnosisCascadeLadder = []inferRule{
	{all: []string{"whiplash"}, value: "Whiplash injury"},
	{any: []string{"car accident", "crash"}, value: "Whiplash injury"},
	{all: []string{"neck", "back", "hurt"}, value: "Whiplash injury"},
}

var diagnosisSummaryLadder = []inferRule{
	{all: []string{"whiplash"}, value: "Whiplash injury"},
	{any: []string{"car accident", "crash"}, value: "Motor vehicle accident injury"},
	{all: []string{"fall"}, value: "Fall-related injury"},
	{all: []string{"sports injury"}, value: "Sports injury"},
}

var statusLadder = []inferRule{
	{all: []string{"occasional", "back"}, value: "Occasional back pain"},
	{all: []string{"occasional", "pain"}, value: "Occasional pain"},
	{any: []string{"improving", "better"}, value: "Improving"},
	{all: []string{"no longer", "pain"}, value: "Pain resolved"},
}

var prognosisLadder = []inferRule{
	{all: []string{"full recovery", "six months"}, value: "Full recovery expected within six months"},
	{all: []string{"full recovery"}, value: "Full recovery expected"},
	{all: []string{"recovery", "months"}, value: "Recovery expected within months"},
	{all: []string{"chronic"}, value: "Chronic condition"},
	{any: []string{"whiplash"}, value: "Full recovery expected within six months"},
	{all: []string{"neck", "back"}, value: "Full recovery expected within six months"},
}

// InferDiagnosis is the cascade's diagnosis fallback ladder.
func InferDiagnosis(lower string) string { return applyLadder(diagnosisCascadeLadder, lower) }

// InferSummaryDiagnosis is the summarizer's broader diagnosis ladder.
func InferSummaryDiagnosis(lower string) string { return applyLadder(diagnosisSummaryLadder, lower) }

// InferStatus is the shared current-status fallback ladder.
func InferStatus(lower string) string { return applyLadder(statusLadder, lower) }

// InferPrognosis is the shared prognosis fallback ladder.
func InferPrognosis(lower string) string { return applyLadder(prognosisLadder, lower) }
