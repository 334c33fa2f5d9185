package extract

import (
	"regexp"
	"strings"
)

// KeywordMatches holds per-category matches from the keyword/regex strategy,
// deduplicated case-insensitively with first-seen capitalization kept.
type KeywordMatches struct {
	Symptoms   []string
	Treatments []string
	Diagnoses  []string
	Prognosis  []string
}

// matchKeywords runs the enhanced phrase patterns and then the plain keyword
// lists against a lower-cased copy of text, re-locating every match in the
// original-case text so capitalization is preserved.
func matchKeywords(text string) KeywordMatches {
	lower := strings.ToLower(text)
	var m KeywordMatches

	m.Symptoms = matchPatterns(symptomPatterns, lower, text, m.Symptoms)
	m.Treatments = matchPatterns(treatmentPatterns, lower, text, m.Treatments)
	m.Diagnoses = matchPatterns(diagnosisPatterns, lower, text, m.Diagnoses)

	m.Symptoms = matchVocabulary(symptomKeywords, lower, text, m.Symptoms)
	m.Treatments = matchVocabulary(treatmentKeywords, lower, text, m.Treatments)
	m.Diagnoses = matchVocabulary(diagnosisKeywords, lower, text, m.Diagnoses)
	m.Prognosis = matchVocabulary(prognosisKeywords, lower, text, m.Prognosis)

	return m
}

func matchPatterns(patterns []*regexp.Regexp, lower, original string, acc []string) []string {
	for _, re := range patterns {
		for _, match := range re.FindAllStringSubmatch(lower, -1) {
			hit := match[0]
			if len(match) > 1 && match[1] != "" {
				hit = match[1]
			}
			hit = strings.TrimSpace(hit)
			if hit == "" {
				continue
			}
			acc = appendUnique(acc, relocate(hit, original))
		}
	}
	return acc
}

func matchVocabulary(keywords []string, lower, original string, acc []string) []string {
	for _, kw := range keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			continue
		}
		acc = appendUnique(acc, relocate(kw, original))
	}
	return acc
}

// relocate finds the match in the original-case text so "Neck pain" survives
// as written rather than lower-cased.
func relocate(match, original string) string {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(match))
	if err != nil {
		return match
	}
	if found := strings.TrimSpace(re.FindString(original)); found != "" {
		return found
	}
	return match
}

// appendUnique adds v unless an entry equal under case-folding already
// exists; empty and whitespace-only values are dropped.
func appendUnique(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(existing, v) {
			return list
		}
	}
	return append(list, v)
}
