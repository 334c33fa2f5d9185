// Package textproc provides transcript normalization shared by every
// pipeline stage. It has no failure modes: empty input yields empty output.
package textproc

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	sentenceEndRe = regexp.MustCompile(`([.?!])\s+`)
	interrogateRe = regexp.MustCompile(`\b(what|how|when|where|why|is|are|do|does|can|could|would|should)\b`)
	fillerVerbRe  = regexp.MustCompile(`^(have|feel|experience)\s*`)
	titlePrefixRe = regexp.MustCompile(`(?i)^(Mr\.?|Mrs\.?|Ms\.?|Dr\.?)\s*`)
)

// Clean replaces line breaks with spaces, collapses whitespace runs and trims.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Sentences splits normalized text on terminal punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	marked := sentenceEndRe.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LooksInterrogative reports whether text ends with a question mark or
// contains a common interrogative word.
func LooksInterrogative(text string) bool {
	if strings.HasSuffix(strings.TrimSpace(text), "?") {
		return true
	}
	return interrogateRe.MatchString(strings.ToLower(text))
}

// CleanCapture applies the fixed cleanup for trigger captures: trim, strip
// leading filler verbs, capitalize the first letter.
func CleanCapture(s string) string {
	s = fillerVerbRe.ReplaceAllString(strings.TrimSpace(s), "")
	return Capitalize(strings.TrimSpace(s))
}

// StripTitle removes a leading Mr./Mrs./Ms./Dr. token.
func StripTitle(name string) string {
	return strings.TrimSpace(titlePrefixRe.ReplaceAllString(strings.TrimSpace(name), ""))
}

// Capitalize upper-cases the first letter, leaving the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Truncate caps text at n runes. n <= 0 means no limit.
func Truncate(text string, n int) string {
	if n <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
