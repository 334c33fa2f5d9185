package extract

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/medscribe/notetaker-api/internal/nlp/registry"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

// TypedSpans are the linguistic extractor's typed entity spans. They are
// auxiliary signal only: the cascade records them but does not merge them
// into the clinical fields.
type TypedSpans struct {
	Person   []string `json:"PERSON"`
	Org      []string `json:"ORG"`
	Location []string `json:"GPE"`
	Date     []string `json:"DATE"`
	Time     []string `json:"TIME"`
	Money    []string `json:"MONEY"`
	Percent  []string `json:"PERCENT"`
	Quantity []string `json:"QUANTITY"`
}

var (
	dateRe     = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+\d{1,2}(?:,\s*\d{4})?|\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	timeRe     = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:am|pm)?\b`)
	moneyRe    = regexp.MustCompile(`[$£€]\s?\d[\d,]*(?:\.\d+)?`)
	percentRe  = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`)
	quantityRe = regexp.MustCompile(`(?i)\b(?:one|two|three|four|five|six|seven|eight|nine|ten|\d+)\s+(?:days?|weeks?|months?|years?|sessions?|times?)\b`)
)

// linguisticSpans combines the general NER model (person/org/location) with
// lexical patterns for the numeric span types.
func (e *Extractor) linguisticSpans(text string) registry.Outcome[TypedSpans] {
	spans := TypedSpans{
		Date:     findAll(dateRe, text),
		Time:     findAll(timeRe, text),
		Money:    findAll(moneyRe, text),
		Percent:  findAll(percentRe, text),
		Quantity: findAll(quantityRe, text),
	}

	model, ok := e.registry.GeneralNER.Get()
	if !ok {
		// Lexical spans alone still count as a contribution.
		return registry.Ok(spans)
	}
	found, err := model.Extract(textproc.Truncate(text, e.maxModelChars))
	if err != nil {
		log.Warn().Err(err).Msg("general NER inference failed")
		return registry.Ok(spans)
	}
	for _, s := range found {
		switch s.Label {
		case "PER":
			spans.Person = appendUnique(spans.Person, s.Text)
		case "ORG":
			spans.Org = appendUnique(spans.Org, s.Text)
		case "LOC":
			spans.Location = appendUnique(spans.Location, s.Text)
		}
	}
	return registry.Ok(spans)
}

func findAll(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllString(text, -1) {
		out = appendUnique(out, strings.TrimSpace(m))
	}
	return out
}
