package extract

import (
	"github.com/rs/zerolog/log"

	"github.com/medscribe/notetaker-api/internal/nlp/infer"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

// statisticalSpans runs the clinical token-classification model over a
// truncated copy of text. Truncation respects the model input limit; the
// limit is configuration, not a constant, because the keyword strategies
// still see the full text.
func (e *Extractor) statisticalSpans(text string) registry.Outcome[[]infer.Span] {
	model, ok := e.registry.ClinicalNER.Get()
	if !ok {
		return registry.Unavailable[[]infer.Span]()
	}
	spans, err := model.Extract(textproc.Truncate(text, e.maxModelChars))
	if err != nil {
		log.Warn().Err(err).Msg("clinical NER inference failed")
		return registry.Unavailable[[]infer.Span]()
	}
	return registry.Ok(spans)
}
