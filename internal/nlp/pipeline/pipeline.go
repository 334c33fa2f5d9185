// Package pipeline sequences the NLP components in a fixed order:
// normalize, extract entities, summarize, extract keywords, classify
// sentiment, synthesize the SOAP note. One invocation is a pure function of
// the input text given fixed model state; no state survives between calls.
package pipeline

import (
	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/internal/nlp/extract"
	"github.com/medscribe/notetaker-api/internal/nlp/sentiment"
	"github.com/medscribe/notetaker-api/internal/nlp/soap"
	"github.com/medscribe/notetaker-api/internal/nlp/summarize"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

// Pipeline wires the components around one shared model registry.
type Pipeline struct {
	extractor  *extract.Extractor
	summarizer *summarize.Summarizer
	classifier *sentiment.Classifier
}

func New(extractor *extract.Extractor, summarizer *summarize.Summarizer, classifier *sentiment.Classifier) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		summarizer: summarizer,
		classifier: classifier,
	}
}

// Process runs the full pipeline. Metadata is carried for the caller's
// benefit (persistence, auditing); it does not influence any stage.
func (p *Pipeline) Process(text string, _ model.JSONMap) model.PipelineResult {
	clean := textproc.Clean(text)

	entities := p.extractor.Extract(clean)
	summary := p.summarizer.Summarize(clean)
	keywords := extractKeywords(clean)
	analysis := p.classifier.Analyze(clean)

	note := soap.Generate(soap.Inputs{
		Text:      clean,
		Entities:  entities,
		Summary:   summary,
		Sentiment: analysis,
		Keywords:  keywords,
	})

	return model.PipelineResult{
		Entities: entities,
		Summary:  summary,
		Keywords: keywords,
		Sentiment: model.SessionSentiment{
			Session: string(analysis.Sentiment),
			Intent:  string(analysis.Intent),
		},
		SOAP: note,
	}
}

// Components exposes the individual stages so the transport layer can serve
// them as separate endpoints with the same text-in/record-out contracts.
func (p *Pipeline) Extractor() *extract.Extractor     { return p.extractor }
func (p *Pipeline) Summarizer() *summarize.Summarizer { return p.summarizer }
func (p *Pipeline) Classifier() *sentiment.Classifier { return p.classifier }
