// Package registry holds the process-wide model handles. Instead of
// package-level singletons, a Registry is constructed once at startup and
// passed by reference into each component that invokes a model.
package registry

import (
	"github.com/rs/zerolog/log"

	"github.com/medscribe/notetaker-api/internal/nlp/infer"
)

// Status tags a strategy outcome so merge steps can switch on it rather than
// inspecting swallowed errors.
type Status int

const (
	StatusOk Status = iota
	StatusUnavailable
	StatusLowConfidence
)

// Outcome is a tagged strategy result.
type Outcome[T any] struct {
	Value  T
	Status Status
}

func Ok[T any](v T) Outcome[T]         { return Outcome[T]{Value: v, Status: StatusOk} }
func Unavailable[T any]() Outcome[T]   { return Outcome[T]{Status: StatusUnavailable} }
func LowConfidence[T any]() Outcome[T] { return Outcome[T]{Status: StatusLowConfidence} }
func (o Outcome[T]) OK() bool          { return o.Status == StatusOk }

// String returns the metric label for the status.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusLowConfidence:
		return "low_confidence"
	default:
		return "unavailable"
	}
}

// Slot lazily loads one model handle. Get is load-once-reuse-forever and is
// NOT safe for concurrent first use: loading is idempotent and side-effect
// free, so racing first requests at worst load the same model twice. A failed
// load leaves the slot empty and is re-attempted on the next call.
type Slot[T any] struct {
	name   string
	load   func() (T, error)
	handle T
	loaded bool

	// OnFailure, when set, is invoked once per failed load attempt.
	OnFailure func(model string)
}

func NewSlot[T any](name string, load func() (T, error)) *Slot[T] {
	return &Slot[T]{name: name, load: load}
}

// Get returns the handle, loading it on first use.
func (s *Slot[T]) Get() (T, bool) {
	if s.loaded {
		return s.handle, true
	}
	handle, err := s.load()
	if err != nil {
		if s.OnFailure != nil {
			s.OnFailure(s.name)
		}
		log.Warn().Err(err).Str("model", s.name).Msg("model unavailable, falling back to rules")
		var zero T
		return zero, false
	}
	s.handle = handle
	s.loaded = true
	log.Info().Str("model", s.name).Msg("model loaded")
	return s.handle, true
}

// Loaded reports whether the handle was ever loaded, without triggering a load.
func (s *Slot[T]) Loaded() bool { return s.loaded }

// Config carries one infer.Config per model slot plus the observability
// hooks. Both hooks are optional.
type Config struct {
	ClinicalNER infer.Config
	GeneralNER  infer.Config
	Sentiment   infer.Config

	OnLoadFailure func(model string)
	OnOutcome     func(strategy string, status Status)
}

// Registry exposes one slot per statistical model.
type Registry struct {
	ClinicalNER *Slot[*infer.TokenClassifier]
	GeneralNER  *Slot[*infer.TokenClassifier]
	Sentiment   *Slot[*infer.SequenceClassifier]

	onOutcome func(strategy string, status Status)
}

func New(cfg Config) *Registry {
	r := &Registry{
		ClinicalNER: NewSlot("clinical_ner", func() (*infer.TokenClassifier, error) {
			return infer.NewTokenClassifier(cfg.ClinicalNER)
		}),
		GeneralNER: NewSlot("general_ner", func() (*infer.TokenClassifier, error) {
			return infer.NewTokenClassifier(cfg.GeneralNER)
		}),
		Sentiment: NewSlot("sentiment", func() (*infer.SequenceClassifier, error) {
			return infer.NewSequenceClassifier(cfg.Sentiment)
		}),
		onOutcome: cfg.OnOutcome,
	}
	r.ClinicalNER.OnFailure = cfg.OnLoadFailure
	r.GeneralNER.OnFailure = cfg.OnLoadFailure
	r.Sentiment.OnFailure = cfg.OnLoadFailure
	return r
}

// Observe reports one strategy outcome to the configured hook.
func (r *Registry) Observe(strategy string, status Status) {
	if r.onOutcome != nil {
		r.onOutcome(strategy, status)
	}
}

// ModelStatus reports per-slot availability for health checks.
func (r *Registry) ModelStatus() map[string]bool {
	return map[string]bool{
		"clinical_ner": r.ClinicalNER.Loaded(),
		"general_ner":  r.GeneralNER.Loaded(),
		"sentiment":    r.Sentiment.Loaded(),
	}
}

// Close releases all loaded model handles.
func (r *Registry) Close() {
	if h, ok := r.ClinicalNER.handle, r.ClinicalNER.loaded; ok && h != nil {
		h.Close()
	}
	if h, ok := r.GeneralNER.handle, r.GeneralNER.loaded; ok && h != nil {
		h.Close()
	}
	if h, ok := r.Sentiment.handle, r.Sentiment.loaded; ok && h != nil {
		h.Close()
	}
}
