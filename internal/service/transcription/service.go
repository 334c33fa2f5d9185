package transcription

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/internal/nlp/pipeline"
	"github.com/medscribe/notetaker-api/internal/repository"
	"github.com/medscribe/notetaker-api/pkg/logger"
	"github.com/medscribe/notetaker-api/pkg/metrics"
)

// Result pairs the persisted conversation with the pipeline output.
type Result struct {
	ConversationID uuid.UUID            `json:"conversation_id"`
	PatientID      *uuid.UUID           `json:"patient_id,omitempty"`
	Pipeline       model.PipelineResult `json:"pipeline"`
}

type TranscriptionService interface {
	Process(ctx context.Context, req *model.ProcessTranscriptRequest) (*Result, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	GetReport(ctx context.Context, conversationID uuid.UUID) (*model.Report, error)
	GetSOAPNote(ctx context.Context, conversationID uuid.UUID) (*model.SOAPRecord, error)
	GetSentiment(ctx context.Context, conversationID uuid.UUID) (*model.SentimentRecord, error)
}

type Service struct {
	pipeline         *pipeline.Pipeline
	patientRepo      repository.PatientRepository
	conversationRepo repository.ConversationRepository
	reportRepo       repository.ReportRepository
	outboxRepo       repository.OutboxRepository
	cache            *gocache.Cache
	logger           *logger.Logger
	metrics          *metrics.Metrics
}

func NewService(
	pipe *pipeline.Pipeline,
	patientRepo repository.PatientRepository,
	conversationRepo repository.ConversationRepository,
	reportRepo repository.ReportRepository,
	outboxRepo repository.OutboxRepository,
	cache *gocache.Cache,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *Service {
	return &Service{
		pipeline:         pipe,
		patientRepo:      patientRepo,
		conversationRepo: conversationRepo,
		reportRepo:       reportRepo,
		outboxRepo:       outboxRepo,
		cache:            cache,
		logger:           logger,
		metrics:          metrics,
	}
}

// Process runs the pipeline on one transcript and persists every derived
// artifact. Pipeline output is cached by transcript hash; a cache hit still
// creates a fresh conversation row.
func (s *Service) Process(ctx context.Context, req *model.ProcessTranscriptRequest) (*Result, error) {
	if req == nil || req.Text == "" {
		return nil, fmt.Errorf("transcript text is required")
	}

	timer := prometheus.NewTimer(s.metrics.PipelineLatency)
	result := s.runPipeline(req.Text)
	timer.ObserveDuration()

	patientID, err := s.resolvePatient(ctx, req, &result)
	if err != nil {
		return nil, err
	}

	var metadata json.RawMessage
	if len(req.Metadata) > 0 {
		metadata, err = json.Marshal(req.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
	}

	conversation := &model.Conversation{
		PatientID:  patientID,
		Transcript: req.Text,
		Metadata:   metadata,
	}
	if err := s.trackDB("create_conversation", func() error {
		return s.conversationRepo.Create(ctx, conversation)
	}); err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %w", err)
	}

	if err := s.persistArtifacts(ctx, conversation.ID, &result); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, conversation.ID, &result)

	return &Result{
		ConversationID: conversation.ID,
		PatientID:      patientID,
		Pipeline:       result,
	}, nil
}

func (s *Service) runPipeline(text string) model.PipelineResult {
	key := transcriptKey(text)
	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.(model.PipelineResult); ok {
			s.metrics.CacheHits.Inc()
			return result
		}
	}

	s.metrics.PipelineRuns.Inc()
	result := s.pipeline.Process(text, nil)
	s.cache.Set(key, result, gocache.DefaultExpiration)
	return result
}

func (s *Service) resolvePatient(ctx context.Context, req *model.ProcessTranscriptRequest, result *model.PipelineResult) (*uuid.UUID, error) {
	name := req.PatientName
	if name == "" {
		name = result.Entities.PatientName
	}
	if name == "" || name == "Unknown" {
		return nil, nil
	}

	if existing, err := s.patientRepo.GetByName(ctx, name); err == nil {
		return &existing.ID, nil
	}

	patient := &model.Patient{Name: name}
	if err := s.trackDB("create_patient", func() error {
		return s.patientRepo.Create(ctx, patient)
	}); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return &patient.ID, nil
}

func (s *Service) persistArtifacts(ctx context.Context, conversationID uuid.UUID, result *model.PipelineResult) error {
	summary, err := json.Marshal(result.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	report := &model.Report{ConversationID: conversationID, Summary: summary}
	if err := s.trackDB("create_report", func() error {
		return s.reportRepo.CreateReport(ctx, report)
	}); err != nil {
		return fmt.Errorf("failed to persist report: %w", err)
	}

	note, err := json.Marshal(result.SOAP)
	if err != nil {
		return fmt.Errorf("failed to marshal SOAP note: %w", err)
	}
	soapRecord := &model.SOAPRecord{ConversationID: conversationID, Note: note}
	if err := s.trackDB("create_soap_note", func() error {
		return s.reportRepo.CreateSOAPNote(ctx, soapRecord)
	}); err != nil {
		return fmt.Errorf("failed to persist SOAP note: %w", err)
	}

	sentimentRecord := &model.SentimentRecord{
		ConversationID: conversationID,
		Sentiment:      result.Sentiment.Session,
		Intent:         result.Sentiment.Intent,
	}
	if err := s.trackDB("create_sentiment", func() error {
		return s.reportRepo.CreateSentiment(ctx, sentimentRecord)
	}); err != nil {
		return fmt.Errorf("failed to persist sentiment: %w", err)
	}

	return nil
}

// trackDB runs one repository call, timing it and counting its outcome.
func (s *Service) trackDB(operation string, fn func() error) error {
	timer := prometheus.NewTimer(s.metrics.DatabaseLatency.WithLabelValues(operation))
	err := fn()
	timer.ObserveDuration()
	if err != nil {
		s.metrics.DatabaseOperations.WithLabelValues(operation, "error").Inc()
		return err
	}
	s.metrics.DatabaseOperations.WithLabelValues(operation, "success").Inc()
	return nil
}

// publishEvents writes outbox rows for downstream consumers. Failures are
// logged, not returned: the artifacts are already persisted and the request
// should not fail on eventing alone.
func (s *Service) publishEvents(ctx context.Context, conversationID uuid.UUID, result *model.PipelineResult) {
	s.enqueue(ctx, model.EventReportCreated, map[string]interface{}{
		"conversation_id": conversationID,
		"summary":         result.Summary,
	})
	s.enqueue(ctx, model.EventSOAPNoteCreated, map[string]interface{}{
		"conversation_id": conversationID,
		"soap_note":       result.SOAP,
	})
	if result.Sentiment.Session == string(model.SentimentAnxious) {
		s.enqueue(ctx, model.EventSentimentFlagged, map[string]interface{}{
			"conversation_id": conversationID,
			"sentiment":       result.Sentiment.Session,
			"intent":          result.Sentiment.Intent,
		})
	}
}

func (s *Service) enqueue(ctx context.Context, eventType string, payload map[string]interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error(err, "Failed to marshal outbox payload", "event_type", eventType)
		return
	}
	event := &model.OutboxEvent{EventType: eventType, Payload: raw}
	if err := s.outboxRepo.Create(ctx, event); err != nil {
		s.logger.Error(err, "Failed to enqueue outbox event", "event_type", eventType)
	}
}

func (s *Service) GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	return s.conversationRepo.Get(ctx, id)
}

func (s *Service) GetReport(ctx context.Context, conversationID uuid.UUID) (*model.Report, error) {
	return s.reportRepo.GetReportByConversation(ctx, conversationID)
}

func (s *Service) GetSOAPNote(ctx context.Context, conversationID uuid.UUID) (*model.SOAPRecord, error) {
	return s.reportRepo.GetSOAPNoteByConversation(ctx, conversationID)
}

func (s *Service) GetSentiment(ctx context.Context, conversationID uuid.UUID) (*model.SentimentRecord, error) {
	return s.reportRepo.GetSentimentByConversation(ctx, conversationID)
}

func transcriptKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

var _ TranscriptionService = (*Service)(nil)
