package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medscribe/notetaker-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository handles patient identity rows.
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		GetByName(ctx context.Context, name string) (*model.Patient, error)
		List(ctx context.Context, limit, offset int) ([]*model.Patient, error)
	}

	// ConversationRepository handles persisted transcripts.
	ConversationRepository interface {
		Create(ctx context.Context, conversation *model.Conversation) error
		Get(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Conversation, error)
	}

	// ReportRepository handles the structured artifacts derived from a
	// conversation: the summary report, the SOAP note, and the
	// session-level sentiment.
	ReportRepository interface {
		CreateReport(ctx context.Context, report *model.Report) error
		GetReport(ctx context.Context, id uuid.UUID) (*model.Report, error)
		GetReportByConversation(ctx context.Context, conversationID uuid.UUID) (*model.Report, error)
		CreateSOAPNote(ctx context.Context, record *model.SOAPRecord) error
		GetSOAPNoteByConversation(ctx context.Context, conversationID uuid.UUID) (*model.SOAPRecord, error)
		CreateSentiment(ctx context.Context, record *model.SentimentRecord) error
		GetSentimentByConversation(ctx context.Context, conversationID uuid.UUID) (*model.SentimentRecord, error)
	}

	// OutboxRepository handles the transactional outbox.
	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEventsWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errorMessage *string) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
