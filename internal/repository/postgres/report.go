package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/internal/repository"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *model.Report) error {
	query := `
		INSERT INTO reports (id, conversation_id, summary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.CreatedAt = time.Now()
	report.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.ConversationID,
		report.Summary,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *reportRepository) GetReport(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	query := `SELECT * FROM reports WHERE id = $1 AND deleted_at IS NULL`
	var report model.Report
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

func (r *reportRepository) GetReportByConversation(ctx context.Context, conversationID uuid.UUID) (*model.Report, error) {
	query := `
		SELECT * FROM reports
		WHERE conversation_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`
	var report model.Report
	if err := r.db.GetContext(ctx, &report, query, conversationID); err != nil {
		return nil, fmt.Errorf("failed to get report for conversation: %w", err)
	}
	return &report, nil
}

func (r *reportRepository) CreateSOAPNote(ctx context.Context, record *model.SOAPRecord) error {
	query := `
		INSERT INTO soap_notes (id, conversation_id, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.ConversationID,
		record.Note,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create SOAP note: %w", err)
	}
	return nil
}

func (r *reportRepository) GetSOAPNoteByConversation(ctx context.Context, conversationID uuid.UUID) (*model.SOAPRecord, error) {
	query := `
		SELECT * FROM soap_notes
		WHERE conversation_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`
	var record model.SOAPRecord
	if err := r.db.GetContext(ctx, &record, query, conversationID); err != nil {
		return nil, fmt.Errorf("failed to get SOAP note for conversation: %w", err)
	}
	return &record, nil
}

func (r *reportRepository) CreateSentiment(ctx context.Context, record *model.SentimentRecord) error {
	query := `
		INSERT INTO sentiments (id, conversation_id, sentiment, intent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.ConversationID,
		record.Sentiment,
		record.Intent,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create sentiment: %w", err)
	}
	return nil
}

func (r *reportRepository) GetSentimentByConversation(ctx context.Context, conversationID uuid.UUID) (*model.SentimentRecord, error) {
	query := `
		SELECT * FROM sentiments
		WHERE conversation_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`
	var record model.SentimentRecord
	if err := r.db.GetContext(ctx, &record, query, conversationID); err != nil {
		return nil, fmt.Errorf("failed to get sentiment for conversation: %w", err)
	}
	return &record, nil
}
