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

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *model.Conversation) error {
	query := `
		INSERT INTO conversations (id, patient_id, transcript, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if conversation.ID == uuid.Nil {
		conversation.ID = uuid.New()
	}
	conversation.CreatedAt = time.Now()
	conversation.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		conversation.ID,
		conversation.PatientID,
		conversation.Transcript,
		conversation.Metadata,
		conversation.CreatedAt,
		conversation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (r *conversationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	query := `SELECT * FROM conversations WHERE id = $1 AND deleted_at IS NULL`
	var conversation model.Conversation
	if err := r.db.GetContext(ctx, &conversation, query, id); err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &conversation, nil
}

func (r *conversationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Conversation, error) {
	query := `
		SELECT * FROM conversations
		WHERE patient_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	var conversations []*model.Conversation
	err := r.db.SelectContext(ctx, &conversations, query, patientID)
	return conversations, err
}
