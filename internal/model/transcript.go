package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Patient is the minimal patient identity attached to conversations.
type Patient struct {
	Base
	Name string `db:"name" json:"name"`
}

// Conversation is one persisted transcript plus request metadata.
type Conversation struct {
	Base
	PatientID  *uuid.UUID      `db:"patient_id" json:"patient_id,omitempty"`
	Transcript string          `db:"transcript" json:"transcript"`
	Metadata   json.RawMessage `db:"metadata" json:"metadata,omitempty"`
}

// Report stores the structured summary derived from a conversation.
type Report struct {
	Base
	ConversationID uuid.UUID       `db:"conversation_id" json:"conversation_id"`
	Summary        json.RawMessage `db:"summary" json:"summary"`
}

// SOAPRecord stores the generated SOAP note for a conversation.
type SOAPRecord struct {
	Base
	ConversationID uuid.UUID       `db:"conversation_id" json:"conversation_id"`
	Note           json.RawMessage `db:"note" json:"note"`
}

// SentimentRecord stores the session-level sentiment classification.
type SentimentRecord struct {
	Base
	ConversationID uuid.UUID `db:"conversation_id" json:"conversation_id"`
	Sentiment      string    `db:"sentiment" json:"sentiment"`
	Intent         string    `db:"intent" json:"intent"`
}

// ProcessTranscriptRequest is the transcription endpoint payload.
type ProcessTranscriptRequest struct {
	Text        string  `json:"text" binding:"required"`
	PatientName string  `json:"patient_name"`
	Metadata    JSONMap `json:"metadata"`
}

// AnalyzeTextRequest is the shared payload for the single-artifact endpoints.
type AnalyzeTextRequest struct {
	Text        string  `json:"text" binding:"required"`
	PatientName string  `json:"patient_name"`
	Metadata    JSONMap `json:"metadata"`
}
