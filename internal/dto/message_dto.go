package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/model"
)

type SendMessageRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id" validate:"required"`
	JobID       *uuid.UUID `json:"job_id"`
	Body        string     `json:"body" validate:"required,max=5000"`
}

type ThreadDTO struct {
	CounterpartID uuid.UUID     `json:"counterpart_id"`
	LastMessage   model.Message `json:"last_message"`
	Unread        int64         `json:"unread"`
}

type MarkReadResponse struct {
	Updated int64     `json:"updated"`
	ReadAt  time.Time `json:"read_at"`
}
