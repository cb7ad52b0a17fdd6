package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SenderID    uuid.UUID  `gorm:"type:uuid;index:idx_message_pair;not null" json:"sender_id"`
	RecipientID uuid.UUID  `gorm:"type:uuid;index:idx_message_pair;index;not null" json:"recipient_id"`
	JobID       *uuid.UUID `gorm:"type:uuid" json:"job_id,omitempty"`
	Body        string     `gorm:"type:text;not null" json:"body"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
}

// Counterpart returns the other participant from userID's point of view.
func (m *Message) Counterpart(userID uuid.UUID) uuid.UUID {
	if m.SenderID == userID {
		return m.RecipientID
	}
	return m.SenderID
}
