// Package events publishes marketplace events on Redis pub/sub channels so
// notification workers can react to them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vetlink/vetlink-api/internal/hiring"
)

const (
	ChannelApplicationSubmitted = "application.submitted"
	ChannelApplicationStatus    = "application.status_changed"
	ChannelMessageSent          = "message.sent"
)

type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, channel string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", channel, err)
	}
	if err := p.rdb.Publish(ctx, channel, body).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }

type ApplicationEvent struct {
	ApplicationID uuid.UUID     `json:"application_id"`
	JobID         uuid.UUID     `json:"job_id"`
	VeteranID     uuid.UUID     `json:"veteran_id"`
	From          hiring.Status `json:"from,omitempty"`
	To            hiring.Status `json:"to"`
	By            uuid.UUID     `json:"by"`
	At            time.Time     `json:"at"`
}

type MessageEvent struct {
	MessageID   uuid.UUID  `json:"message_id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	JobID       *uuid.UUID `json:"job_id,omitempty"`
	At          time.Time  `json:"at"`
}
