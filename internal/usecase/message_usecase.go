package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/events"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/response"
	"github.com/vetlink/vetlink-api/internal/util"
	"go.uber.org/zap"
)

type MessageUsecase struct {
	messages  MessageRepository
	users     UserRepository
	jobs      JobRepository
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewMessageUsecase(messages MessageRepository, users UserRepository, jobs JobRepository, publisher Publisher, logger *zap.Logger) *MessageUsecase {
	return &MessageUsecase{
		messages:  messages,
		users:     users,
		jobs:      jobs,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Send delivers a message between a veteran and an employer.
func (uc *MessageUsecase) Send(ctx context.Context, senderID uuid.UUID, req dto.SendMessageRequest) (*model.Message, error) {
	req.Body = strings.TrimSpace(req.Body)
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.RecipientID == senderID {
		return nil, invalid("recipient_id", "cannot message yourself")
	}

	sender, err := uc.users.FindUserByID(ctx, senderID)
	if err != nil {
		return nil, fromRepository(err)
	}
	recipient, err := uc.users.FindUserByID(ctx, req.RecipientID)
	if err != nil {
		return nil, fromRepository(err)
	}
	if !canMessage(sender.Role, recipient.Role) {
		return nil, ErrForbidden
	}
	if req.JobID != nil {
		if _, err := uc.jobs.FindJobByID(ctx, *req.JobID); err != nil {
			return nil, fromRepository(err)
		}
	}

	msg := &model.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		JobID:       req.JobID,
		Body:        req.Body,
		CreatedAt:   uc.now(),
	}
	if err := uc.messages.CreateMessage(ctx, msg); err != nil {
		return nil, fromRepository(err)
	}

	err = uc.publisher.Publish(ctx, events.ChannelMessageSent, events.MessageEvent{
		MessageID:   msg.ID,
		SenderID:    msg.SenderID,
		RecipientID: msg.RecipientID,
		JobID:       msg.JobID,
		At:          msg.CreatedAt,
	})
	if err != nil {
		uc.logger.Warn("publish message event failed", zap.Error(err))
	}
	return msg, nil
}

func canMessage(a, b model.Role) bool {
	return (a == model.RoleVeteran && b == model.RoleEmployer) ||
		(a == model.RoleEmployer && b == model.RoleVeteran)
}

func (uc *MessageUsecase) Conversation(ctx context.Context, userID, otherID uuid.UUID, page, pageSize int) ([]model.Message, *response.Pagination, error) {
	p := response.NewPageRequest(page, pageSize)
	msgs, total, err := uc.messages.ListConversation(ctx, userID, otherID, p)
	if err != nil {
		return nil, nil, err
	}
	return msgs, response.NewPagination(p, total, len(msgs)), nil
}

func (uc *MessageUsecase) Threads(ctx context.Context, userID uuid.UUID) ([]dto.ThreadDTO, error) {
	threads, err := uc.messages.ListThreads(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ThreadDTO, 0, len(threads))
	for _, t := range threads {
		out = append(out, dto.ThreadDTO{
			CounterpartID: t.CounterpartID,
			LastMessage:   t.LastMessage,
			Unread:        t.Unread,
		})
	}
	return out, nil
}

func (uc *MessageUsecase) MarkRead(ctx context.Context, userID, otherID uuid.UUID) (*dto.MarkReadResponse, error) {
	now := uc.now()
	n, err := uc.messages.MarkConversationRead(ctx, userID, otherID, now)
	if err != nil {
		return nil, err
	}
	return &dto.MarkReadResponse{Updated: n, ReadAt: now}, nil
}
