package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/response"
	"gorm.io/gorm"
)

// Thread summarizes a conversation from one participant's point of view.
type Thread struct {
	CounterpartID uuid.UUID
	LastMessage   model.Message
	Unread        int64
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	return translate(r.db.WithContext(ctx).Create(msg).Error)
}

// ListConversation pages through messages exchanged between two users,
// oldest first.
func (r *MessageRepository) ListConversation(ctx context.Context, userID, otherID uuid.UUID, page response.PageRequest) ([]model.Message, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var msgs []model.Message
	err := q.Order("created_at ASC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&msgs).Error
	return msgs, total, err
}

type threadRow struct {
	model.Message
	Counterpart uuid.UUID
}

type unreadRow struct {
	SenderID uuid.UUID
	Unread   int64
}

// ListThreads returns the latest message per counterpart with the number of
// messages userID has not read yet, most recent conversation first.
func (r *MessageRepository) ListThreads(ctx context.Context, userID uuid.UUID) ([]Thread, error) {
	var rows []threadRow
	err := r.db.WithContext(ctx).Raw(`
        SELECT * FROM (
            SELECT DISTINCT ON (counterpart) m.*,
                   CASE WHEN m.sender_id = @user THEN m.recipient_id ELSE m.sender_id END AS counterpart
            FROM messages m
            WHERE m.sender_id = @user OR m.recipient_id = @user
            ORDER BY counterpart, m.created_at DESC
        ) latest
        ORDER BY latest.created_at DESC
    `, map[string]any{"user": userID}).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var unread []unreadRow
	err = r.db.WithContext(ctx).Model(&model.Message{}).
		Select("sender_id, COUNT(*) AS unread").
		Where("recipient_id = ? AND read_at IS NULL", userID).
		Group("sender_id").
		Scan(&unread).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(unread))
	for _, u := range unread {
		counts[u.SenderID] = u.Unread
	}

	threads := make([]Thread, 0, len(rows))
	for _, row := range rows {
		threads = append(threads, Thread{
			CounterpartID: row.Counterpart,
			LastMessage:   row.Message,
			Unread:        counts[row.Counterpart],
		})
	}
	return threads, nil
}

// MarkConversationRead stamps every unread message from otherID to readerID.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, readerID, otherID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", readerID, otherID).
		Update("read_at", at)
	return res.RowsAffected, res.Error
}
