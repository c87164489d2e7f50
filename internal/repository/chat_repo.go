package repository

import (
	"context"
	"time"

	"unitutor/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

type chatMessageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	SessionID int64     `gorm:"column:session_id;index"`
	SenderID  int64     `gorm:"column:sender_id"`
	Message   string    `gorm:"column:message;type:text"`
	Sanitized bool      `gorm:"column:sanitized;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (chatMessageModel) TableName() string { return "chat_messages" }

func toDomainChatMessage(m chatMessageModel) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:        m.ID,
		SessionID: m.SessionID,
		SenderID:  m.SenderID,
		Message:   m.Message,
		Sanitized: m.Sanitized,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *domain.ChatMessage) error {
	m := chatMessageModel{
		SessionID: msg.SessionID,
		SenderID:  msg.SenderID,
		Message:   msg.Message,
		Sanitized: msg.Sanitized,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*msg = *toDomainChatMessage(m)
	return nil
}

func (r *ChatRepository) GetBySession(ctx context.Context, sessionID int64) ([]domain.ChatMessage, error) {
	var ms []chatMessageModel
	tx := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.ChatMessage, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainChatMessage(m))
	}
	return out, nil
}
