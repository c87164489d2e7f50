package chat

import (
	"context"

	"unitutor/internal/domain"
)

type MessageStore interface {
	CreateMessage(ctx context.Context, msg *domain.ChatMessage) error
	GetBySession(ctx context.Context, sessionID int64) ([]domain.ChatMessage, error)
}

type SessionReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	CountClosedForUser(ctx context.Context, userID int64) (int64, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
