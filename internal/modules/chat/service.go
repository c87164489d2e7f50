package chat

import (
	"context"
	"errors"
	"strings"

	"unitutor/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	messages MessageStore
	sessions SessionReader
	users    UserGetter
	hub      *Hub
}

func NewService(messages MessageStore, sessions SessionReader, users UserGetter, hub *Hub) *Service {
	return &Service{messages: messages, sessions: sessions, users: users, hub: hub}
}

// SendMessage stores a message in the session chat and pushes it to both
// parties. Senders with no closed session yet get contact info redacted
// before the message is stored.
func (s *Service) SendMessage(ctx context.Context, senderID, sessionID int64, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrValidation
	}

	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsParty(senderID) {
		return nil, ErrForbidden
	}

	closed, err := s.sessions.CountClosedForUser(ctx, senderID)
	if err != nil {
		return nil, err
	}
	sanitized := false
	if closed == 0 {
		text, sanitized = Sanitize(text)
	}

	msg := &domain.ChatMessage{
		SessionID: sessionID,
		SenderID:  senderID,
		Message:   text,
		Sanitized: sanitized,
	}
	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if sender, err := s.users.GetByID(ctx, senderID); err == nil {
		msg.SenderName = sender.Name
	}

	event := WSEvent{Type: "chat.message", Payload: msg}
	s.hub.Push(sess.StudentID, event)
	s.hub.Push(sess.TutorID, event)

	return msg, nil
}

// GetMessages returns the full chat history for a session party.
func (s *Service) GetMessages(ctx context.Context, userID, sessionID int64) ([]domain.ChatMessage, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsParty(userID) {
		return nil, ErrForbidden
	}

	msgs, err := s.messages.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	names := map[int64]string{}
	for i := range msgs {
		name, ok := names[msgs[i].SenderID]
		if !ok {
			if u, err := s.users.GetByID(ctx, msgs[i].SenderID); err == nil {
				name = u.Name
			}
			names[msgs[i].SenderID] = name
		}
		msgs[i].SenderName = name
	}
	return msgs, nil
}

func (s *Service) getSession(ctx context.Context, sessionID int64) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}
