package chat

import (
	"context"
	"testing"

	"unitutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMessageStore struct {
	mock.Mock
}

func (m *mockMessageStore) CreateMessage(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockMessageStore) GetBySession(ctx context.Context, sessionID int64) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

type mockSessionReader struct {
	mock.Mock
}

func (m *mockSessionReader) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionReader) CountClosedForUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserGetter struct {
	mock.Mock
}

func (m *mockUserGetter) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func chatSession() *domain.Session {
	return &domain.Session{
		ID: 7, StudentID: 1, TutorID: 2,
		Status: domain.SessionConfirmed,
	}
}

func newChatService(msgs *mockMessageStore, sessions *mockSessionReader, users *mockUserGetter) *Service {
	return NewService(msgs, sessions, users, NewHub())
}

func TestSendMessageRedactsForNewUsers(t *testing.T) {
	msgs := new(mockMessageStore)
	sessions := new(mockSessionReader)
	users := new(mockUserGetter)
	svc := newChatService(msgs, sessions, users)

	sessions.On("GetByID", mock.Anything, int64(7)).Return(chatSession(), nil)
	sessions.On("CountClosedForUser", mock.Anything, int64(1)).Return(int64(0), nil)
	msgs.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Name: "Sam"}, nil)

	out, err := svc.SendMessage(context.Background(), 1, 7, "reach me at sam@mail.com")
	assert.NoError(t, err)
	assert.True(t, out.Sanitized)
	assert.NotContains(t, out.Message, "sam@mail.com")
	assert.Contains(t, out.Message, RedactedPlaceholder)
}

func TestSendMessageKeepsContactForEstablishedUsers(t *testing.T) {
	msgs := new(mockMessageStore)
	sessions := new(mockSessionReader)
	users := new(mockUserGetter)
	svc := newChatService(msgs, sessions, users)

	sessions.On("GetByID", mock.Anything, int64(7)).Return(chatSession(), nil)
	sessions.On("CountClosedForUser", mock.Anything, int64(2)).Return(int64(3), nil)
	msgs.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "Maya"}, nil)

	out, err := svc.SendMessage(context.Background(), 2, 7, "reach me at maya@mail.com")
	assert.NoError(t, err)
	assert.False(t, out.Sanitized)
	assert.Contains(t, out.Message, "maya@mail.com")
}

func TestSendMessageRejectsNonParty(t *testing.T) {
	msgs := new(mockMessageStore)
	sessions := new(mockSessionReader)
	users := new(mockUserGetter)
	svc := newChatService(msgs, sessions, users)

	sessions.On("GetByID", mock.Anything, int64(7)).Return(chatSession(), nil)

	_, err := svc.SendMessage(context.Background(), 99, 7, "hello")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSendMessageRejectsEmpty(t *testing.T) {
	svc := newChatService(new(mockMessageStore), new(mockSessionReader), new(mockUserGetter))

	_, err := svc.SendMessage(context.Background(), 1, 7, "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetMessagesEnrichesSenderNames(t *testing.T) {
	msgs := new(mockMessageStore)
	sessions := new(mockSessionReader)
	users := new(mockUserGetter)
	svc := newChatService(msgs, sessions, users)

	sessions.On("GetByID", mock.Anything, int64(7)).Return(chatSession(), nil)
	msgs.On("GetBySession", mock.Anything, int64(7)).Return([]domain.ChatMessage{
		{ID: 1, SessionID: 7, SenderID: 1, Message: "hi"},
		{ID: 2, SessionID: 7, SenderID: 2, Message: "hello"},
	}, nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Name: "Sam"}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "Maya"}, nil)

	out, err := svc.GetMessages(context.Background(), 1, 7)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Sam", out[0].SenderName)
	assert.Equal(t, "Maya", out[1].SenderName)
}
