package ticket

import (
	"context"

	"unitutor/internal/domain"
)

type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) error
	GetByUser(ctx context.Context, userID int64) ([]domain.Ticket, error)
}

type Service struct {
	tickets TicketRepository
}

func NewService(tickets TicketRepository) *Service {
	return &Service{tickets: tickets}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateTicketRequest) (*domain.Ticket, error) {
	t := &domain.Ticket{
		UserID:   userID,
		Category: domain.TicketCategory(req.Category),
		Subject:  req.Subject,
		Message:  req.Message,
		Status:   domain.TicketPending,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListOwn(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	return s.tickets.GetByUser(ctx, userID)
}
