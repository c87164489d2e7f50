package admin

import (
	"context"
	"errors"

	"unitutor/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	sessions SessionReader
	tickets  TicketStore
	users    UserReader
	profiles ProfileReader
	ratings  RatingReader
}

func NewService(sessions SessionReader, tickets TicketStore, users UserReader, profiles ProfileReader, ratings RatingReader) *Service {
	return &Service{
		sessions: sessions,
		tickets:  tickets,
		users:    users,
		profiles: profiles,
		ratings:  ratings,
	}
}

// Sessions lists all sessions, optionally filtered by status.
func (s *Service) Sessions(ctx context.Context, status string) ([]domain.Session, error) {
	if status == "" {
		return s.sessions.GetAll(ctx)
	}
	return s.sessions.GetByStatus(ctx, domain.SessionStatus(status))
}

// Disputes lists sessions stuck in DISPUTED.
func (s *Service) Disputes(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.GetByStatus(ctx, domain.SessionDisputed)
}

// Tickets lists support tickets enriched with their authors.
func (s *Service) Tickets(ctx context.Context) ([]TicketView, error) {
	tickets, err := s.tickets.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TicketView, 0, len(tickets))
	names := map[int64]*domain.User{}
	for _, t := range tickets {
		view := TicketView{Ticket: t}
		u, ok := names[t.UserID]
		if !ok {
			u, _ = s.users.GetByID(ctx, t.UserID)
			names[t.UserID] = u
		}
		if u != nil {
			view.UserName = u.Name
			view.UserEmail = u.Email
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) UpdateTicket(ctx context.Context, id int64, req UpdateTicketRequest) error {
	err := s.tickets.Update(ctx, id, domain.TicketStatus(req.Status), req.AdminResponse)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	a := &Analytics{}
	var err error

	if a.CompletedSessions, err = s.sessions.CountByStatus(ctx, domain.SessionClosed); err != nil {
		return nil, err
	}
	if a.Disputes, err = s.sessions.CountByStatus(ctx, domain.SessionDisputed); err != nil {
		return nil, err
	}
	if a.PendingRatings, err = s.sessions.CountByStatus(ctx, domain.SessionPendingRating); err != nil {
		return nil, err
	}
	if a.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if a.StudentCount, err = s.profiles.CountByRole(ctx, domain.ProfileStudent); err != nil {
		return nil, err
	}
	if a.TutorCount, err = s.profiles.CountByRole(ctx, domain.ProfileTutor); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Users(ctx context.Context, query string) ([]domain.User, error) {
	if query == "" {
		return s.users.GetAll(ctx)
	}
	return s.users.Search(ctx, query)
}

// UserDetail assembles the full admin view of one account: user, both
// profiles, reputation, closed session count.
func (s *Service) UserDetail(ctx context.Context, userID int64) (*UserDetail, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &UserDetail{User: u}

	if p, err := s.profiles.GetByUserAndRole(ctx, userID, domain.ProfileStudent); err == nil {
		detail.StudentProfile = p
	}
	if p, err := s.profiles.GetByUserAndRole(ctx, userID, domain.ProfileTutor); err == nil {
		detail.TutorProfile = p
	}
	if avg, err := s.ratings.AveragePublicScore(ctx, userID); err == nil {
		detail.AverageRating = avg
	}
	if n, err := s.sessions.CountClosedForUser(ctx, userID); err == nil {
		detail.ClosedSessions = n
	}
	return detail, nil
}
