package tutors

import (
	"context"
	"errors"
	"strings"

	"unitutor/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileReader
	users    UserReader
	ratings  RatingReader
}

func NewService(profiles ProfileReader, users UserReader, ratings RatingReader) *Service {
	return &Service{profiles: profiles, users: users, ratings: ratings}
}

// Search lists tutor cards, optionally filtered by a course substring
// (case-insensitive). Courses live as JSON arrays in the profile row, so
// matching happens here rather than in SQL.
func (s *Service) Search(ctx context.Context, course string) ([]TutorCard, error) {
	profiles, err := s.profiles.GetTutorProfiles(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(course))
	cards := make([]TutorCard, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		if needle != "" && !matchesCourse(p.Courses, needle) {
			continue
		}
		card := TutorCard{
			UserID:   p.UserID,
			Major:    p.Major,
			Year:     p.Year,
			Bio:      p.Bio,
			PriceMin: p.PriceMin,
			PriceMax: p.PriceMax,
			Courses:  p.Courses,
		}
		if u, err := s.users.GetByID(ctx, p.UserID); err == nil {
			card.Name = u.Name
		}
		public := domain.RatingPublic
		if rs, err := s.ratings.GetForTarget(ctx, p.UserID, &public); err == nil {
			card.TotalRatings = len(rs)
		}
		if avg, err := s.ratings.AveragePublicScore(ctx, p.UserID); err == nil {
			card.AverageRating = avg
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// GetProfile returns a tutor's public page: user, profile, public ratings.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*TutorDetail, error) {
	p, err := s.profiles.GetByUserAndRole(ctx, userID, domain.ProfileTutor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	public := domain.RatingPublic
	ratings, err := s.ratings.GetForTarget(ctx, userID, &public)
	if err != nil {
		return nil, err
	}
	avg, err := s.ratings.AveragePublicScore(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &TutorDetail{
		User:          u,
		Profile:       p,
		Ratings:       ratings,
		AverageRating: avg,
	}, nil
}

// Count returns the number of tutor profiles on the platform.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.profiles.CountByRole(ctx, domain.ProfileTutor)
}

func matchesCourse(courses []string, needle string) bool {
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}
