package tutors

import "unitutor/internal/domain"

// TutorCard is one search result: profile plus public reputation.
type TutorCard struct {
	UserID        int64    `json:"user_id"`
	Name          string   `json:"name"`
	Major         string   `json:"major,omitempty"`
	Year          string   `json:"year,omitempty"`
	Bio           string   `json:"bio,omitempty"`
	PriceMin      int      `json:"price_min,omitempty"`
	PriceMax      int      `json:"price_max,omitempty"`
	Courses       []string `json:"courses,omitempty"`
	AverageRating float64  `json:"average_rating"`
	TotalRatings  int      `json:"total_ratings"`
}

type TutorDetail struct {
	User    *domain.User    `json:"user"`
	Profile *domain.Profile `json:"profile"`
	Ratings []domain.Rating `json:"ratings"`

	AverageRating float64 `json:"average_rating"`
}
