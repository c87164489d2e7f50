package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"unitutor/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type profileModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id;uniqueIndex:idx_profiles_user_role"`
	UserRole     string    `gorm:"column:user_role;size:10;uniqueIndex:idx_profiles_user_role"`
	Age          int       `gorm:"column:age"`
	Year         string    `gorm:"column:year;size:50"`
	Major        string    `gorm:"column:major;size:255"`
	Bio          string    `gorm:"column:bio;type:text"`
	PriceMin     int       `gorm:"column:price_min"`
	PriceMax     int       `gorm:"column:price_max"`
	Courses      string    `gorm:"column:courses;type:text"`
	Availability string    `gorm:"column:availability;type:text"`
	CreditPoints int       `gorm:"column:credit_points;default:0"`
	ContactInfo  string    `gorm:"column:contact_info;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (profileModel) TableName() string { return "profiles" }

func toDomainProfile(m profileModel) *domain.Profile {
	p := &domain.Profile{
		ID:           m.ID,
		UserID:       m.UserID,
		UserRole:     domain.ProfileRole(m.UserRole),
		Age:          m.Age,
		Year:         m.Year,
		Major:        m.Major,
		Bio:          m.Bio,
		PriceMin:     m.PriceMin,
		PriceMax:     m.PriceMax,
		CreditPoints: m.CreditPoints,
		ContactInfo:  m.ContactInfo,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Courses != "" {
		_ = json.Unmarshal([]byte(m.Courses), &p.Courses)
	}
	if m.Availability != "" {
		_ = json.Unmarshal([]byte(m.Availability), &p.Availability)
	}
	return p
}

func toProfileModel(p *domain.Profile) profileModel {
	m := profileModel{
		ID:           p.ID,
		UserID:       p.UserID,
		UserRole:     string(p.UserRole),
		Age:          p.Age,
		Year:         p.Year,
		Major:        p.Major,
		Bio:          p.Bio,
		PriceMin:     p.PriceMin,
		PriceMax:     p.PriceMax,
		CreditPoints: p.CreditPoints,
		ContactInfo:  p.ContactInfo,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if len(p.Courses) > 0 {
		b, _ := json.Marshal(p.Courses)
		m.Courses = string(b)
	}
	if len(p.Availability) > 0 {
		b, _ := json.Marshal(p.Availability)
		m.Availability = string(b)
	}
	return m
}

func (r *ProfileRepository) GetByUserAndRole(ctx context.Context, userID int64, role domain.ProfileRole) (*domain.Profile, error) {
	var m profileModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND user_role = ?", userID, string(role)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProfile(m), nil
}

// Upsert creates the profile row or updates its mutable fields. Credit
// points are only ever changed through the rating reconciliation path.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	var existing profileModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND user_role = ?", p.UserID, string(p.UserRole)).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		m := toProfileModel(p)
		m.CreditPoints = 0
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return err
		}
		*p = *toDomainProfile(m)
		return nil
	}

	m := toProfileModel(p)
	updates := map[string]interface{}{
		"age":          m.Age,
		"year":         m.Year,
		"major":        m.Major,
		"bio":          m.Bio,
		"price_min":    m.PriceMin,
		"price_max":    m.PriceMax,
		"courses":      m.Courses,
		"availability": m.Availability,
		"contact_info": m.ContactInfo,
		"updated_at":   time.Now(),
	}
	if err := r.db.WithContext(ctx).
		Model(&profileModel{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return err
	}
	p.ID = existing.ID
	p.CreditPoints = existing.CreditPoints
	return nil
}

// UpdateAvailability replaces only the availability grid.
func (r *ProfileRepository) UpdateAvailability(ctx context.Context, userID int64, role domain.ProfileRole, slots []domain.AvailabilitySlot) error {
	b, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).
		Model(&profileModel{}).
		Where("user_id = ? AND user_role = ?", userID, string(role)).
		Updates(map[string]interface{}{
			"availability": string(b),
			"updated_at":   time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepository) GetTutorProfiles(ctx context.Context) ([]domain.Profile, error) {
	var ms []profileModel
	tx := r.db.WithContext(ctx).
		Where("user_role = ?", string(domain.ProfileTutor)).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Profile, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainProfile(m))
	}
	return out, nil
}

func (r *ProfileRepository) CountByRole(ctx context.Context, role domain.ProfileRole) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&profileModel{}).
		Where("user_role = ?", string(role)).
		Count(&cnt)
	return cnt, tx.Error
}
