package repository

import (
	"context"
	"time"

	"unitutor/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	OpenID         string    `gorm:"column:open_id;uniqueIndex;size:64"`
	Name           string    `gorm:"column:name"`
	Email          string    `gorm:"column:email;size:320"`
	PasswordHash   string    `gorm:"column:password_hash"`
	Role           string    `gorm:"column:role;default:user"`
	PreferredRoles string    `gorm:"column:preferred_roles;size:20"`
	LastSignedIn   time.Time `gorm:"column:last_signed_in"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:             m.ID,
		OpenID:         m.OpenID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		Role:           domain.UserRole(m.Role),
		PreferredRoles: domain.PreferredRoles(m.PreferredRoles),
		LastSignedIn:   m.LastSignedIn,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:             u.ID,
		OpenID:         u.OpenID,
		Name:           u.Name,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           string(u.Role),
		PreferredRoles: string(u.PreferredRoles),
		LastSignedIn:   u.LastSignedIn,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if m.LastSignedIn.IsZero() {
		m.LastSignedIn = time.Now()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByOpenID(ctx context.Context, openID string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("open_id = ?", openID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) UpdatePreferredRoles(ctx context.Context, userID int64, roles domain.PreferredRoles) error {
	return r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", userID).
		Update("preferred_roles", string(roles)).Error
}

func (r *UserRepository) TouchLastSignedIn(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", userID).
		Update("last_signed_in", time.Now()).Error
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var ms []userModel
	tx := r.db.WithContext(ctx).Order("created_at desc").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) Search(ctx context.Context, query string) ([]domain.User, error) {
	var ms []userModel
	pattern := "%" + query + "%"
	tx := r.db.WithContext(ctx).
		Where("name LIKE ? OR email LIKE ?", pattern, pattern).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).Count(&cnt)
	return cnt, tx.Error
}
