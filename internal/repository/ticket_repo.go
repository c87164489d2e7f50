package repository

import (
	"context"
	"time"

	"unitutor/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

type ticketModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	Category      string    `gorm:"column:category;size:20"`
	Subject       string    `gorm:"column:subject;size:255"`
	Message       string    `gorm:"column:message;type:text"`
	Status        string    `gorm:"column:status;size:20;default:pending"`
	AdminResponse *string   `gorm:"column:admin_response;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (ticketModel) TableName() string { return "tickets" }

func toDomainTicket(m ticketModel) *domain.Ticket {
	var resp string
	if m.AdminResponse != nil {
		resp = *m.AdminResponse
	}
	return &domain.Ticket{
		ID:            m.ID,
		UserID:        m.UserID,
		Category:      domain.TicketCategory(m.Category),
		Subject:       m.Subject,
		Message:       m.Message,
		Status:        domain.TicketStatus(m.Status),
		AdminResponse: resp,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	m := ticketModel{
		UserID:   t.UserID,
		Category: string(t.Category),
		Subject:  t.Subject,
		Message:  t.Message,
		Status:   string(t.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTicket(m)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	var m ticketModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTicket(m), nil
}

func (r *TicketRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	var ms []ticketModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTickets(ms), nil
}

func (r *TicketRepository) GetAll(ctx context.Context) ([]domain.Ticket, error) {
	var ms []ticketModel
	tx := r.db.WithContext(ctx).Order("created_at desc").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTickets(ms), nil
}

func (r *TicketRepository) Update(ctx context.Context, id int64, status domain.TicketStatus, adminResponse string) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if adminResponse != "" {
		updates["admin_response"] = adminResponse
	}
	tx := r.db.WithContext(ctx).
		Model(&ticketModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toDomainTickets(ms []ticketModel) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainTicket(m))
	}
	return out
}
