package profile

import "unitutor/internal/domain"

type SaveProfileRequest struct {
	Role         string                    `json:"role" binding:"required,oneof=student tutor"`
	Age          int                       `json:"age" binding:"required,gte=16,lte=100"`
	Year         string                    `json:"year" binding:"required"`
	Major        string                    `json:"major" binding:"required"`
	Bio          string                    `json:"bio"`
	PriceMin     int                       `json:"price_min" binding:"gte=0"`
	PriceMax     int                       `json:"price_max" binding:"gte=0"`
	Courses      []string                  `json:"courses" binding:"required,min=1"`
	Availability []domain.AvailabilitySlot `json:"availability"`
	ContactInfo  string                    `json:"contact_info"`
}

type UpdateAvailabilityRequest struct {
	Role         string                    `json:"role" binding:"required,oneof=student tutor"`
	Availability []domain.AvailabilitySlot `json:"availability" binding:"required"`
}
