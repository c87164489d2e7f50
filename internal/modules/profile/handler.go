package profile

import (
	"net/http"

	"unitutor/internal/domain"
	"unitutor/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Get)
	rg.PUT("/profile", h.Save)
	rg.PUT("/profile/availability", h.UpdateAvailability)
}

func (h *Handler) Get(c *gin.Context) {
	role := domain.ProfileRole(c.DefaultQuery("role", "student"))
	if role != domain.ProfileStudent && role != domain.ProfileTutor {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "role must be student or tutor")
		return
	}

	p, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), role)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) Save(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.Save(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) UpdateAvailability(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.service.UpdateAvailability(c.Request.Context(), c.GetInt64("user_id"), req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
	case ErrBioNeeded:
		response.Error(c, http.StatusBadRequest, "BIO_REQUIRED", "Tutor profile requires a bio")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
