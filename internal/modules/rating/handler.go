package rating

import (
	"net/http"
	"strconv"

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
	rg.POST("/ratings", h.Submit)
	rg.POST("/ratings/cancellation", h.RateCancellation)
	rg.GET("/users/:id/ratings", h.GetForUser)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	closed, err := h.service.Submit(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, SubmitRatingResponse{SessionClosed: closed})
}

func (h *Handler) RateCancellation(c *gin.Context) {
	var req RateCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.RateCancellation(c.Request.Context(), c.GetInt64("user_id"), req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{})
}

func (h *Handler) GetForUser(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var visibility *domain.RatingVisibility
	switch c.Query("visibility") {
	case "public":
		v := domain.RatingPublic
		visibility = &v
	case "private":
		v := domain.RatingPrivate
		visibility = &v
	}

	ratings, err := h.service.GetForUser(c.Request.Context(), targetID, visibility)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ratings": ratings})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case ErrSelfRating:
		response.Error(c, http.StatusBadRequest, "SELF_RATING", "You cannot rate yourself")
	case ErrNotRatable:
		response.Error(c, http.StatusBadRequest, "NOT_RATABLE", "Session not ready for rating")
	case ErrAlreadyRated:
		response.Error(c, http.StatusBadRequest, "ALREADY_RATED", "Already rated this session")
	case ErrNotCancelled:
		response.Error(c, http.StatusBadRequest, "NOT_CANCELLED", "Session is not cancelled")
	case ErrNothingToRate:
		response.Error(c, http.StatusBadRequest, "NO_CANCELLATION", "No cancellation to rate")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rating")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
