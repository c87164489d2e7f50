package session

import (
	"net/http"
	"strconv"

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
	rg.POST("/sessions", h.Create)
	rg.GET("/sessions", h.List)
	rg.GET("/sessions/:id", h.Get)
	rg.POST("/sessions/:id/confirm", h.Confirm)
	rg.POST("/sessions/:id/cancel", h.Cancel)
	rg.POST("/sessions/:id/complete", h.MarkComplete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

func (h *Handler) List(c *gin.Context) {
	sessions, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.service.Confirm(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req CancelSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.Cancel(c.Request.Context(), id, c.GetInt64("user_id"), req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) MarkComplete(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.service.MarkComplete(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MarkCompleteResponse{
		BothCompleted: sess.StudentCompleted && sess.TutorCompleted,
		Status:        sess.Status,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case ErrSelfBooking:
		response.Error(c, http.StatusBadRequest, "SELF_BOOKING", "You cannot book a session with yourself")
	case ErrTooSoon:
		response.Error(c, http.StatusBadRequest, "TOO_SOON", "This time slot is within 4 hours. Please pick a later slot")
	case ErrTooLate:
		response.Error(c, http.StatusBadRequest, "TOO_LATE", "Cannot cancel within 12 hours of the start time")
	case ErrSlotTaken:
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "The tutor has another session scheduled in this slot")
	case ErrInvalidStatus:
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Session is not in a valid state for this action")
	case ErrNotStarted:
		response.Error(c, http.StatusBadRequest, "NOT_STARTED", "Cannot mark a session complete before it starts")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session time range")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func sessionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
		return 0, false
	}
	return id, true
}
