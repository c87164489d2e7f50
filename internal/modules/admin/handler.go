package admin

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

// RegisterRoutes mounts admin endpoints. The group is expected to carry the
// admin-only middleware already.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/sessions", h.Sessions)
	rg.GET("/admin/disputes", h.Disputes)
	rg.GET("/admin/tickets", h.Tickets)
	rg.PUT("/admin/tickets/:id", h.UpdateTicket)
	rg.GET("/admin/analytics", h.Analytics)
	rg.GET("/admin/users", h.Users)
	rg.GET("/admin/users/:id", h.UserDetail)
}

func (h *Handler) Sessions(c *gin.Context) {
	sessions, err := h.service.Sessions(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) Disputes(c *gin.Context) {
	sessions, err := h.service.Disputes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) Tickets(c *gin.Context) {
	tickets, err := h.service.Tickets(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tickets": tickets})
}

func (h *Handler) UpdateTicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ticket ID")
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.service.UpdateTicket(c.Request.Context(), id, req); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ticket not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) Analytics(c *gin.Context) {
	a, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Users(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) UserDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	detail, err := h.service.UserDetail(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, detail)
}
