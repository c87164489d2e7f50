package chat

import (
	"log"
	"net/http"
	"strconv"

	"unitutor/internal/pkg/jwt"
	"unitutor/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwt.Service
}

func NewHandler(service *Service, hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwtService}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sessions/:id/messages", h.GetMessages)
	rg.POST("/sessions/:id/messages", h.SendMessage)
}

// RegisterWS mounts the websocket endpoint outside the auth middleware:
// browsers cannot set headers on websocket requests, so the token rides a
// query parameter.
func (h *Handler) RegisterWS(r *gin.Engine, basePath string) {
	r.GET(basePath+"/ws", h.WebSocket)
}

func (h *Handler) SendMessage(c *gin.Context) {
	sessionID, ok := sessionID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), c.GetInt64("user_id"), sessionID, req.Message)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) GetMessages(c *gin.Context) {
	sessionID, ok := sessionID(c)
	if !ok {
		return
	}

	msgs, err := h.service.GetMessages(c.Request.Context(), c.GetInt64("user_id"), sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": msgs})
}

func (h *Handler) WebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	userID := claims.UserID
	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	// the connection is push-only; reads just detect disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message cannot be empty")
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
