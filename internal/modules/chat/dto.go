package chat

type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
