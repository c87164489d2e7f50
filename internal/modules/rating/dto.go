package rating

type SubmitRatingRequest struct {
	SessionID int64  `json:"session_id" binding:"required"`
	TargetID  int64  `json:"target_id" binding:"required"`
	Score     int    `json:"score" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

type RateCancellationRequest struct {
	SessionID int64  `json:"session_id" binding:"required"`
	Score     int    `json:"score" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

type SubmitRatingResponse struct {
	SessionClosed bool `json:"session_closed"`
}
