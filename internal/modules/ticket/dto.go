package ticket

type CreateTicketRequest struct {
	Category string `json:"category" binding:"required,oneof=account matching cancellation ratings rules technical"`
	Subject  string `json:"subject" binding:"required,max=255"`
	Message  string `json:"message" binding:"required"`
}
