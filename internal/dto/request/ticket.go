package request

type PurchaseTicketRequest struct {
	ShowtimeID int64 `json:"showtimeId" validate:"required,min=1"`
}
