package models

type ChargeRequest struct {
	Amount      int    `json:"amount" binding:"required,min=1"`
	Method      string `json:"method" binding:"required,oneof=mpesa card"`
	PhoneNumber string `json:"phone_number"`
	CardNumber  string `json:"card_number"`
}

type ChargeResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
