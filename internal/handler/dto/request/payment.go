package request

import "github.com/google/uuid"

type CreatePaymentRequest struct {
	RentalID uuid.UUID `json:"rental_id" binding:"required"`
}

type PageQuery struct {
	Page     string `form:"page"`
	PageSize string `form:"page_size"`
}

type PaymentStatusQuery struct {
	SessionID string `form:"session_id" binding:"required,max=255"`
}
