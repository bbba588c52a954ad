package response

import "upi_escrow/internal/domain/entities"

type PaymentResponse struct {
	ID       uint64 `json:"id" example:"1"`
	User     string `json:"user" example:"alice"`
	Merchant string `json:"merchant" example:"bob"`
	Amount   string `json:"amount" example:"500"`
	Status   string `json:"status" example:"PENDING"`
}

// PaymentMutationResponse is returned by create/confirm/cancel: the success
// flag plus the record as persisted by the call.
type PaymentMutationResponse struct {
	Success bool            `json:"success" example:"true"`
	Payment PaymentResponse `json:"payment"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:       p.ID,
		User:     string(p.User),
		Merchant: string(p.Merchant),
		Amount:   p.Amount.String(),
		Status:   string(p.Status),
	}
}

func SucceededWith(p entities.Payment) PaymentMutationResponse {
	return PaymentMutationResponse{Success: true, Payment: FromPayment(p)}
}
