package request

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"upi_escrow/internal/domain/entities"
)

var (
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrMissingPrincipal     = errors.New("missing principal")
)

// CreatePaymentRequest is the payload for opening an escrow payment.
//
// id accepts a JSON number or a numeric string (clients limited to float64
// numbers should send the string form for ids above 2^53).
type CreatePaymentRequest struct {
	ID       json.Number      `json:"id" swaggertype:"string" example:"1"`
	User     string           `json:"user" example:"alice"`
	Merchant string           `json:"merchant" example:"bob"`
	Amount   *entities.Amount `json:"amount" swaggertype:"string" example:"500"`
}

func (r CreatePaymentRequest) ResolveID() (uint64, error) {
	return ParsePaymentID(r.ID.String())
}

func (r CreatePaymentRequest) ResolveUser() (entities.Principal, error) {
	return resolvePrincipal(r.User)
}

func (r CreatePaymentRequest) ResolveMerchant() (entities.Principal, error) {
	return resolvePrincipal(r.Merchant)
}

func (r CreatePaymentRequest) ResolveAmount() (entities.Amount, error) {
	if r.Amount == nil {
		return entities.Amount{}, ErrInvalidPaymentAmount
	}
	return *r.Amount, nil
}

// ConfirmPaymentRequest names the merchant confirming the payment.
type ConfirmPaymentRequest struct {
	Merchant string `json:"merchant" example:"bob"`
}

func (r ConfirmPaymentRequest) ResolveMerchant() (entities.Principal, error) {
	return resolvePrincipal(r.Merchant)
}

// CancelPaymentRequest names the user withdrawing the payment.
type CancelPaymentRequest struct {
	User string `json:"user" example:"alice"`
}

func (r CancelPaymentRequest) ResolveUser() (entities.Principal, error) {
	return resolvePrincipal(r.User)
}

// ParsePaymentID parses a base-10 uint64 payment id.
func ParsePaymentID(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidPaymentID
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidPaymentID
	}
	return id, nil
}

func resolvePrincipal(raw string) (entities.Principal, error) {
	p := entities.Principal(strings.TrimSpace(raw))
	if p.IsZero() {
		return "", ErrMissingPrincipal
	}
	return p, nil
}
