package entities

import "strings"

// PaymentStatus represents where an escrowed payment is in its lifecycle.
//
// Transitions:
//   - PENDING  -> COMPLETE (merchant confirms the out-of-band transfer)
//   - PENDING  -> CANCELED (user withdraws before confirmation)
//
// COMPLETE and CANCELED are terminal.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusComplete PaymentStatus = "COMPLETE"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

// IsTerminal reports whether no further transition is defined from s.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusComplete || s == PaymentStatusCanceled
}

// Principal identifies a party that can be the subject of an authorization
// proof (a wallet address, an e-mail, ...). Comparison is exact.
type Principal string

func (p Principal) IsZero() bool {
	return strings.TrimSpace(string(p)) == ""
}

// AuthorizationProof is the per-call evidence that the caller acts on behalf
// of a principal. Its format is owned by the authorization oracle.
type AuthorizationProof string

// Payment is the escrow record persisted by the ledger.
//
// Storage model:
//   - key: id (one record per id, creation overwrites)
//   - only Status changes after creation
type Payment struct {
	ID       uint64        `json:"id"`
	User     Principal     `json:"user"`
	Merchant Principal     `json:"merchant"`
	Amount   Amount        `json:"amount"`
	Status   PaymentStatus `json:"status"`
}
