package interfaces

import (
	"context"
	"upi_escrow/internal/domain/entities"
)

// IPaymentStore is the durable key-value store the escrow ledger persists to.
//
// Contract:
//   - one record per payment id, no secondary indexes
//   - Get reports found=false (and no error) for an id with no record
//   - Set overwrites any record stored at p.ID

type IPaymentStore interface {
	Get(ctx context.Context, id uint64) (p entities.Payment, found bool, err error)
	Set(ctx context.Context, p entities.Payment) error
}
