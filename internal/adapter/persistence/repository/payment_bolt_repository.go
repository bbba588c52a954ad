package repository

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"upi_escrow/internal/domain/entities"
	"upi_escrow/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

// PaymentsBucket is the Bolt bucket holding one JSON record per payment id.
const PaymentsBucket = "payments"

// PaymentBoltRepository persists escrow payments in an embedded BoltDB file.
// Keys are the 8-byte big-endian payment id; every call is one transaction.
type PaymentBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IPaymentStore = (*PaymentBoltRepository)(nil)

// NewPaymentBoltRepository expects db to already contain PaymentsBucket
// (see database.OpenBolt).
func NewPaymentBoltRepository(db *bolt.DB) *PaymentBoltRepository {
	return &PaymentBoltRepository{db: db}
}

func (r *PaymentBoltRepository) Get(_ context.Context, id uint64) (entities.Payment, bool, error) {
	var (
		p     entities.Payment
		found bool
	)
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(PaymentsBucket)).Get(paymentKey(id))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &p)
	})
	if err != nil {
		return entities.Payment{}, false, err
	}
	return p, found, nil
}

func (r *PaymentBoltRepository) Set(_ context.Context, p entities.Payment) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(PaymentsBucket)).Put(paymentKey(p.ID), data)
	})
}

func paymentKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}
