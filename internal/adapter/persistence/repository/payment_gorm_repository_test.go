package repository

import (
	"math"
	"testing"

	"upi_escrow/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestPaymentRecord_Mapping(t *testing.T) {
	p := entities.Payment{ID: math.MaxUint64, User: "alice", Merchant: "bob", Amount: entities.NewAmount(-500), Status: entities.PaymentStatusComplete}

	rec := toPaymentRecord(p)
	require.Equal(t, PaymentRecord{
		ID:       "18446744073709551615",
		User:     "alice",
		Merchant: "bob",
		Amount:   "-500",
		Status:   "COMPLETE",
	}, rec)
	require.Equal(t, "escrow_payments", rec.TableName())

	back, err := fromPaymentRecord(rec)
	require.NoError(t, err)
	require.Equal(t, p.ID, back.ID)
	require.Equal(t, p.User, back.User)
	require.Equal(t, p.Merchant, back.Merchant)
	require.Equal(t, p.Status, back.Status)
	require.True(t, p.Amount.Equal(back.Amount))
}

func TestFromPaymentRecord_Invalid(t *testing.T) {
	_, err := fromPaymentRecord(PaymentRecord{ID: "-1", Amount: "1"})
	require.Error(t, err)

	_, err = fromPaymentRecord(PaymentRecord{ID: "1", Amount: "x"})
	require.ErrorIs(t, err, entities.ErrInvalidAmount)
}
