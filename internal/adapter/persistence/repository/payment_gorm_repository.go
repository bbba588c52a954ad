package repository

import (
	"context"
	"fmt"
	"strconv"

	"upi_escrow/internal/domain/entities"
	"upi_escrow/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRecord is the Postgres row for an escrow payment.
//
// id does not fit a signed bigint for every uint64, so it is stored as text,
// and so is the i128 amount.
type PaymentRecord struct {
	ID       string `gorm:"primaryKey;column:id;type:varchar(20)"`
	User     string `gorm:"column:user_principal;not null"`
	Merchant string `gorm:"column:merchant_principal;not null"`
	Amount   string `gorm:"column:amount;type:varchar(40);not null"`
	Status   string `gorm:"column:status;type:varchar(16);not null"`
}

func (PaymentRecord) TableName() string {
	return "escrow_payments"
}

// PaymentGormRepository persists escrow payments in Postgres through GORM.
type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentStore = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Get(ctx context.Context, id uint64) (entities.Payment, bool, error) {
	var rec PaymentRecord
	res := r.db.WithContext(ctx).Where("id = ?", strconv.FormatUint(id, 10)).Limit(1).Find(&rec)
	if res.Error != nil {
		return entities.Payment{}, false, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, false, nil
	}
	p, err := fromPaymentRecord(rec)
	if err != nil {
		return entities.Payment{}, false, err
	}
	return p, true, nil
}

// Set upserts the whole row: creation must replace every column.
func (r *PaymentGormRepository) Set(ctx context.Context, p entities.Payment) error {
	rec := toPaymentRecord(p)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rec).Error
}

func toPaymentRecord(p entities.Payment) PaymentRecord {
	return PaymentRecord{
		ID:       strconv.FormatUint(p.ID, 10),
		User:     string(p.User),
		Merchant: string(p.Merchant),
		Amount:   p.Amount.String(),
		Status:   string(p.Status),
	}
}

func fromPaymentRecord(rec PaymentRecord) (entities.Payment, error) {
	id, err := strconv.ParseUint(rec.ID, 10, 64)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment id %q: %w", rec.ID, err)
	}
	amount, err := entities.ParseAmount(rec.Amount)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %d: %w", id, err)
	}
	return entities.Payment{
		ID:       id,
		User:     entities.Principal(rec.User),
		Merchant: entities.Principal(rec.Merchant),
		Amount:   amount,
		Status:   entities.PaymentStatus(rec.Status),
	}, nil
}
