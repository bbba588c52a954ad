package repository

import (
	"context"
	"errors"
	"testing"

	"upi_escrow/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items keyed by the "id" number attribute.
type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	tables []string
	err    error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, *in.TableName)
	key := in.Key["id"].(*types.AttributeValueMemberN).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, *in.TableName)
	key := in.Item["id"].(*types.AttributeValueMemberN).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestPaymentDynamoRepository_SetGet(t *testing.T) {
	t.Setenv("PAYMENTS_TABLE", "")
	ddb := newFakeDynamo()
	r := NewPaymentDynamoRepository(ddb)
	ctx := context.Background()

	amount, err := entities.ParseAmount("170141183460469231731687303715884105727")
	require.NoError(t, err)
	p := entities.Payment{ID: 18446744073709551615, User: "alice", Merchant: "bob", Amount: amount, Status: entities.PaymentStatusPending}
	require.NoError(t, r.Set(ctx, p))

	stored := ddb.items["18446744073709551615"]
	require.IsType(t, &types.AttributeValueMemberS{}, stored["amount"])
	require.Equal(t, "170141183460469231731687303715884105727", stored["amount"].(*types.AttributeValueMemberS).Value)

	got, found, err := r.Get(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, p.User, got.User)
	require.Equal(t, p.Merchant, got.Merchant)
	require.Equal(t, p.Status, got.Status)
	require.True(t, p.Amount.Equal(got.Amount))

	require.Equal(t, []string{defaultPaymentsTableName, defaultPaymentsTableName}, ddb.tables)
}

func TestPaymentDynamoRepository_Missing(t *testing.T) {
	r := NewPaymentDynamoRepository(newFakeDynamo())

	_, found, err := r.Get(context.Background(), 3)
	require.NoError(t, err)
	require.False(t, found)
}

func TestPaymentDynamoRepository_Errors(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.err = errors.New("throttled")
	r := NewPaymentDynamoRepository(ddb)

	_, _, err := r.Get(context.Background(), 1)
	require.EqualError(t, err, "throttled")
	require.EqualError(t, r.Set(context.Background(), entities.Payment{ID: 1}), "throttled")
}

func TestPaymentDynamoRepository_TableFromEnv(t *testing.T) {
	t.Setenv("PAYMENTS_TABLE", "escrow_payments_test")
	ddb := newFakeDynamo()
	r := NewPaymentDynamoRepository(ddb)

	_, _, err := r.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{"escrow_payments_test"}, ddb.tables)
}

func TestFromPaymentItem_InvalidAmount(t *testing.T) {
	_, err := fromPaymentItem(paymentItem{ID: 1, Amount: "12.5"})
	require.ErrorIs(t, err, entities.ErrInvalidAmount)
}
