package repository

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"upi_escrow/internal/domain/entities"
	"upi_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "escrow_payments"

// PaymentsDynamoAPI is the subset of the DynamoDB client the store uses.
type PaymentsDynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Amount is kept as a string attribute: DynamoDB numbers carry 38 digits and
// an i128 may need 39.
type paymentItem struct {
	ID       uint64 `dynamodbav:"id"`
	User     string `dynamodbav:"user"`
	Merchant string `dynamodbav:"merchant"`
	Amount   string `dynamodbav:"amount"`
	Status   string `dynamodbav:"status"`
}

// PaymentDynamoRepository persists escrow payments in DynamoDB.
//
// Table requirements:
//   - PK: id (number)

type PaymentDynamoRepository struct {
	ddb       PaymentsDynamoAPI
	tableName string
}

var _ interfaces.IPaymentStore = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb PaymentsDynamoAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: PaymentsTableName(),
	}
}

// PaymentsTableName resolves the payments table from PAYMENTS_TABLE.
func PaymentsTableName() string {
	if v := os.Getenv("PAYMENTS_TABLE"); v != "" {
		return v
	}
	return defaultPaymentsTableName
}

func (r *PaymentDynamoRepository) Get(ctx context.Context, id uint64) (entities.Payment, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatUint(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, false, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, false, err
	}
	p, err := fromPaymentItem(it)
	if err != nil {
		return entities.Payment{}, false, err
	}
	return p, true, nil
}

func (r *PaymentDynamoRepository) Set(ctx context.Context, p entities.Payment) error {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:       p.ID,
		User:     string(p.User),
		Merchant: string(p.Merchant),
		Amount:   p.Amount.String(),
		Status:   string(p.Status),
	}
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	amount, err := entities.ParseAmount(it.Amount)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %d: %w", it.ID, err)
	}
	return entities.Payment{
		ID:       it.ID,
		User:     entities.Principal(it.User),
		Merchant: entities.Principal(it.Merchant),
		Amount:   amount,
		Status:   entities.PaymentStatus(it.Status),
	}, nil
}
