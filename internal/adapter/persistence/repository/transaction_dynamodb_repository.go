package repository

import (
	"context"
	"strconv"
	"time"

	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "gateway_transactions"
	transactionsInvoiceIDIndex   = "invoice_id-index"
)

type transactionItem struct {
	ID                string `dynamodbav:"id"`
	InvoiceID         string `dynamodbav:"invoice_id"`
	Provider          string `dynamodbav:"provider"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	Status            string `dynamodbav:"status"`
	Amount            string `dynamodbav:"amount"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists GatewayTransaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.GatewayTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.GatewayTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func (r *TransactionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TransactionStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

func fromTransactionItem(it transactionItem) entities.GatewayTransaction {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	status, _ := entities.ParseTransactionStatus(it.Status)
	return entities.GatewayTransaction{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		Provider:          it.Provider,
		ProviderPaymentID: it.ProviderPaymentID,
		Status:            status,
		Amount:            amount,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
