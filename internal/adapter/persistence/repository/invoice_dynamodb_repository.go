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
	defaultInvoicesTableName = "invoices"
	invoicesPaymentStateIdx  = "payment_state-index"
	invoicesCustomerIDIdx    = "customer_id-index"

	// Due dates are day-granular; a lexicographically sortable layout keeps
	// the sort-key range queries correct.
	dueDateLayout = "2006-01-02"
)

type noteItem struct {
	ID        string `dynamodbav:"id"`
	Body      string `dynamodbav:"body"`
	CreatedAt string `dynamodbav:"created_at"`
}

type invoiceItem struct {
	ID              string     `dynamodbav:"id"`
	CustomerID      string     `dynamodbav:"customer_id"`
	Type            string     `dynamodbav:"type"`
	State           string     `dynamodbav:"state"`
	PaymentState    string     `dynamodbav:"payment_state"`
	DueDate         string     `dynamodbav:"due_date"`
	Amount          string     `dynamodbav:"amount"`
	PaymentPromise  string     `dynamodbav:"payment_promise,omitempty"`
	SettlementDates []string   `dynamodbav:"settlement_dates,omitempty"`
	Notes           []noteItem `dynamodbav:"notes,omitempty"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_state-index (PK: payment_state, SK: due_date)
//   - GSI: customer_id-index (PK: customer_id, SK: due_date)
//
// Invoices are mirrored from the accounting platform; this repository only
// mutates the collection-owned attributes (payment_promise, notes).

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListOverdueUnpaid(ctx context.Context, asOf time.Time) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesPaymentStateIdx),
		KeyConditionExpression: aws.String("payment_state = :ps AND due_date < :cutoff"),
		FilterExpression:       aws.String("#state = :posted AND #type = :out_invoice"),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
			"#type":  "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ps":          &types.AttributeValueMemberS{Value: string(entities.PaymentStateNotPaid)},
			":cutoff":      &types.AttributeValueMemberS{Value: asOf.Format(dueDateLayout)},
			":posted":      &types.AttributeValueMemberS{Value: string(entities.InvoiceStatePosted)},
			":out_invoice": &types.AttributeValueMemberS{Value: string(entities.InvoiceTypeCustomer)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func (r *InvoiceDynamoRepository) ListPostedByCustomerDueBetween(ctx context.Context, customerID string, from, to time.Time) ([]entities.Invoice, error) {
	// [from, to): BETWEEN is inclusive, so the upper bound steps back a day.
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesCustomerIDIdx),
		KeyConditionExpression: aws.String("customer_id = :cid AND due_date BETWEEN :from AND :to"),
		FilterExpression:       aws.String("#state = :posted AND #type = :out_invoice"),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
			"#type":  "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":         &types.AttributeValueMemberS{Value: customerID},
			":from":        &types.AttributeValueMemberS{Value: from.Format(dueDateLayout)},
			":to":          &types.AttributeValueMemberS{Value: to.AddDate(0, 0, -1).Format(dueDateLayout)},
			":posted":      &types.AttributeValueMemberS{Value: string(entities.InvoiceStatePosted)},
			":out_invoice": &types.AttributeValueMemberS{Value: string(entities.InvoiceTypeCustomer)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func (r *InvoiceDynamoRepository) ListUnpaidByCustomer(ctx context.Context, customerID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesCustomerIDIdx),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		FilterExpression:       aws.String("payment_state = :ps AND #state = :posted AND #type = :out_invoice"),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
			"#type":  "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":         &types.AttributeValueMemberS{Value: customerID},
			":ps":          &types.AttributeValueMemberS{Value: string(entities.PaymentStateNotPaid)},
			":posted":      &types.AttributeValueMemberS{Value: string(entities.InvoiceStatePosted)},
			":out_invoice": &types.AttributeValueMemberS{Value: string(entities.InvoiceTypeCustomer)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func (r *InvoiceDynamoRepository) ListUnpaidDueBetween(ctx context.Context, from, to time.Time) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesPaymentStateIdx),
		KeyConditionExpression: aws.String("payment_state = :ps AND due_date BETWEEN :from AND :to"),
		FilterExpression:       aws.String("#state = :posted AND #type = :out_invoice"),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
			"#type":  "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ps":          &types.AttributeValueMemberS{Value: string(entities.PaymentStateNotPaid)},
			":from":        &types.AttributeValueMemberS{Value: from.Format(dueDateLayout)},
			":to":          &types.AttributeValueMemberS{Value: to.Format(dueDateLayout)},
			":posted":      &types.AttributeValueMemberS{Value: string(entities.InvoiceStatePosted)},
			":out_invoice": &types.AttributeValueMemberS{Value: string(entities.InvoiceTypeCustomer)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func (r *InvoiceDynamoRepository) SetPaymentPromise(ctx context.Context, id string, promise time.Time) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #payment_promise = :promise"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#payment_promise": "payment_promise",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":promise": &types.AttributeValueMemberS{Value: promise.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) AppendNote(ctx context.Context, id string, note entities.Note) error {
	noteAV, err := attributevalue.MarshalList([]noteItem{toNoteItem(note)})
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #notes = list_append(if_not_exists(#notes, :empty), :note)"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#notes": "notes",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":note":  &types.AttributeValueMemberL{Value: noteAV},
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
	})
	return err
}

func unmarshalInvoices(raw []map[string]types.AttributeValue) ([]entities.Invoice, error) {
	items := make([]entities.Invoice, 0, len(raw))
	for _, m := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func toNoteItem(n entities.Note) noteItem {
	return noteItem{
		ID:        n.ID,
		Body:      n.Body,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNoteItem(it noteItem) entities.Note {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Note{ID: it.ID, Body: it.Body, CreatedAt: createdAt}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	dueDate, _ := time.Parse(dueDateLayout, it.DueDate)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	inv := entities.Invoice{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		Type:         entities.InvoiceType(it.Type),
		State:        entities.InvoiceState(it.State),
		PaymentState: entities.PaymentState(it.PaymentState),
		DueDate:      dueDate,
		Amount:       amount,
	}
	if it.PaymentPromise != "" {
		if promise, err := time.Parse(time.RFC3339Nano, it.PaymentPromise); err == nil {
			inv.PaymentPromise = &promise
		}
	}
	for _, raw := range it.SettlementDates {
		if d, err := time.Parse(dueDateLayout, raw); err == nil {
			inv.SettlementDates = append(inv.SettlementDates, d)
		}
	}
	for _, n := range it.Notes {
		inv.Notes = append(inv.Notes, fromNoteItem(n))
	}
	return inv
}
