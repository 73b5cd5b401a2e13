package repository

import (
	"context"

	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVehiclesTableName = "vehicles"
	vehiclesCustomerIDIndex  = "customer_id-index"
	vehiclesTrackerStateIdx  = "tracker_state-index"
)

type vehicleItem struct {
	ID              string     `dynamodbav:"id"`
	CustomerID      string     `dynamodbav:"customer_id"`
	Plate           string     `dynamodbav:"plate"`
	TrackerDeviceID string     `dynamodbav:"tracker_device_id,omitempty"`
	TrackerState    string     `dynamodbav:"tracker_state"`
	Notes           []noteItem `dynamodbav:"notes,omitempty"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: tracker_state-index (PK: tracker_state)
//
// The tracker_state attribute caches the last successful command outcome so
// the unblock pass can enumerate blocked vehicles without walking the fleet.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalVehicles(out.Items)
}

func (r *VehicleDynamoRepository) ListByTrackerState(ctx context.Context, state entities.TrackerState) ([]entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesTrackerStateIdx),
		KeyConditionExpression: aws.String("tracker_state = :state"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(state)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalVehicles(out.Items)
}

func (r *VehicleDynamoRepository) UpdateTrackerState(ctx context.Context, id string, state entities.TrackerState) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #tracker_state = :state"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#tracker_state": "tracker_state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(state)},
		},
	})
	return err
}

func (r *VehicleDynamoRepository) AppendNote(ctx context.Context, id string, note entities.Note) error {
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

func unmarshalVehicles(raw []map[string]types.AttributeValue) ([]entities.Vehicle, error) {
	items := make([]entities.Vehicle, 0, len(raw))
	for _, m := range raw {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVehicleItem(it))
	}
	return items, nil
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	state, _ := entities.ParseTrackerState(it.TrackerState)
	v := entities.Vehicle{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		Plate:           it.Plate,
		TrackerDeviceID: it.TrackerDeviceID,
		TrackerState:    state,
	}
	for _, n := range it.Notes {
		v.Notes = append(v.Notes, fromNoteItem(n))
	}
	return v
}
