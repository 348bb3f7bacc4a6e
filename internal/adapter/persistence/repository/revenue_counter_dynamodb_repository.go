package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRevenueTableName = "shop_revenue"

type revenueCounterItem struct {
	ShopID       string  `dynamodbav:"shopId"`
	TotalRevenue float64 `dynamodbav:"totalRevenue"`
	TotalOrders  int     `dynamodbav:"totalOrders"`
	LastUpdated  string  `dynamodbav:"lastUpdated"`
	Version      int64   `dynamodbav:"version"`
}

// RevenueCounterDynamoRepository persists one running revenue total per shop.
//
// Table requirements:
//   - PK: shopId (string)
type RevenueCounterDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IRevenueCounterRepository = (*RevenueCounterDynamoRepository)(nil)

func NewRevenueCounterDynamoRepository(ddb DynamoDBAPI) *RevenueCounterDynamoRepository {
	return &RevenueCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVENUE_TABLE", defaultRevenueTableName),
		now:       time.Now,
	}
}

func (r *RevenueCounterDynamoRepository) Get(ctx context.Context, shopID string) (entities.RevenueCounter, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"shopId": &types.AttributeValueMemberS{Value: shopID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RevenueCounter{}, err
	}
	if len(out.Item) == 0 {
		return entities.RevenueCounter{}, nil
	}
	return revenueCounterFromItem(out.Item)
}

// Apply uses ADD so concurrent triggers never lose increments. ADD on a
// missing item creates it with the deltas as initial values.
func (r *RevenueCounterDynamoRepository) Apply(ctx context.Context, shopID string, revenueDelta float64, ordersDelta int) (entities.RevenueCounter, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"shopId": &types.AttributeValueMemberS{Value: shopID},
		},
		UpdateExpression: aws.String("ADD #totalRevenue :revenue, #totalOrders :orders, #version :one SET #lastUpdated = :now"),
		ExpressionAttributeNames: map[string]string{
			"#totalRevenue": "totalRevenue",
			"#totalOrders":  "totalOrders",
			"#version":      "version",
			"#lastUpdated":  "lastUpdated",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":revenue": &types.AttributeValueMemberN{Value: floatToString(revenueDelta)},
			":orders":  &types.AttributeValueMemberN{Value: strconv.Itoa(ordersDelta)},
			":one":     &types.AttributeValueMemberN{Value: "1"},
			":now":     &types.AttributeValueMemberS{Value: formatTimestamp(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.RevenueCounter{}, err
	}
	return revenueCounterFromItem(out.Attributes)
}

// Overwrite is a put conditioned on the version read before recomputing, so
// an increment applied in between is never clobbered. Counters written before
// versioning carry no version attribute and match expectedVersion 0.
func (r *RevenueCounterDynamoRepository) Overwrite(ctx context.Context, c entities.RevenueCounter, expectedVersion int64) error {
	at := c.LastUpdated
	if at.IsZero() {
		at = r.now()
	}
	av, err := attributevalue.MarshalMap(revenueCounterItem{
		ShopID:       c.ShopID,
		TotalRevenue: c.TotalRevenue,
		TotalOrders:  c.TotalOrders,
		LastUpdated:  formatTimestamp(at),
		Version:      expectedVersion + 1,
	})
	if err != nil {
		return err
	}

	cond := "#version = :expected"
	if expectedVersion == 0 {
		cond = "attribute_not_exists(#version) OR " + cond
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(cond),
		ExpressionAttributeNames: map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrCounterChanged
		}
		return err
	}
	return nil
}

func revenueCounterFromItem(item map[string]types.AttributeValue) (entities.RevenueCounter, error) {
	var it revenueCounterItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.RevenueCounter{}, err
	}
	lastUpdated, _ := time.Parse(time.RFC3339Nano, it.LastUpdated)
	return entities.RevenueCounter{
		ShopID:       it.ShopID,
		TotalRevenue: it.TotalRevenue,
		TotalOrders:  it.TotalOrders,
		LastUpdated:  lastUpdated,
		Version:      it.Version,
	}, nil
}
