package repository

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	defaultOrdersShopIndex = "shopId-createdAt-index"
	maxTxAttempts          = 5
	txRetryBackoff         = 25 * time.Millisecond
)

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shopId-createdAt-index (PK: shopId, SK: createdAt), projection ALL
//   - Streams: NEW_AND_OLD_IMAGES, consumed by the revenue counter
type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	shopIndex string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		shopIndex: getenvDefault("ORDERS_SHOP_INDEX", defaultOrdersShopIndex),
		now:       time.Now,
	}
}

// TableName is the resolved orders table, used to look up its stream.
func (r *OrderDynamoRepository) TableName() string {
	return r.tableName
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	item, err := r.getItem(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if len(item) == 0 {
		return entities.Order{}, nil
	}
	return OrderFromItem(item)
}

func (r *OrderDynamoRepository) getItem(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (r *OrderDynamoRepository) ListByShop(ctx context.Context, shopID string, status entities.OrderStatus) ([]entities.Order, error) {
	in := r.shopQuery(shopID, status)
	return r.query(ctx, in)
}

func (r *OrderDynamoRepository) ListByShopCreatedBetween(ctx context.Context, shopID string, status entities.OrderStatus, from, to time.Time) ([]entities.Order, error) {
	in := r.shopQuery(shopID, status)
	in.KeyConditionExpression = aws.String("#shopId = :shopId AND #createdAt BETWEEN :from AND :to")
	in.ExpressionAttributeNames["#createdAt"] = attrCreatedAt
	in.ExpressionAttributeValues[":from"] = &types.AttributeValueMemberS{Value: formatTimestamp(from)}
	in.ExpressionAttributeValues[":to"] = &types.AttributeValueMemberS{Value: formatTimestamp(to)}
	return r.query(ctx, in)
}

// shopQuery builds a newest-first index query on shopId, filtered by status
// when one is given.
func (r *OrderDynamoRepository) shopQuery(shopID string, status entities.OrderStatus) *dynamodb.QueryInput {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.shopIndex),
		KeyConditionExpression: aws.String("#shopId = :shopId"),
		ExpressionAttributeNames: map[string]string{
			"#shopId": attrShopID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":shopId": &types.AttributeValueMemberS{Value: shopID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames["#status"] = attrStatus
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}
	return in
}

func (r *OrderDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			o, err := OrderFromItem(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, id string, m interfaces.OrderMutation) (entities.Order, error) {
	expr, values, names := buildOrderMutation(m, r.now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": attrID}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return OrderFromItem(out.Attributes)
}

// RunInTransaction implements optimistic concurrency on a single document:
// the write is conditioned on status and completedAt still holding the values
// that were read. A lost race re-reads and calls fn again.
func (r *OrderDynamoRepository) RunInTransaction(ctx context.Context, id string, fn interfaces.OrderTxFunc) (entities.Order, error) {
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		item, err := r.getItem(ctx, id)
		if err != nil {
			return entities.Order{}, err
		}
		if len(item) == 0 {
			return entities.Order{}, nil
		}
		current, err := OrderFromItem(item)
		if err != nil {
			return entities.Order{}, err
		}

		m, err := fn(current)
		if err != nil {
			return entities.Order{}, err
		}

		expr, values, names := buildOrderMutation(m, r.now())
		cond, condValues, condNames := snapshotCondition(item)

		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				attrID: &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression:       aws.String(cond),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeValues: mergeValues(values, condValues),
			ExpressionAttributeNames:  mergeNames(names, condNames),
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err == nil {
			return OrderFromItem(out.Attributes)
		}

		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.Order{}, err
		}
		log.Printf("[order][repository] transaction conflict order_id=%s attempt=%d", id, attempt)

		select {
		case <-ctx.Done():
			return entities.Order{}, ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryBackoff):
		}
	}
	return entities.Order{}, interfaces.ErrConcurrentModification
}

func buildOrderMutation(m interfaces.OrderMutation, now time.Time) (string, map[string]types.AttributeValue, map[string]string) {
	sets := []string{"#status = :status", "#updatedAt = :updatedAt"}
	values := map[string]types.AttributeValue{
		":status":    &types.AttributeValueMemberS{Value: string(m.Status)},
		":updatedAt": &types.AttributeValueMemberS{Value: formatTimestamp(now)},
	}
	names := map[string]string{
		"#status":    attrStatus,
		"#updatedAt": attrUpdatedAt,
	}

	var remove []string
	switch {
	case m.CompletedAt != nil:
		sets = append(sets, "#completedAt = :completedAt")
		values[":completedAt"] = &types.AttributeValueMemberS{Value: formatTimestamp(*m.CompletedAt)}
		names["#completedAt"] = attrCompletedAt
	case m.ClearCompletedAt:
		remove = append(remove, "#completedAt")
		names["#completedAt"] = attrCompletedAt
	}
	if m.CancelReason != nil {
		sets = append(sets, "#cancelReason = :cancelReason")
		values[":cancelReason"] = &types.AttributeValueMemberS{Value: *m.CancelReason}
		names["#cancelReason"] = attrCancelReason
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(remove) > 0 {
		expr += " REMOVE " + strings.Join(remove, ", ")
	}
	return expr, values, names
}

// snapshotCondition requires status and completedAt to be unchanged since the
// item was read.
func snapshotCondition(item map[string]types.AttributeValue) (string, map[string]types.AttributeValue, map[string]string) {
	conds := []string{"attribute_exists(#id)"}
	values := map[string]types.AttributeValue{}
	names := map[string]string{
		"#id":          attrID,
		"#status":      attrStatus,
		"#completedAt": attrCompletedAt,
	}

	if v, ok := item[attrStatus]; ok {
		conds = append(conds, "#status = :prevStatus")
		values[":prevStatus"] = v
	} else {
		conds = append(conds, "attribute_not_exists(#status)")
	}
	if v, ok := item[attrCompletedAt]; ok {
		conds = append(conds, "#completedAt = :prevCompletedAt")
		values[":prevCompletedAt"] = v
	} else {
		conds = append(conds, "attribute_not_exists(#completedAt)")
	}
	return strings.Join(conds, " AND "), values, names
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
