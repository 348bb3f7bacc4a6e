package repository

import (
	"context"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultShopsTableName = "shops"

// ShopDynamoRepository reads Shop entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ShopDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IShopRepository = (*ShopDynamoRepository)(nil)

func NewShopDynamoRepository(ddb DynamoDBAPI) *ShopDynamoRepository {
	return &ShopDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHOPS_TABLE", defaultShopsTableName),
	}
}

func (r *ShopDynamoRepository) GetByID(ctx context.Context, id string) (entities.Shop, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Shop{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shop{}, nil
	}
	return shopFromItem(out.Item)
}

// ListActive scans the table for shops flagged isActive.
func (r *ShopDynamoRepository) ListActive(ctx context.Context) ([]entities.Shop, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#isActive = :true"),
		ExpressionAttributeNames: map[string]string{
			"#isActive": "isActive",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})

	shops := make([]entities.Shop, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			s, err := shopFromItem(raw)
			if err != nil {
				return nil, err
			}
			shops = append(shops, s)
		}
	}
	return shops, nil
}

func shopFromItem(item map[string]types.AttributeValue) (entities.Shop, error) {
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return entities.Shop{}, err
	}
	return entities.Shop{
		ID:        stringField(doc, "id"),
		OwnerID:   stringField(doc, "ownerId"),
		Name:      stringField(doc, "name"),
		Phone:     stringField(doc, "phone"),
		Address:   addressField(doc["address"]),
		IsActive:  boolField(doc, "isActive"),
		CreatedAt: timeField(doc["createdAt"]),
	}, nil
}
