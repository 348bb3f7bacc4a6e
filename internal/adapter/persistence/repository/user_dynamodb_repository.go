package repository

import (
	"context"
	"log"
	"strings"

	"shop_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

const attrFCMToken = "fcmToken"

// UserDynamoRepository resolves push tokens from the users table (PK: id).
type UserDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoDBAPI) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetFCMToken(ctx context.Context, userID string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
		ProjectionExpression: aws.String("#token"),
		ExpressionAttributeNames: map[string]string{
			"#token": attrFCMToken,
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	// A token of any other type is treated as missing: no push, no error.
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		log.Printf("[user][repository] unreadable user item user_id=%s err=%v", userID, err)
		return "", nil
	}
	token, _ := doc[attrFCMToken].(string)
	return strings.TrimSpace(token), nil
}
