package repository

import (
	"context"
	"strconv"
	"testing"
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueCounterDynamoRepository_Apply(t *testing.T) {
	ddb := &fakeDynamoDB{
		updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
				"shopId":       avS("shop-1"),
				"totalRevenue": avN("150.5"),
				"totalOrders":  avN("4"),
				"lastUpdated":  avS("2026-10-15T12:00:00.000Z"),
			}}, nil
		},
	}
	repo := NewRevenueCounterDynamoRepository(ddb)
	repo.now = func() time.Time { return repoNow }

	c, err := repo.Apply(context.Background(), "shop-1", -12.5, -1)
	require.NoError(t, err)
	assert.Equal(t, entities.RevenueCounter{ShopID: "shop-1", TotalRevenue: 150.5, TotalOrders: 4, LastUpdated: repoNow}, c)

	in := ddb.updates[0]
	assert.Equal(t, "ADD #totalRevenue :revenue, #totalOrders :orders, #version :one SET #lastUpdated = :now", *in.UpdateExpression)
	assert.Nil(t, in.ConditionExpression)
	assert.Equal(t, "-12.5", in.ExpressionAttributeValues[":revenue"].(*types.AttributeValueMemberN).Value)
	assert.Equal(t, "-1", in.ExpressionAttributeValues[":orders"].(*types.AttributeValueMemberN).Value)
}

func TestRevenueCounterDynamoRepository_GetMissing(t *testing.T) {
	repo := NewRevenueCounterDynamoRepository(&fakeDynamoDB{})
	c, err := repo.Get(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, entities.RevenueCounter{}, c)
}

func TestRevenueCounterDynamoRepository_Overwrite(t *testing.T) {
	ddb := &fakeDynamoDB{}
	repo := NewRevenueCounterDynamoRepository(ddb)
	repo.now = func() time.Time { return repoNow }

	err := repo.Overwrite(context.Background(), entities.RevenueCounter{ShopID: "shop-1", TotalRevenue: 80, TotalOrders: 2}, 0)
	require.NoError(t, err)
	require.Len(t, ddb.puts, 1)

	var it revenueCounterItem
	require.NoError(t, attributevalue.UnmarshalMap(ddb.puts[0].Item, &it))
	assert.Equal(t, revenueCounterItem{ShopID: "shop-1", TotalRevenue: 80, TotalOrders: 2, LastUpdated: "2026-10-15T12:00:00.000Z", Version: 1}, it)
	assert.Equal(t, "attribute_not_exists(#version) OR #version = :expected", *ddb.puts[0].ConditionExpression)
}

func TestRevenueCounterDynamoRepository_OverwriteGuardedByVersion(t *testing.T) {
	var stored int64 = 5
	ddb := &fakeDynamoDB{}
	ddb.putItem = func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		expected := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value
		if expected != strconv.FormatInt(stored, 10) {
			return nil, &types.ConditionalCheckFailedException{}
		}
		stored++
		return &dynamodb.PutItemOutput{}, nil
	}
	repo := NewRevenueCounterDynamoRepository(ddb)
	c := entities.RevenueCounter{ShopID: "shop-1", TotalRevenue: 80, TotalOrders: 2, LastUpdated: repoNow}

	// An increment landed after version 4 was read.
	err := repo.Overwrite(context.Background(), c, 4)
	assert.ErrorIs(t, err, interfaces.ErrCounterChanged)

	require.NoError(t, repo.Overwrite(context.Background(), c, 5))
	assert.Equal(t, "#version = :expected", *ddb.puts[1].ConditionExpression)
	assert.Equal(t, int64(6), stored)
}
