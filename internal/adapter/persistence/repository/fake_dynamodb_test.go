package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamoDB records requests and answers through per-call hooks.
type fakeDynamoDB struct {
	getItem    func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)

	updates []*dynamodb.UpdateItemInput
	puts    []*dynamodb.PutItemInput
	queries []*dynamodb.QueryInput
	gets    int
}

var _ DynamoDBAPI = (*fakeDynamoDB)(nil)

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets++
	if f.getItem == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getItem(in)
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putItem == nil {
		return &dynamodb.PutItemOutput{}, nil
	}
	return f.putItem(in)
}

func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateItem == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateItem(in)
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.query == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.query(in)
}

func (f *fakeDynamoDB) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scan == nil {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.scan(in)
}
