package streams

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"shop_orders/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPollInterval = time.Second
	shardRefreshPolls   = 10
	maxRetryBackoff     = 30 * time.Second
)

var ErrStreamNotEnabled = errors.New("orders table has no stream enabled")

// StreamsAPI is the subset of *dynamodbstreams.Client the consumer needs.
type StreamsAPI interface {
	DescribeStream(ctx context.Context, in *dynamodbstreams.DescribeStreamInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.DescribeStreamOutput, error)
	GetShardIterator(ctx context.Context, in *dynamodbstreams.GetShardIteratorInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetShardIteratorOutput, error)
	GetRecords(ctx context.Context, in *dynamodbstreams.GetRecordsInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetRecordsOutput, error)
}

var _ StreamsAPI = (*dynamodbstreams.Client)(nil)

// DescribeTableAPI resolves the stream ARN of a table.
type DescribeTableAPI interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// OrderChangeHandler reacts to one write on the orders table.
type OrderChangeHandler func(ctx context.Context, change entities.OrderChange) error

// OrderDecoder turns a table image into an Order.
type OrderDecoder func(item map[string]ddbtypes.AttributeValue) (entities.Order, error)

// OrderStreamConsumer tails the orders table stream and fans every change out
// to the registered handlers. Shards are read concurrently; records within a
// shard are delivered in order.
type OrderStreamConsumer struct {
	api          StreamsAPI
	streamARN    string
	decode       OrderDecoder
	handlers     map[string]OrderChangeHandler
	pollInterval time.Duration

	// refreshInterval is how often the shard list is re-read.
	refreshInterval time.Duration
}

func NewOrderStreamConsumer(api StreamsAPI, streamARN string, decode OrderDecoder, pollInterval time.Duration) *OrderStreamConsumer {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &OrderStreamConsumer{
		api:             api,
		streamARN:       streamARN,
		decode:          decode,
		handlers:        map[string]OrderChangeHandler{},
		pollInterval:    pollInterval,
		refreshInterval: shardRefreshPolls * pollInterval,
	}
}

// Register adds a named handler. Names only appear in logs.
func (c *OrderStreamConsumer) Register(name string, h OrderChangeHandler) {
	c.handlers[name] = h
}

// ResolveStreamARN reads the latest stream ARN of table.
func ResolveStreamARN(ctx context.Context, api DescribeTableAPI, table string) (string, error) {
	out, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err != nil {
		return "", err
	}
	if out.Table == nil || out.Table.LatestStreamArn == nil || *out.Table.LatestStreamArn == "" {
		return "", ErrStreamNotEnabled
	}
	return *out.Table.LatestStreamArn, nil
}

// shardCursor is the read position of one shard. start is used until a
// record has been handled; after that reads resume after lastSeq.
type shardCursor struct {
	id      string
	start   types.ShardIteratorType
	lastSeq string
}

// Run blocks until ctx is cancelled. The first generation of shards is read
// from LATEST; shards discovered later are read from TRIM_HORIZON. A child
// shard waits until its parent has been read to the end. A failing shard is
// retried from its last handled record and never stops its siblings.
func (c *OrderStreamConsumer) Run(ctx context.Context) error {
	log.Printf("[order][stream] consumer started stream_arn=%s handlers=%d", c.streamARN, len(c.handlers))
	var g errgroup.Group
	done := map[string]chan struct{}{}
	iteratorType := types.ShardIteratorTypeLatest

	for ctx.Err() == nil {
		shards, err := c.openShards(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Printf("[order][stream] describe stream failed err=%v", err)
			c.sleep(ctx, c.refreshInterval)
			continue
		}

		var fresh []types.Shard
		for _, sh := range shards {
			id := aws.ToString(sh.ShardId)
			if _, ok := done[id]; ok {
				continue
			}
			done[id] = make(chan struct{})
			fresh = append(fresh, sh)
		}
		for _, sh := range fresh {
			cur := &shardCursor{id: aws.ToString(sh.ShardId), start: iteratorType}
			parentDone := done[aws.ToString(sh.ParentShardId)]
			if parentDone != nil {
				cur.start = types.ShardIteratorTypeTrimHorizon
			}
			finished := done[cur.id]
			g.Go(func() error {
				c.superviseShard(ctx, cur, parentDone, finished)
				return nil
			})
		}

		iteratorType = types.ShardIteratorTypeTrimHorizon
		c.sleep(ctx, c.refreshInterval)
	}

	_ = g.Wait()
	log.Printf("[order][stream] consumer stopped")
	return nil
}

// superviseShard reads one shard until it closes or ctx is done, retrying
// after every failure.
func (c *OrderStreamConsumer) superviseShard(ctx context.Context, cur *shardCursor, parentDone <-chan struct{}, finished chan<- struct{}) {
	defer close(finished)
	if parentDone != nil {
		select {
		case <-ctx.Done():
			return
		case <-parentDone:
		}
	}

	backoff := c.pollInterval
	for ctx.Err() == nil {
		err := c.consumeShard(ctx, cur)
		if err == nil {
			return
		}
		log.Printf("[order][stream] shard worker failed shard_id=%s last_seq=%s retry_in=%s err=%v", cur.id, cur.lastSeq, backoff, err)
		c.sleep(ctx, backoff)
		if backoff *= 2; backoff > maxRetryBackoff {
			backoff = maxRetryBackoff
		}
	}
}

func (c *OrderStreamConsumer) openShards(ctx context.Context) ([]types.Shard, error) {
	var (
		open []types.Shard
		last *string
	)
	for {
		out, err := c.api.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{
			StreamArn:             aws.String(c.streamARN),
			ExclusiveStartShardId: last,
		})
		if err != nil {
			return nil, err
		}
		if out.StreamDescription == nil {
			return open, nil
		}
		for _, s := range out.StreamDescription.Shards {
			if s.ShardId == nil {
				continue
			}
			if s.SequenceNumberRange != nil && s.SequenceNumberRange.EndingSequenceNumber != nil {
				continue
			}
			open = append(open, s)
		}
		last = out.StreamDescription.LastEvaluatedShardId
		if last == nil {
			return open, nil
		}
	}
}

// consumeShard returns nil once the shard is closed or ctx is done.
func (c *OrderStreamConsumer) consumeShard(ctx context.Context, cur *shardCursor) error {
	iterator, err := c.resumeIterator(ctx, cur)
	if err != nil {
		return fmt.Errorf("shard %s iterator: %w", cur.id, err)
	}

	for iterator != nil && ctx.Err() == nil {
		out, err := c.api.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{ShardIterator: iterator})
		if err != nil {
			var expired *types.ExpiredIteratorException
			if errors.As(err, &expired) {
				if iterator, err = c.resumeIterator(ctx, cur); err != nil {
					return fmt.Errorf("shard %s iterator refresh: %w", cur.id, err)
				}
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("shard %s records: %w", cur.id, err)
		}

		for _, rec := range out.Records {
			c.handleRecord(ctx, rec)
			if rec.Dynamodb != nil && rec.Dynamodb.SequenceNumber != nil {
				cur.lastSeq = *rec.Dynamodb.SequenceNumber
			}
		}

		iterator = out.NextShardIterator
		if len(out.Records) == 0 && iterator != nil {
			c.sleep(ctx, c.pollInterval)
		}
	}
	if iterator == nil {
		log.Printf("[order][stream] shard closed shard_id=%s", cur.id)
	}
	return nil
}

// resumeIterator opens the shard right after the last handled record, or at
// the shard's start position when nothing was handled yet. A LATEST shard is
// never reopened at TRIM_HORIZON; the revenue counter's ADD is not idempotent.
func (c *OrderStreamConsumer) resumeIterator(ctx context.Context, cur *shardCursor) (*string, error) {
	if cur.lastSeq != "" {
		return c.shardIterator(ctx, cur.id, types.ShardIteratorTypeAfterSequenceNumber, cur.lastSeq)
	}
	return c.shardIterator(ctx, cur.id, cur.start, "")
}

func (c *OrderStreamConsumer) shardIterator(ctx context.Context, shardID string, it types.ShardIteratorType, afterSeq string) (*string, error) {
	in := &dynamodbstreams.GetShardIteratorInput{
		StreamArn:         aws.String(c.streamARN),
		ShardId:           aws.String(shardID),
		ShardIteratorType: it,
	}
	if afterSeq != "" {
		in.SequenceNumber = aws.String(afterSeq)
	}
	out, err := c.api.GetShardIterator(ctx, in)
	if err != nil {
		return nil, err
	}
	return out.ShardIterator, nil
}

func (c *OrderStreamConsumer) handleRecord(ctx context.Context, rec types.Record) {
	change, err := c.toChange(rec)
	if err != nil {
		log.Printf("[order][stream] decode failed event=%s err=%v", rec.EventName, err)
		return
	}
	if change.Before == nil && change.After == nil {
		return
	}

	for name, h := range c.handlers {
		if err := h(ctx, change); err != nil {
			log.Printf("[order][stream] handler failed handler=%s shop_id=%s err=%v", name, change.ShopID(), err)
		}
	}
}

func (c *OrderStreamConsumer) toChange(rec types.Record) (entities.OrderChange, error) {
	if rec.Dynamodb == nil {
		return entities.OrderChange{}, nil
	}
	before, err := c.image(rec.Dynamodb.OldImage)
	if err != nil {
		return entities.OrderChange{}, err
	}
	after, err := c.image(rec.Dynamodb.NewImage)
	if err != nil {
		return entities.OrderChange{}, err
	}
	return entities.OrderChange{Before: before, After: after}, nil
}

func (c *OrderStreamConsumer) image(img map[string]types.AttributeValue) (*entities.Order, error) {
	if len(img) == 0 {
		return nil, nil
	}
	item, err := attributevalue.FromDynamoDBStreamsMap(img)
	if err != nil {
		return nil, err
	}
	o, err := c.decode(item)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *OrderStreamConsumer) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
