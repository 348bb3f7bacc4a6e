package repository

import (
	"testing"
	"time"

	"shop_orders/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func avS(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }
func avN(v string) types.AttributeValue { return &types.AttributeValueMemberN{Value: v} }

func TestOrderFromItem_FullDocument(t *testing.T) {
	item := map[string]types.AttributeValue{
		"id":            avS("order-1"),
		"shopId":        avS("shop-1"),
		"userId":        avS("user-1"),
		"userName":      avS("Ana"),
		"customerPhone": avS("+5511999999999"),
		"totalPrice":    avN("42.5"),
		"totalAmount":   avN("99"),
		"quantity":      avN("3"),
		"status":        avS("completed"),
		"createdAt":     avS("2026-10-14T09:00:00.000Z"),
		"completedAt":   avS("2026-10-15T10:30:00.250Z"),
		"deliveryType":  avS("pickup"),
		"items": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"productId": avS("p-1"),
				"name":      avS("Bolo"),
				"quantity":  avN("2"),
				"price":     avN("10"),
				"total":     avN("20"),
			}},
			avS("garbage"),
		}},
		"address": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"street": avS("Rua A"),
			"number": avS("10"),
			"city":   avS("Recife"),
		}},
	}

	o, err := OrderFromItem(item)
	require.NoError(t, err)

	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, "shop-1", o.ShopID)
	assert.Equal(t, "user-1", o.CustomerID)
	assert.Equal(t, "Ana", o.CustomerName)
	assert.Equal(t, 42.5, o.TotalAmount)
	assert.Equal(t, 3, o.Quantity)
	assert.Equal(t, entities.OrderStatusCompleted, o.Status)
	assert.Equal(t, time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), o.CreatedAt)
	require.NotNil(t, o.CompletedAt)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 30, 0, 250_000_000, time.UTC), *o.CompletedAt)
	assert.Equal(t, "Rua A, 10, Recife", o.Address)
	require.Len(t, o.Items, 1)
	assert.Equal(t, entities.OrderItem{ProductID: "p-1", Name: "Bolo", Quantity: 2, UnitPrice: 10, LineTotal: 20}, o.Items[0])
}

func TestOrderFromItem_Defensive(t *testing.T) {
	item := map[string]types.AttributeValue{
		"id":           avS("order-2"),
		"customerId":   avS("cust-9"),
		"customerName": avS("Bia"),
		"price":        avN("7"),
		"status":       avS("shipped"),
		"createdAt":    avS("not a date"),
		"completedAt":  avS(""),
		"quantity":     avS("x"),
	}

	o, err := OrderFromItem(item)
	require.NoError(t, err)

	assert.Equal(t, "", o.ShopID)
	assert.Equal(t, "cust-9", o.CustomerID)
	assert.Equal(t, "Bia", o.CustomerName)
	assert.Equal(t, 7.0, o.TotalAmount)
	assert.Equal(t, 0, o.Quantity)
	assert.Equal(t, entities.OrderStatusPending, o.Status)
	assert.True(t, o.CreatedAt.IsZero())
	assert.Nil(t, o.CompletedAt)
	assert.Nil(t, o.Items)
}

func TestOrderFromItem_AmountPrecedence(t *testing.T) {
	// A present but non-numeric totalPrice still wins over totalAmount.
	o, err := OrderFromItem(map[string]types.AttributeValue{
		"id":          avS("order-3"),
		"totalPrice":  avS("12.00"),
		"totalAmount": avN("12"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, o.TotalAmount)
}

func TestTimeField_EpochMillis(t *testing.T) {
	got := timeField(float64(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC).UnixMilli()))
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), got)
	assert.True(t, timeField(float64(0)).IsZero())
	assert.True(t, timeField(true).IsZero())
}

func TestFormatTimestamp_FixedWidth(t *testing.T) {
	a := formatTimestamp(time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC))
	b := formatTimestamp(time.Date(2026, 10, 15, 10, 0, 0, 500_000_000, time.UTC))
	assert.Equal(t, "2026-10-15T10:00:00.000Z", a)
	assert.Less(t, a, b)
}
