package repository

import (
	"strconv"
	"strings"
	"time"

	"shop_orders/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Order documents are written by several clients (storefront, dashboard,
// legacy imports) so fields are read loosely: missing strings decode to "",
// missing numbers to 0, bad timestamps to the zero time and unknown statuses
// to pending.
const (
	attrID            = "id"
	attrShopID        = "shopId"
	attrUserID        = "userId"
	attrCustomerID    = "customerId"
	attrUserName      = "userName"
	attrCustomerName  = "customerName"
	attrCustomerPhone = "customerPhone"
	attrItems         = "items"
	attrQuantity      = "quantity"
	attrStatus        = "status"
	attrCreatedAt     = "createdAt"
	attrCompletedAt   = "completedAt"
	attrUpdatedAt     = "updatedAt"
	attrNotes         = "notes"
	attrCancelReason  = "cancelReason"
	attrDeliveryType  = "deliveryType"
	attrAddress       = "address"
)

// OrderFromItem decodes a raw orders table item. The stream consumer uses it
// for old and new images.
func OrderFromItem(item map[string]types.AttributeValue) (entities.Order, error) {
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return entities.Order{}, err
	}
	return orderFromDocument(doc), nil
}

func orderFromDocument(doc map[string]any) entities.Order {
	o := entities.Order{
		ID:            stringField(doc, attrID),
		ShopID:        stringField(doc, attrShopID),
		CustomerID:    firstString(doc, attrUserID, attrCustomerID),
		CustomerName:  firstString(doc, attrUserName, attrCustomerName),
		CustomerPhone: stringField(doc, attrCustomerPhone),
		Items:         itemsField(doc[attrItems]),
		TotalAmount:   entities.ExtractAmount(doc),
		Quantity:      intField(doc, attrQuantity),
		Status:        entities.ParseOrderStatus(stringField(doc, attrStatus)),
		CreatedAt:     timeField(doc[attrCreatedAt]),
		Notes:         stringField(doc, attrNotes),
		CancelReason:  stringField(doc, attrCancelReason),
		DeliveryType:  stringField(doc, attrDeliveryType),
		Address:       addressField(doc[attrAddress]),
	}
	if at := timeField(doc[attrCompletedAt]); !at.IsZero() {
		o.CompletedAt = &at
	}
	return o
}

func itemsField(v any) []entities.OrderItem {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]entities.OrderItem, 0, len(list))
	for _, raw := range list {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, entities.OrderItem{
			ProductID: stringField(m, "productId"),
			Name:      stringField(m, "name"),
			Quantity:  intField(m, "quantity"),
			UnitPrice: numberField(m, "price"),
			LineTotal: numberField(m, "total"),
		})
	}
	return items
}

// addressField accepts either a plain string or a structured address map.
func addressField(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case map[string]any:
		parts := make([]string, 0, 4)
		for _, k := range []string{"street", "number", "district", "city"} {
			if s := stringField(a, k); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

func stringField(doc map[string]any, key string) string {
	switch v := doc[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func firstString(doc map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringField(doc, k); s != "" {
			return s
		}
	}
	return ""
}

func numberField(doc map[string]any, key string) float64 {
	switch v := doc[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func intField(doc map[string]any, key string) int {
	return int(numberField(doc, key))
}

func boolField(doc map[string]any, key string) bool {
	b, _ := doc[key].(bool)
	return b
}

// timeField parses RFC 3339 strings and epoch milliseconds.
func timeField(v any) time.Time {
	switch t := v.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(t))
		if err != nil {
			return time.Time{}
		}
		return parsed.UTC()
	case float64:
		if t <= 0 {
			return time.Time{}
		}
		return time.UnixMilli(int64(t)).UTC()
	default:
		return time.Time{}
	}
}
