package entities

// Monetary field names accepted on order documents, in precedence order.
// totalAmount is the current schema, totalPrice comes from the storefront app
// and price is the legacy single-item schema.
const (
	AmountFieldTotalPrice  = "totalPrice"
	AmountFieldTotalAmount = "totalAmount"
	AmountFieldPrice       = "price"
)

var amountFields = []string{AmountFieldTotalPrice, AmountFieldTotalAmount, AmountFieldPrice}

// ExtractAmount returns the monetary value of an order document.
//
// The first present field wins even when its value is not numeric; in that
// case, and when no field is present, the amount is 0.
func ExtractAmount(doc map[string]any) float64 {
	for _, field := range amountFields {
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		return toFloat(v)
	}
	return 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}
