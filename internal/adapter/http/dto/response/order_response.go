package response

import (
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase"
)

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	ShopID        string              `json:"shop_id"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   float64             `json:"total_amount"`
	Quantity      int                 `json:"quantity"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CancelReason  string              `json:"cancel_reason,omitempty"`
	DeliveryType  string              `json:"delivery_type,omitempty"`
	Address       string              `json:"address,omitempty"`
	NextStatuses  []string            `json:"next_statuses"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		ShopID:        o.ShopID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		Quantity:      o.Quantity,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		CompletedAt:   o.CompletedAt,
		Notes:         o.Notes,
		CancelReason:  o.CancelReason,
		DeliveryType:  o.DeliveryType,
		Address:       o.Address,
		NextStatuses:  nextStatuses(o.Status),
	}
}

func nextStatuses(s entities.OrderStatus) []string {
	next := usecase.NextStatuses(s)
	out := make([]string, 0, len(next))
	for _, n := range next {
		out = append(out, string(n))
	}
	return out
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
