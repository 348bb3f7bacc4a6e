package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"
)

const defaultNotificationTimeout = 10 * time.Second

var ErrPushGatewayNotConfigured = errors.New("push gateway not configured")

// NotificationUseCase resolves device tokens and hands push notifications to
// the gateway.
//
// Dispatches are best-effort: they run detached from the request that caused
// them and their failures are only logged.
type NotificationUseCase struct {
	users   interfaces.IUserRepository
	shops   interfaces.IShopRepository
	gateway interfaces.IPushGateway
	timeout time.Duration

	wg sync.WaitGroup
}

var _ interfaces.INotificationDispatcher = (*NotificationUseCase)(nil)

func NewNotificationUseCase(users interfaces.IUserRepository, shops interfaces.IShopRepository, gateway interfaces.IPushGateway, timeout time.Duration) *NotificationUseCase {
	if timeout <= 0 {
		timeout = defaultNotificationTimeout
	}
	return &NotificationUseCase{users: users, shops: shops, gateway: gateway, timeout: timeout}
}

// DispatchOrderCompleted notifies the customer of a completed order without
// blocking the caller.
func (u *NotificationUseCase) DispatchOrderCompleted(ctx context.Context, order entities.Order) {
	if strings.TrimSpace(order.CustomerID) == "" {
		log.Printf("[notification][usecase] order has no customer; skipping order_id=%s", order.ID)
		return
	}
	u.dispatch(ctx, order.CustomerID, orderCompletedNotification(order))
}

// OnOrderWritten notifies the shop owner when a new order is placed.
func (u *NotificationUseCase) OnOrderWritten(ctx context.Context, change entities.OrderChange) error {
	if !change.IsInsert() {
		return nil
	}
	order := *change.After
	if u.shops == nil {
		return nil
	}
	shop, err := u.shops.GetByID(ctx, order.ShopID)
	if err != nil {
		return err
	}
	if shop.ID == "" || shop.OwnerID == "" {
		log.Printf("[notification][usecase] shop owner unknown; skipping new-order push shop_id=%s order_id=%s", order.ShopID, order.ID)
		return nil
	}
	u.dispatch(ctx, shop.OwnerID, newOrderNotification(order))
	return nil
}

// Notify sends n to the registered device of userID. A user without a token
// is not an error and results in no send attempt.
func (u *NotificationUseCase) Notify(ctx context.Context, userID string, n entities.PushNotification) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil
	}
	if u.users == nil || u.gateway == nil {
		return ErrPushGatewayNotConfigured
	}

	token, err := u.users.GetFCMToken(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolve device token: %w", err)
	}
	if token == "" {
		log.Printf("[notification][usecase] no device token user_id=%s", userID)
		return nil
	}
	return u.gateway.Send(ctx, token, n)
}

// Wait blocks until every in-flight dispatch has finished.
func (u *NotificationUseCase) Wait() {
	u.wg.Wait()
}

func (u *NotificationUseCase) dispatch(ctx context.Context, userID string, n entities.PushNotification) {
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeout)
		defer cancel()

		if err := u.Notify(sendCtx, userID, n); err != nil {
			log.Printf("[notification][usecase] push failed user_id=%s type=%s err=%v", userID, n.Data["type"], err)
			return
		}
		log.Printf("[notification][usecase] push done user_id=%s type=%s", userID, n.Data["type"])
	}()
}

func orderCompletedNotification(o entities.Order) entities.PushNotification {
	return entities.PushNotification{
		Title: "Your order is complete",
		Body:  fmt.Sprintf("Order %s has been completed. Thank you!", shortID(o.ID)),
		Data: map[string]string{
			"type":    entities.NotificationTypeOrderCompleted,
			"orderId": o.ID,
			"shopId":  o.ShopID,
			"status":  string(entities.OrderStatusCompleted),
		},
	}
}

func newOrderNotification(o entities.Order) entities.PushNotification {
	body := fmt.Sprintf("Order %s is waiting for confirmation", shortID(o.ID))
	if o.CustomerName != "" {
		body = fmt.Sprintf("%s placed order %s", o.CustomerName, shortID(o.ID))
	}
	return entities.PushNotification{
		Title: "New order",
		Body:  body,
		Data: map[string]string{
			"type":    entities.NotificationTypeNewOrder,
			"orderId": o.ID,
			"shopId":  o.ShopID,
			"status":  string(o.Status),
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
