package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"
	mock_interfaces "shop_orders/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func newTestOrderUseCase(repo interfaces.IOrderRepository, notifier interfaces.INotificationDispatcher, policy TransitionPolicy) *OrderUseCase {
	uc := NewOrderUseCase(repo, notifier, policy, time.Millisecond)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// runTx invokes the transaction callback against current the way the
// repository does and returns the resulting order.
func runTx(current entities.Order) func(context.Context, string, interfaces.OrderTxFunc) (entities.Order, error) {
	return func(_ context.Context, _ string, fn interfaces.OrderTxFunc) (entities.Order, error) {
		if current.ID == "" {
			return entities.Order{}, nil
		}
		m, err := fn(current)
		if err != nil {
			return entities.Order{}, err
		}
		out := current
		out.Status = m.Status
		if m.CompletedAt != nil {
			at := *m.CompletedAt
			out.CompletedAt = &at
		}
		if m.ClearCompletedAt {
			out.CompletedAt = nil
		}
		if m.CancelReason != nil {
			out.CancelReason = *m.CancelReason
		}
		return out, nil
	}
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil, PermissivePolicy())
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "order-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)

		o, err := uc.GetByID(context.Background(), " order-1 ")
		if err != nil || o.ID != "order-1" {
			t.Fatalf("unexpected result: %+v %v", o, err)
		}
	})
}

func TestOrderUseCase_ListByShop(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil, PermissivePolicy())
		if _, err := uc.ListByShop(context.Background(), "", ""); !errors.Is(err, ErrInvalidShopID) {
			t.Fatalf("expected ErrInvalidShopID, got %v", err)
		}
		if _, err := uc.ListByShop(context.Background(), "shop-1", "shipped"); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("pending sorted by createdAt desc", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		repo.EXPECT().ListByShop(gomock.Any(), "shop-1", entities.OrderStatusPending).Return([]entities.Order{
			{ID: "old", CreatedAt: fixedNow.Add(-2 * time.Hour)},
			{ID: "new", CreatedAt: fixedNow},
			{ID: "mid", CreatedAt: fixedNow.Add(-time.Hour)},
		}, nil)

		orders, err := uc.ListByShop(context.Background(), "shop-1", entities.OrderStatusPending)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orders[0].ID != "new" || orders[1].ID != "mid" || orders[2].ID != "old" {
			t.Fatalf("unexpected order: %v %v %v", orders[0].ID, orders[1].ID, orders[2].ID)
		}
	})

	t.Run("completed sorted by completedAt desc, missing last", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		early, late := fixedNow.Add(-time.Hour), fixedNow
		repo.EXPECT().ListByShop(gomock.Any(), "shop-1", entities.OrderStatusCompleted).Return([]entities.Order{
			{ID: "none", CreatedAt: fixedNow},
			{ID: "early", CreatedAt: fixedNow.Add(-time.Minute), CompletedAt: &early},
			{ID: "late", CreatedAt: fixedNow.Add(-48 * time.Hour), CompletedAt: &late},
		}, nil)

		orders, err := uc.ListByShop(context.Background(), "shop-1", entities.OrderStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orders[0].ID != "late" || orders[1].ID != "early" || orders[2].ID != "none" {
			t.Fatalf("unexpected order: %v %v %v", orders[0].ID, orders[1].ID, orders[2].ID)
		}
	})
}

func TestOrderUseCase_SubscribeByShop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := newTestOrderUseCase(repo, nil, PermissivePolicy())

	repo.EXPECT().ListByShop(gomock.Any(), "shop-1", entities.OrderStatusPending).
		Return([]entities.Order{{ID: "order-1", Status: entities.OrderStatusPending}}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := uc.SubscribeByShop(ctx, "shop-1", entities.OrderStatusPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := <-ch
	if len(first) != 1 || first[0].ID != "order-1" {
		t.Fatalf("unexpected snapshot: %+v", first)
	}
	cancel()
	for range ch {
	}
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil, PermissivePolicy())
		if _, err := uc.UpdateStatus(context.Background(), "", entities.OrderStatusReady); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
		if _, err := uc.UpdateStatus(context.Background(), "order-1", " "); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("permissive accepts jumps without completedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())

		repo.EXPECT().Update(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, m interfaces.OrderMutation) (entities.Order, error) {
				if m.Status != entities.OrderStatusReady || m.CompletedAt != nil || m.ClearCompletedAt || m.CancelReason != nil {
					t.Fatalf("unexpected mutation: %+v", m)
				}
				return entities.Order{ID: "order-1", Status: m.Status}, nil
			},
		)

		o, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusReady)
		if err != nil || o.Status != entities.OrderStatusReady {
			t.Fatalf("unexpected result: %+v %v", o, err)
		}
	})

	t.Run("permissive keeps unknown values verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())

		repo.EXPECT().Update(gomock.Any(), "order-1", interfaces.OrderMutation{Status: "on_hold"}).
			Return(entities.Order{ID: "order-1"}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "order-1", "on_hold"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("completed stamps completedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())

		repo.EXPECT().Update(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, m interfaces.OrderMutation) (entities.Order, error) {
				if m.CompletedAt == nil || !m.CompletedAt.Equal(fixedNow) {
					t.Fatalf("expected completedAt=%v, got %+v", fixedNow, m)
				}
				return entities.Order{ID: "order-1", Status: m.Status, CompletedAt: m.CompletedAt}, nil
			},
		)

		o, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusCompleted)
		if err != nil || !o.IsCompleted() || o.CompletedAt == nil {
			t.Fatalf("unexpected result: %+v %v", o, err)
		}
	})

	t.Run("mixed case completed is written canonically with completedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())

		repo.EXPECT().Update(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, m interfaces.OrderMutation) (entities.Order, error) {
				if m.Status != entities.OrderStatusCompleted {
					t.Fatalf("expected status written as %q, got %q", entities.OrderStatusCompleted, m.Status)
				}
				if m.CompletedAt == nil || !m.CompletedAt.Equal(fixedNow) {
					t.Fatalf("completed order written without completedAt: %+v", m)
				}
				// Read back the way the stream decoder and revenue queries do.
				return entities.Order{ID: "order-1", Status: entities.ParseOrderStatus(string(m.Status)), CompletedAt: m.CompletedAt}, nil
			},
		)

		o, err := uc.UpdateStatus(context.Background(), "order-1", " Completed ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.IsCompleted() || o.CompletedAt == nil {
			t.Fatalf("completed and completedAt disagree: %+v", o)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		repo.EXPECT().Update(gomock.Any(), "order-1", gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusReady)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repo error is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		repo.EXPECT().Update(gomock.Any(), "order-1", gomock.Any()).Return(entities.Order{}, errors.New("AccessDeniedException"))

		_, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusReady)
		if err == nil || err.Error() != "AccessDeniedException" {
			t.Fatalf("expected verbatim error, got %v", err)
		}
	})

	t.Run("strict rejects jumps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, StrictPolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(runTx(entities.Order{ID: "order-1", Status: entities.OrderStatusPending}))

		_, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusReady)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("strict rejects unknown values", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil, StrictPolicy())
		_, err := uc.UpdateStatus(context.Background(), "order-1", "on_hold")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("strict accepts forward move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, StrictPolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(runTx(entities.Order{ID: "order-1", Status: entities.OrderStatusPending}))

		o, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusConfirmed)
		if err != nil || o.Status != entities.OrderStatusConfirmed {
			t.Fatalf("unexpected result: %+v %v", o, err)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	t.Run("stamps reason and completedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())

		repo.EXPECT().Update(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, m interfaces.OrderMutation) (entities.Order, error) {
				return runTx(entities.Order{ID: id, Status: entities.OrderStatusPending})(context.Background(), id,
					func(entities.Order) (interfaces.OrderMutation, error) { return m, nil })
			},
		)

		o, err := uc.Cancel(context.Background(), "order-1", " out of stock ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusCancelled || o.CancelReason != "out of stock" {
			t.Fatalf("unexpected order: %+v", o)
		}
		if o.CompletedAt == nil || !o.CompletedAt.Equal(fixedNow) {
			t.Fatalf("expected completedAt stamped on cancel, got %v", o.CompletedAt)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil, PermissivePolicy())
		if _, err := uc.Cancel(context.Background(), "", "x"); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		repo.EXPECT().Update(gomock.Any(), "order-1", gomock.Any()).Return(entities.Order{}, nil)

		if _, err := uc.Cancel(context.Background(), "order-1", "x"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("strict rejects terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, StrictPolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(runTx(entities.Order{ID: "order-1", Status: entities.OrderStatusCompleted}))

		if _, err := uc.Cancel(context.Background(), "order-1", "x"); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestOrderUseCase_MarkCompleted(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil, PermissivePolicy())
		if _, err := uc.MarkCompleted(context.Background(), "", "order-1"); !errors.Is(err, ErrInvalidShopID) {
			t.Fatalf("expected ErrInvalidShopID, got %v", err)
		}
		if _, err := uc.MarkCompleted(context.Background(), "shop-1", ""); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("completes and notifies after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestOrderUseCase(repo, notifier, PermissivePolicy())

		current := entities.Order{ID: "order-1", ShopID: "shop-1", CustomerID: "user-1", TotalAmount: 100, Status: entities.OrderStatusPending}
		commit := repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(runTx(current))
		notifier.EXPECT().DispatchOrderCompleted(gomock.Any(), gomock.Any()).Do(func(_ context.Context, o entities.Order) {
			if o.CustomerID != "user-1" || !o.IsCompleted() {
				t.Fatalf("unexpected notified order: %+v", o)
			}
		}).After(commit)

		o, err := uc.MarkCompleted(context.Background(), "shop-1", "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusCompleted || o.CompletedAt == nil || !o.CompletedAt.Equal(fixedNow) {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("order missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestOrderUseCase(repo, notifier, PermissivePolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(runTx(entities.Order{}))

		if _, err := uc.MarkCompleted(context.Background(), "shop-1", "order-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order of another shop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestOrderUseCase(repo, notifier, PermissivePolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(runTx(entities.Order{ID: "order-1", ShopID: "shop-2"}))

		if _, err := uc.MarkCompleted(context.Background(), "shop-1", "order-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("transaction failure skips notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestOrderUseCase(repo, notifier, PermissivePolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			Return(entities.Order{}, interfaces.ErrConcurrentModification)

		if _, err := uc.MarkCompleted(context.Background(), "shop-1", "order-1"); !errors.Is(err, interfaces.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("works without notifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(runTx(entities.Order{ID: "order-1", ShopID: "shop-1"}))

		if _, err := uc.MarkCompleted(context.Background(), "shop-1", "order-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_UndoCompletion(t *testing.T) {
	t.Run("restores pending and clears completedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		completedAt := fixedNow.Add(-time.Hour)
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(runTx(entities.Order{ID: "order-1", Status: entities.OrderStatusCompleted, CompletedAt: &completedAt}))

		o, err := uc.UndoCompletion(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusPending || o.CompletedAt != nil {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("idempotent on pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, StrictPolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(runTx(entities.Order{ID: "order-1", Status: entities.OrderStatusPending}))

		o, err := uc.UndoCompletion(context.Background(), "order-1")
		if err != nil || o.Status != entities.OrderStatusPending || o.CompletedAt != nil {
			t.Fatalf("unexpected result: %+v %v", o, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, PermissivePolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(runTx(entities.Order{}))

		if _, err := uc.UndoCompletion(context.Background(), "order-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("strict rejects cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, StrictPolicy())
		repo.EXPECT().RunInTransaction(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(runTx(entities.Order{ID: "order-1", Status: entities.OrderStatusCancelled}))

		if _, err := uc.UndoCompletion(context.Background(), "order-1"); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}
