package task

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultReconcileTimeout = 10 * time.Minute

// RevenueReconciler rebuilds the persisted revenue counters.
type RevenueReconciler interface {
	ReconcileAll(ctx context.Context) error
}

// RevenueReconcileTask periodically overwrites every shop's revenue counter
// with the sum of its completed orders, repairing drift left by missed or
// duplicated trigger deliveries.
type RevenueReconcileTask struct {
	reconciler RevenueReconciler
	schedule   string
	timeout    time.Duration
	Cron       *cron.Cron

	mu      sync.Mutex
	running bool
}

func NewRevenueReconcileTask(reconciler RevenueReconciler, schedule string) *RevenueReconcileTask {
	return &RevenueReconcileTask{
		reconciler: reconciler,
		schedule:   schedule,
		timeout:    defaultReconcileTimeout,
		Cron:       cron.New(cron.WithSeconds()),
	}
}

func (t *RevenueReconcileTask) Start() error {
	if _, err := t.Cron.AddFunc(t.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		t.RunOnce(ctx)
	}); err != nil {
		log.Printf("[revenue][task] invalid schedule %q err=%v", t.schedule, err)
		return err
	}

	t.Cron.Start()
	log.Printf("[revenue][task] reconcile scheduled at %q", t.schedule)
	return nil
}

// Stop waits for a running reconciliation to finish or ctx to expire.
func (t *RevenueReconcileTask) Stop(ctx context.Context) {
	stopped := t.Cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
}

// RunOnce reconciles all shops unless a previous run is still going. It
// reports whether a run happened.
func (t *RevenueReconcileTask) RunOnce(ctx context.Context) bool {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		log.Printf("[revenue][task] previous reconcile still running; skipping")
		return false
	}
	t.running = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
	}()

	start := time.Now()
	log.Printf("[revenue][task] reconcile start")
	if err := t.reconciler.ReconcileAll(ctx); err != nil {
		log.Printf("[revenue][task] reconcile finished with errors elapsed=%s err=%v", time.Since(start), err)
		return true
	}
	log.Printf("[revenue][task] reconcile done elapsed=%s", time.Since(start))
	return true
}
