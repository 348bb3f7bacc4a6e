package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeReconciler struct {
	calls   atomic.Int32
	block   chan struct{}
	entered chan struct{}
	err     error
}

func (f *fakeReconciler) ReconcileAll(context.Context) error {
	f.calls.Add(1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	return f.err
}

func TestRevenueReconcileTask_RunOnce(t *testing.T) {
	r := &fakeReconciler{err: errors.New("shop-2 failed")}
	task := NewRevenueReconcileTask(r, "0 0 3 * * *")

	if !task.RunOnce(context.Background()) {
		t.Fatalf("expected run")
	}
	if r.calls.Load() != 1 {
		t.Fatalf("expected 1 call, got %d", r.calls.Load())
	}
}

func TestRevenueReconcileTask_SkipsOverlappingRuns(t *testing.T) {
	r := &fakeReconciler{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	task := NewRevenueReconcileTask(r, "0 0 3 * * *")

	done := make(chan bool, 1)
	go func() { done <- task.RunOnce(context.Background()) }()

	select {
	case <-r.entered:
	case <-time.After(time.Second):
		t.Fatalf("first run did not start")
	}

	if task.RunOnce(context.Background()) {
		t.Fatalf("expected overlapping run to be skipped")
	}
	close(r.block)
	if !<-done {
		t.Fatalf("expected first run to report true")
	}
	if r.calls.Load() != 1 {
		t.Fatalf("expected 1 call, got %d", r.calls.Load())
	}
}

func TestRevenueReconcileTask_StartRejectsBadSchedule(t *testing.T) {
	task := NewRevenueReconcileTask(&fakeReconciler{}, "not a cron")
	if err := task.Start(); err == nil {
		t.Fatalf("expected invalid schedule error")
	}
}

func TestRevenueReconcileTask_StartStop(t *testing.T) {
	task := NewRevenueReconcileTask(&fakeReconciler{}, "0 0 3 * * *")
	if err := task.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(task.Cron.Entries()) != 1 {
		t.Fatalf("expected one scheduled entry")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	task.Stop(ctx)
}
