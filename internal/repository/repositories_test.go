package repository

import (
	"context"
	"testing"
	"time"
)

func TestStoreContextIgnoresCallerCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())

	storeCtx, storeCancel := storeContext(parent, 0)
	defer storeCancel()

	cancel()

	select {
	case <-storeCtx.Done():
		t.Fatal("store context must survive caller cancellation")
	default:
	}
}

func TestStoreContextAppliesQueryTimeout(t *testing.T) {
	storeCtx, storeCancel := storeContext(context.Background(), 30*time.Second)
	defer storeCancel()

	deadline, ok := storeCtx.Deadline()
	if !ok {
		t.Fatal("expected a deadline when a query timeout is configured")
	}
	if remaining := time.Until(deadline); remaining > 30*time.Second || remaining < 29*time.Second {
		t.Errorf("unexpected deadline distance: %v", remaining)
	}
}

func TestStoreContextNoTimeoutMeansNoDeadline(t *testing.T) {
	storeCtx, storeCancel := storeContext(context.Background(), 0)
	defer storeCancel()

	if _, ok := storeCtx.Deadline(); ok {
		t.Error("expected no deadline when no query timeout is configured")
	}
}
