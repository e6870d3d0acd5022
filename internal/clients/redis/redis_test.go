package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/events"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

func testClientAddr(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	return addr
}

func TestCacheStore(t *testing.T) {
	ctx := context.Background()
	rdb, err := NewClient(ctx, testClientAddr(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer rdb.Close()

	store := NewCacheStore(rdb, "test:"+uuid.NewString()+":")
	if _, ok, err := store.Get(ctx, "cache:occupations:all"); err != nil || ok {
		t.Fatalf("Get(missing)=%v,%v, want miss", ok, err)
	}
	if err := store.Set(ctx, "cache:occupations:all", []byte(`{"a":1}`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "cache:careers:all", []byte(`[]`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	raw, ok, err := store.Get(ctx, "cache:occupations:all")
	if err != nil || !ok || string(raw) != `{"a":1}` {
		t.Fatalf("Get=%q,%v,%v", raw, ok, err)
	}
	if err := store.DeletePrefix(ctx, "cache:occupations:"); err != nil {
		t.Fatalf("DeletePrefix: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "cache:occupations:all"); ok {
		t.Fatalf("DeletePrefix left occupations key")
	}
	if _, ok, _ := store.Get(ctx, "cache:careers:all"); !ok {
		t.Fatalf("DeletePrefix removed an unrelated key")
	}
	if err := store.Delete(ctx, "cache:careers:all"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestBusRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rdb, err := NewClient(ctx, testClientAddr(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	b, err := NewBus(logger.Nop(), rdb, "test."+uuid.NewString(), true)
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	defer b.Close()

	got := make(chan events.Event, 1)
	if err := b.StartForwarder(ctx, func(ev events.Event) { got <- ev }); err != nil {
		t.Fatalf("StartForwarder: %v", err)
	}
	ev, err := events.New(events.TypeBookingCreated, "3", map[string]string{"date": "2025-06-01"})
	if err != nil {
		t.Fatalf("events.New: %v", err)
	}
	if err := b.Publish(ctx, ev); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	select {
	case recv := <-got:
		if recv.Type != events.TypeBookingCreated || recv.Key != "3" {
			t.Fatalf("received %+v", recv)
		}
	case <-ctx.Done():
		t.Fatalf("no event received")
	}
}
