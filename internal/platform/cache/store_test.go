package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Set(ctx, "ranking:t1", []int{1, 2})
	if _, ok := s.Get(ctx, "ranking:t1"); !ok {
		t.Fatal("expected cached value")
	}

	s.Delete(ctx, "ranking:t1")
	if _, ok := s.Get(ctx, "ranking:t1"); ok {
		t.Fatal("expected value gone after delete")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Set(ctx, "ranking:t1", 1)
	s.Set(ctx, "ranking:t2", 2)
	s.Set(ctx, "pelada:list", 3)

	s.DeletePrefix(ctx, "ranking:")

	if _, ok := s.Get(ctx, "ranking:t1"); ok {
		t.Fatal("ranking:t1 should be evicted")
	}
	if _, ok := s.Get(ctx, "ranking:t2"); ok {
		t.Fatal("ranking:t2 should be evicted")
	}
	if _, ok := s.Get(ctx, "pelada:list"); !ok {
		t.Fatal("pelada:list should survive")
	}
}

func TestStore_GetOrLoad(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "computed", nil
	}

	for i := 0; i < 3; i++ {
		v, err := s.GetOrLoad(ctx, "key", loader)
		if err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
		if v != "computed" {
			t.Fatalf("unexpected value: %v", v)
		}
	}

	if loads != 1 {
		t.Fatalf("loader ran %d times, want 1", loads)
	}
}

func TestStore_GetOrLoadPropagatesError(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	wantErr := errors.New("boom")
	_, err := s.GetOrLoad(ctx, "key", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected load error, got %v", err)
	}

	if _, ok := s.Get(ctx, "key"); ok {
		t.Fatal("failed load must not be cached")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore(10 * time.Millisecond)

	s.Set(ctx, "key", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := s.Get(ctx, "key"); ok {
		t.Fatal("expected entry to expire")
	}
}
