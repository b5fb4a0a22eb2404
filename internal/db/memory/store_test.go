package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/dateformat/internal/db"
)

func TestHash_SetGetMerge(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.HSet(ctx, "k", map[string]string{"a": "1", "b": "2"}); err != nil {
		t.Fatal(err)
	}
	if err := s.HSet(ctx, "k", map[string]string{"b": "3"}); err != nil {
		t.Fatal(err)
	}
	got, err := s.HGetAll(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"a": "1", "b": "3"}, got); diff != "" {
		t.Errorf("HGetAll mismatch (-want +got):\n%s", diff)
	}

	got["a"] = "mutated"
	again, _ := s.HGetAll(ctx, "k")
	if again["a"] != "1" {
		t.Error("HGetAll returned internal map")
	}
}

func TestHGetAll_Missing(t *testing.T) {
	got, err := NewStore().HGetAll(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestHGetAllMulti(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_ = s.HSet(ctx, "k1", map[string]string{"f": "a"})
	_ = s.HSet(ctx, "k2", map[string]string{"f": "b"})

	got, err := s.HGetAllMulti(ctx, []string{"k2", "missing", "k1"})
	if err != nil {
		t.Fatal(err)
	}
	want := []map[string]string{{"f": "b"}, {}, {"f": "a"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HGetAllMulti mismatch (-want +got):\n%s", diff)
	}

	if got, _ := s.HGetAllMulti(ctx, nil); got != nil {
		t.Errorf("expected nil for no keys, got %v", got)
	}
}

func TestKV(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := s.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	v, err := s.Get(ctx, "k")
	if err != nil || string(v) != "v" {
		t.Fatalf("Get = %q, %v", v, err)
	}
	if ok, _ := s.Exists(ctx, "k"); !ok {
		t.Error("Exists = false after Set")
	}
	if err := s.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Exists(ctx, "k"); ok {
		t.Error("Exists = true after Del")
	}
}

func TestHSet_OnValueKey(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_ = s.Set(ctx, "k", []byte("v"))

	err := s.HSet(ctx, "k", map[string]string{"a": "1"})
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpHSet {
		t.Errorf("expected HSET db.Error, got %v", err)
	}
}

func TestScan(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_ = s.HSet(ctx, "df:pattern:b", map[string]string{"p": "x"})
	_ = s.HSet(ctx, "df:pattern:a", map[string]string{"p": "x"})
	_ = s.Set(ctx, "df:locale:fr", []byte("{}"))

	got, err := s.Scan(ctx, "df:pattern:*")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"df:pattern:a", "df:pattern:b"}, got); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}

	if _, err := s.Scan(ctx, "["); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	if err := s.WaitForReady(ctx, 0); err != nil {
		t.Fatal(err)
	}
	s.Close()
	if err := s.Ping(ctx); err == nil {
		t.Error("expected Ping to fail after Close")
	}
}
