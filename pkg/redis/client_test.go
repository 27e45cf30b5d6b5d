package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

type document struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewClientFromAddr(mr.Addr())
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestSetAndGetJSON(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if err := client.SetJSON(ctx, "doc", document{Name: "calgary", Count: 3}, 0); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}

	var loaded document
	if err := client.GetJSON(ctx, "doc", &loaded); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if loaded.Name != "calgary" || loaded.Count != 3 {
		t.Fatalf("document did not round-trip: %+v", loaded)
	}
}

func TestGetJSONMissingKeyLeavesDestinationUntouched(t *testing.T) {
	client, _ := newTestClient(t)

	loaded := document{Name: "sentinel"}
	if err := client.GetJSON(context.Background(), "missing", &loaded); err != nil {
		t.Fatalf("expected a missing key to return no error, got %v", err)
	}
	if loaded.Name != "sentinel" {
		t.Fatalf("expected the destination to be untouched, got %+v", loaded)
	}
}

func TestGetJSONMalformedValue(t *testing.T) {
	client, mr := newTestClient(t)
	mr.Set("doc", "{broken")

	var loaded document
	err := client.GetJSON(context.Background(), "doc", &loaded)
	if !errors.Is(err, ErrMalformedValue) {
		t.Fatalf("expected ErrMalformedValue, got %v", err)
	}
}

func TestGetMissingKeyReturnsEmptyString(t *testing.T) {
	client, _ := newTestClient(t)

	value, err := client.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected no error for a missing key, got %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty string, got %q", value)
	}
}

func TestDeleteAndExists(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "key", "value", 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	count, err := client.Exists(ctx, "key")
	if err != nil || count != 1 {
		t.Fatalf("expected the key to exist, got count %d err %v", count, err)
	}

	if err := client.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	count, err = client.Exists(ctx, "key")
	if err != nil || count != 0 {
		t.Fatalf("expected the key to be gone, got count %d err %v", count, err)
	}
}
