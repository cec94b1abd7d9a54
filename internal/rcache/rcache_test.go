package rcache_test

import (
	"testing"

	"rue/internal/rcache"
)

func TestGetMissesOnUnknownPath(t *testing.T) {
	c, err := rcache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := c.Get("no/such/file.rue", rcache.Sum([]byte("x"))); ok {
		t.Fatalf("expected a miss")
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c, err := rcache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	digest := rcache.Sum([]byte("val x = 1;"))
	want := rcache.Payload{}
	if err := c.Put("main.rue", digest, want); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := c.Get("main.rue", digest)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if got.Schema == 0 {
		t.Fatalf("expected schema to be stamped on put")
	}
}

func TestGetMissesOnDigestMismatch(t *testing.T) {
	c, err := rcache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := c.Put("main.rue", rcache.Sum([]byte("old")), rcache.Payload{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok := c.Get("main.rue", rcache.Sum([]byte("new"))); ok {
		t.Fatalf("expected a miss after content changed")
	}
}

func TestDiskPersistsAcrossCacheInstances(t *testing.T) {
	dir := t.TempDir()
	digest := rcache.Sum([]byte("val x = 1;"))

	c1, err := rcache.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := c1.Put("main.rue", digest, rcache.Payload{}); err != nil {
		t.Fatalf("put: %v", err)
	}

	c2, err := rcache.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok := c2.Get("main.rue", digest); !ok {
		t.Fatalf("expected a disk-backed hit in a fresh Cache instance")
	}
}

func TestDropAllClearsMemoryAndDisk(t *testing.T) {
	dir := t.TempDir()
	digest := rcache.Sum([]byte("val x = 1;"))
	c, err := rcache.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := c.Put("main.rue", digest, rcache.Payload{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("drop all: %v", err)
	}
	if _, ok := c.Get("main.rue", digest); ok {
		t.Fatalf("expected a miss after DropAll")
	}
}
