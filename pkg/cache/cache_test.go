package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "plan:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Roundtrip
	if err := c.Set(ctx, "plan:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "plan:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if string(data) != "payload" {
		t.Errorf("Get = %q, want %q", data, "payload")
	}

	// Delete removes the entry
	if err := c.Delete(ctx, "plan:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "plan:abc")
	if hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "plan:missing"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Negative TTL expires immediately
	if err := c.Set(ctx, "key", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should miss")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "forever", []byte("data"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "forever")
	if !hit {
		t.Error("zero-TTL entry should hit")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// PlanKey should include options in hash
	pk1 := k.PlanKey("hash123", PlanKeyOpts{HallwayWidth: 3.5, MaxAspect: 2.5})
	pk2 := k.PlanKey("hash123", PlanKeyOpts{HallwayWidth: 4.0, MaxAspect: 2.5})
	if pk1 == pk2 {
		t.Error("Different PlanKeyOpts should produce different keys")
	}

	// Different program hashes produce different keys
	pk3 := k.PlanKey("hash456", PlanKeyOpts{HallwayWidth: 3.5, MaxAspect: 2.5})
	if pk1 == pk3 {
		t.Error("Different program hashes should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("plan123", ArtifactKeyOpts{Format: "svg", Scale: 12})
	ak2 := k.ArtifactKey("plan123", ArtifactKeyOpts{Format: "png", Scale: 12})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}

	// Keys are stable across calls
	if pk1 != k.PlanKey("hash123", PlanKeyOpts{HallwayWidth: 3.5, MaxAspect: 2.5}) {
		t.Error("PlanKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "proj:riverside:")

	// All keys should be prefixed
	planKey := scoped.PlanKey("hash123", PlanKeyOpts{})
	if len(planKey) < 16 || planKey[:15] != "proj:riverside:" {
		t.Errorf("ScopedKeyer PlanKey should be prefixed: %s", planKey)
	}

	artifactKey := scoped.ArtifactKey("plan123", ArtifactKeyOpts{Format: "svg"})
	if len(artifactKey) < 16 || artifactKey[:15] != "proj:riverside:" {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", artifactKey)
	}

	// Prefixed key matches inner key with prefix
	want := "proj:riverside:" + inner.PlanKey("hash123", PlanKeyOpts{})
	if planKey != want {
		t.Errorf("ScopedKeyer PlanKey = %q, want %q", planKey, want)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.PlanKey("hash", PlanKeyOpts{})
	want := "prefix:" + NewDefaultKeyer().PlanKey("hash", PlanKeyOpts{})
	if key != want {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}
