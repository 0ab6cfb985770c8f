package record

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb, mr
}

func TestCacheKey(t *testing.T) {
	if got := CacheKey(42); got != "patient_records:42" {
		t.Errorf("CacheKey(42) = %q, want %q", got, "patient_records:42")
	}
}

func TestInvalidateCache(t *testing.T) {
	rdb, mr := newTestRedis(t)
	mr.Set(CacheKey(7), `[{"id":1}]`)

	InvalidateCache(context.Background(), rdb, 7)

	if mr.Exists(CacheKey(7)) {
		t.Error("cache entry still present after invalidation")
	}
}

func TestInvalidateCache_MissingKeyIsFine(t *testing.T) {
	rdb, _ := newTestRedis(t)
	// Deleting an absent entry must not panic or error out.
	InvalidateCache(context.Background(), rdb, 999)
}

func TestStoreCache_SetsTTL(t *testing.T) {
	rdb, mr := newTestRedis(t)

	storeCache(context.Background(), rdb, DefaultCacheTTL, 7, []string{"a"})

	if !mr.Exists(CacheKey(7)) {
		t.Fatal("cache entry was not written")
	}
	if ttl := mr.TTL(CacheKey(7)); ttl != DefaultCacheTTL {
		t.Errorf("TTL = %v, want %v", ttl, DefaultCacheTTL)
	}
}

func TestStoreCache_ExpiresAfterTTL(t *testing.T) {
	rdb, mr := newTestRedis(t)

	storeCache(context.Background(), rdb, 300*time.Second, 7, []string{"a"})
	mr.FastForward(301 * time.Second)

	if mr.Exists(CacheKey(7)) {
		t.Error("cache entry survived past its TTL")
	}
}
