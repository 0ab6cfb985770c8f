package record

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheNamespace = "patient_records"

// DefaultCacheTTL bounds how long a cached records list may outlive the
// data it was built from.
const DefaultCacheTTL = 300 * time.Second

// CacheKey returns the redis key holding a patient's records list.
func CacheKey(patientID int) string {
	return fmt.Sprintf("%s:%d", cacheNamespace, patientID)
}

// InvalidateCache drops the cached records list for a patient. The cache
// is not authoritative, so a redis failure here is logged and swallowed;
// the entry will age out on its TTL regardless.
func InvalidateCache(ctx context.Context, rdb *redis.Client, patientID int) {
	if err := rdb.Del(ctx, CacheKey(patientID)).Err(); err != nil {
		slog.Warn("failed to invalidate records cache",
			"patient_id", patientID, "error", err)
	}
}

func storeCache(ctx context.Context, rdb *redis.Client, ttl time.Duration, patientID int, records any) {
	payload, err := json.Marshal(records)
	if err != nil {
		slog.Warn("failed to encode records for cache",
			"patient_id", patientID, "error", err)
		return
	}
	if err := rdb.Set(ctx, CacheKey(patientID), payload, ttl).Err(); err != nil {
		slog.Warn("failed to populate records cache",
			"patient_id", patientID, "error", err)
	}
}
