package approval

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	summaryKeyPrefix     = "dashboard:summary:"
	wingVersionKeyPrefix = "dashboard:wing-version:"
)

// SummaryCacheKey holds one hash per user; fields are "<wing>:<version>".
func SummaryCacheKey(userID string) string {
	return summaryKeyPrefix + userID
}

// WingVersionKey is bumped on every transition in the wing so cached
// organizational counts of other users go stale.
func WingVersionKey(wingID string) string {
	return wingVersionKeyPrefix + wingID
}

// InvalidateSummaries drops the cached dashboard counts of the given users
// and bumps the wing version.
func InvalidateSummaries(ctx context.Context, rdb *redis.Client, wingID string, userIDs ...string) error {
	if rdb == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(userIDs))
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, SummaryCacheKey(id))
	}

	if len(keys) > 0 {
		if err := rdb.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	if wingID != "" {
		if err := rdb.Incr(ctx, WingVersionKey(wingID)).Err(); err != nil {
			return err
		}
	}
	return nil
}
