package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	IndexKeyName   = "posts:index"
	PostKeyPrefix  = "post:%d"
	GroupKeyPrefix = "group:%s"
)

// IndexTTL bounds front-page staleness. Expiry is the only consistency
// mechanism: writes do not invalidate the index, stale pages persist until
// the TTL runs out. Override via INDEX_CACHE_TTL_SECONDS.
var IndexTTL = 20 * time.Second

const (
	PostTTL  = 30 * time.Minute
	GroupTTL = 10 * time.Minute
)

// SetIndexTTL overrides the front-page cache TTL. Non-positive values are
// ignored.
func SetIndexTTL(d time.Duration) {
	if d > 0 {
		IndexTTL = d
	}
}

func IndexKey() string {
	return IndexKeyName
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func GroupKey(slug string) string {
	return fmt.Sprintf(GroupKeyPrefix, slug)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateIndex drops the cached front page. It is never called on the
// write path; it exists for operators and tests.
func InvalidateIndex(ctx context.Context) {
	Invalidate(ctx, IndexKey())
}

func InvalidateGroup(ctx context.Context, slug string) {
	Invalidate(ctx, GroupKey(slug))
}
