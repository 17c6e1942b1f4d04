package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a best-effort JSON cache. Misses and backend failures look the same to
// callers; reads always fall back to the source of truth.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Noop is used when no cache backend is configured.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) bool { return false }
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error { return nil }

func ArtworkKey(id int64) string {
	return fmt.Sprintf("artwork:%d", id)
}

func LatestBidKey(auctionID int64) string {
	return fmt.Sprintf("bid:latest:auction:%d", auctionID)
}

const ArtworkListKey = "artwork:list"
