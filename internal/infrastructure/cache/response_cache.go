package cache

import (
	"github.com/jellydator/ttlcache/v3"

	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/ports"
)

// ResponseCache keeps the latest conversation reply per query text for the
// life of the process. Entries never expire; they leave the cache only when
// taken for display.
type ResponseCache struct {
	items *ttlcache.Cache[string, domain.Response]
}

// NewResponseCache returns an empty cache.
func NewResponseCache() *ResponseCache {
	return &ResponseCache{
		items: ttlcache.New[string, domain.Response](
			ttlcache.WithTTL[string, domain.Response](ttlcache.NoTTL),
			ttlcache.WithDisableTouchOnHit[string, domain.Response](),
		),
	}
}

// Put inserts or overwrites the reply for query.
func (c *ResponseCache) Put(query string, resp domain.Response) {
	c.items.Set(query, resp, ttlcache.DefaultTTL)
}

// Take removes and returns the reply for query.
func (c *ResponseCache) Take(query string) (domain.Response, bool) {
	item, ok := c.items.GetAndDelete(query)
	if !ok || item == nil {
		return domain.Response{}, false
	}
	return item.Value(), true
}

// Len returns the number of pending replies.
func (c *ResponseCache) Len() int {
	return c.items.Len()
}

var _ ports.ResponseCache = (*ResponseCache)(nil)
