package probe

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Deduplicated collapses concurrent checks of the same name into one call and
// remembers successful answers for a while. Error results are never cached so
// the next caller retries.
type Deduplicated struct {
	next  Checker
	group singleflight.Group
	cache *gocache.Cache
}

// Deduplicate wraps next. A ttl of zero keeps answers for the lifetime of the
// wrapper; a negative ttl disables the cache and keeps only singleflight.
func Deduplicate(next Checker, ttl time.Duration) *Deduplicated {
	d := &Deduplicated{next: next}
	switch {
	case ttl == 0:
		d.cache = gocache.New(gocache.NoExpiration, 0)
	case ttl > 0:
		d.cache = gocache.New(ttl, 2*ttl)
	}
	return d
}

// Check implements Checker.
func (d *Deduplicated) Check(ctx context.Context, name string) Result {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))

	if d.cache != nil {
		if v, ok := d.cache.Get(key); ok {
			if res, ok := v.(Result); ok {
				return res
			}
		}
	}

	v, _, _ := d.group.Do(key, func() (any, error) {
		res := d.next.Check(ctx, name)
		if d.cache != nil && res.OK() {
			d.cache.SetDefault(key, res)
		}
		return res, nil
	})
	return v.(Result)
}

// Forget drops any cached answer for name.
func (d *Deduplicated) Forget(name string) {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
	d.group.Forget(key)
	if d.cache != nil {
		d.cache.Delete(key)
	}
}
