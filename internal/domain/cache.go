package domain

import "time"

// CacheEntry stores the outcome of one On This Day lookup, success or
// failure. Failed fetches are cached too: a repeat of a failing request
// inside the TTL window must not re-hit the network.
type CacheEntry struct {
	Key            string
	Response       OnThisDayResponse
	FailureMessage string
	CreatedAt      time.Time
}

// Failed reports whether the entry records a fetch failure.
func (e CacheEntry) Failed() bool { return e.FailureMessage != "" }

// CacheSettings exposes the cache policy to callers.
type CacheSettings struct {
	TTL time.Duration
}
