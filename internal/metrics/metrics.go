// Package metrics holds the lock-free operational counters extract()
// updates, mirroring the teacher's own atomic-accumulation pattern for
// flat scalar stats.
package metrics

import "sync/atomic"

// Counters is safe for concurrent use; every field is updated with
// sync/atomic and never needs a mutex since each is an independent
// scalar.
type Counters struct {
	ExtractCalls  atomic.Int64
	TagsEmitted   atomic.Int64
	TagsDropped   atomic.Int64
	ResolveErrors atomic.Int64
}

// Snapshot is a point-in-time read of Counters.
type Snapshot struct {
	ExtractCalls  int64
	TagsEmitted   int64
	TagsDropped   int64
	ResolveErrors int64
}

// Snapshot reads every counter's current value.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		ExtractCalls:  c.ExtractCalls.Load(),
		TagsEmitted:   c.TagsEmitted.Load(),
		TagsDropped:   c.TagsDropped.Load(),
		ResolveErrors: c.ResolveErrors.Load(),
	}
}
