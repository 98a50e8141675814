package watch

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/sortedmap"
)

// Feed publishes successive versions of a sorted map to any number of
// subscribers.
//
// This is the consumption pattern persistent maps exist for: every
// subscriber holds some fully valid map version and reads it without
// locks, while the publisher swaps in new versions at its own pace. The
// feed synchronizes only the version hand-over, never map contents.
//
// Delivery is latest-wins: a subscriber that falls behind does not queue
// up the intermediate versions, it observes the newest published version
// once it resumes reading. The publisher is therefore never stalled by a
// slow subscriber.
type Feed[K, V any] struct {
	mu      sync.RWMutex
	current sortedmap.Map[K, V]
	closed  bool
	cast    *caster.Caster // broadcaster for published versions
}

// NewFeed creates a feed with an initial map version.
func NewFeed[K, V any](initial sortedmap.Map[K, V]) *Feed[K, V] {
	return &Feed[K, V]{
		current: initial,
		cast:    caster.New(nil), // we will broadcast messages when versions are published
	}
}

// Current returns the most recently published version.
func (f *Feed[K, V]) Current() sortedmap.Map[K, V] {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Publish makes m the current version and broadcasts it to all
// subscribers. Publish does not wait for subscribers to read.
func (f *Feed[K, V]) Publish(m sortedmap.Map[K, V]) {
	f.mu.Lock()
	f.current = m
	f.mu.Unlock()
	tracer().Debugf("feed publishes map version with %d entries", m.Len())
	f.cast.Pub(m)
}

// Subscribe registers a listener for future versions. The subscription
// ends when ctx is done or the feed is closed; the returned channel is
// closed in both cases. ok is false if the feed is already closed.
//
// The channel holds at most one pending version. A new publication
// replaces a pending version the subscriber has not read yet.
func (f *Feed[K, V]) Subscribe(ctx context.Context) (versions <-chan sortedmap.Map[K, V], ok bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	f.mu.RLock()
	closed := f.closed
	f.mu.RUnlock()
	if closed {
		return nil, false
	}
	// the ok result of Sub carries no information in this caster version;
	// a feed closed underneath us hands back a closed channel instead
	src, _ := f.cast.Sub(ctx, 1)
	out := make(chan sortedmap.Map[K, V], 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-f.cast.Done():
				return
			case msg, open := <-src:
				if !open {
					return
				}
				m, isMap := msg.(sortedmap.Map[K, V])
				assertf(isMap, "feed broadcast carries a foreign message type")
				select {
				case out <- m:
				default:
					// subscriber lags: the newest version replaces the
					// pending one
					select {
					case <-out:
					default:
					}
					out <- m
				}
			}
		}
	}()
	return out, true
}

// Close shuts down the feed and ends all subscriptions. The current
// version stays readable.
func (f *Feed[K, V]) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.cast.Close()
}

func assertf(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
