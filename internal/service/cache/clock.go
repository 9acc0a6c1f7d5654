package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

const coarseResolution = 100 * time.Millisecond

var (
	coarseNanos atomic.Int64
	coarseOnce  sync.Once
)

func startCoarseClock() {
	coarseNanos.Store(time.Now().UnixNano())
	go func() {
		for t := range time.Tick(coarseResolution) {
			coarseNanos.Store(t.UnixNano())
		}
	}()
}

// now returns wall time at coarseResolution, started on first use. It is
// used to stamp expiries on Set; expiry checks read time.Now.
func now() time.Time {
	coarseOnce.Do(startCoarseClock)
	return time.Unix(0, coarseNanos.Load())
}
