package repository

import "time"

// Janitor periodically drops expired entries from a MemoryCache so that
// long sessions do not keep stale schedules around.
type Janitor struct {
	cache    *MemoryCache
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	onClean  func(removed int)
}

// NewJanitor starts cleaning cache every interval. onClean, when not nil,
// is called after each pass that removed something.
func NewJanitor(cache *MemoryCache, interval time.Duration, onClean func(removed int)) *Janitor {
	j := &Janitor{
		cache:    cache,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		onClean:  onClean,
	}
	go j.cleanupLoop()
	return j
}

func (j *Janitor) cleanupLoop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := j.cache.CleanExpired(); removed > 0 && j.onClean != nil {
				j.onClean(removed)
			}
		case <-j.stop:
			return
		}
	}
}

// Stop ends the cleanup loop and waits for it to exit.
func (j *Janitor) Stop() {
	close(j.stop)
	<-j.done
}
