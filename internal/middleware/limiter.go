package middleware

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	util "github.com/CodeAndHammer/minigames/internal/util"
)

const (
	limiterSoftCap = 10000
	limiterHardCap = 50000
)

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiters holds one token bucket per client key.
type Limiters struct {
	mu      sync.RWMutex
	entries map[string]*limiterEntry
	rps     int
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

func NewLimiters(rps, burst int, ttl time.Duration) *Limiters {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiters{
		entries: make(map[string]*limiterEntry),
		rps:     rps,
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the limiter for key, creating it on first use.
func (l *Limiters) Get(key string) *rate.Limiter {
	l.mu.RLock()
	entry, ok := l.entries[key]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		entry.lastAccess = l.now()
		l.mu.Unlock()
		return entry.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if entry, ok = l.entries[key]; ok {
		entry.lastAccess = l.now()
		return entry.limiter
	}

	if key == "" || key == "::1" {
		util.LogWarn("Rate limiter key is empty or loopback: %q", key)
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(l.rps)), l.burst)
	l.entries[key] = &limiterEntry{limiter: lim, lastAccess: l.now()}
	return lim
}

func (l *Limiters) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Cleanup drops idle limiters. Past the hard cap the oldest half goes too.
func (l *Limiters) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.ttl)
	removedCount := 0
	for key, entry := range l.entries {
		if entry.lastAccess.Before(cutoff) {
			delete(l.entries, key)
			removedCount++
		}
	}

	if len(l.entries) > limiterSoftCap {
		util.LogInfo("Rate limiter map too large (%d entries), performing emergency cleanup", len(l.entries))

		if len(l.entries) > limiterHardCap {
			type limiterInfo struct {
				key        string
				lastAccess time.Time
			}

			limiters := make([]limiterInfo, 0, len(l.entries))
			for key, entry := range l.entries {
				limiters = append(limiters, limiterInfo{key: key, lastAccess: entry.lastAccess})
			}

			sort.Slice(limiters, func(i, j int) bool {
				return limiters[i].lastAccess.Before(limiters[j].lastAccess)
			})

			entriesToRemove := len(limiters) / 2
			for i := 0; i < entriesToRemove; i++ {
				delete(l.entries, limiters[i].key)
				removedCount++
			}

			util.LogInfo("Removed %d oldest rate limiters", entriesToRemove)
		}
	}

	if removedCount > 0 {
		util.LogInfo("Cleaned up %d stale rate limiters", removedCount)
	}
	return removedCount
}

// StartCleanup runs Cleanup every interval until ctx is cancelled.
func (l *Limiters) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Cleanup()
			}
		}
	}()
}
