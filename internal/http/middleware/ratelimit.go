package middleware

import (
	"sync"
	"time"
)

// localWindow is an in-process fixed-window counter keyed by client,
// used when no Redis is configured.
type localWindow struct {
	start time.Time
	count int
}

var (
	localMu      sync.Mutex
	localClients = make(map[string]*localWindow)
)

// localAllow counts one request for ident and reports whether it is
// still within the limit for the current window.
func localAllow(ident string, maxRequests int, window time.Duration) bool {
	localMu.Lock()
	defer localMu.Unlock()

	now := time.Now()
	w, ok := localClients[ident]
	if !ok || now.Sub(w.start) > window {
		localClients[ident] = &localWindow{start: now, count: 1}
		return true
	}
	w.count++
	return w.count <= maxRequests
}
