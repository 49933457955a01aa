// pkg/memcache/inflight.go
package memcache

import (
	"sync"

	"github.com/google/uuid"
)

// InFlightGuard collapses concurrent duplicate check-in attempts for the same
// (account, mission) pair. The button-disable on the client is not a real
// guard; this closes the window between two racing requests before the
// database uniqueness constraint is hit.
type InFlightGuard interface {
	// Acquire returns false if the pair is already being processed.
	Acquire(accountID, missionID uuid.UUID) bool
	Release(accountID, missionID uuid.UUID)
}

type pairKey struct {
	accountID uuid.UUID
	missionID uuid.UUID
}

type inFlightGuard struct {
	mu     sync.Mutex
	active map[pairKey]struct{}
}

func NewInFlightGuard() InFlightGuard {
	return &inFlightGuard{
		active: make(map[pairKey]struct{}),
	}
}

func (g *inFlightGuard) Acquire(accountID, missionID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := pairKey{accountID: accountID, missionID: missionID}
	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

func (g *inFlightGuard) Release(accountID, missionID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, pairKey{accountID: accountID, missionID: missionID})
}
