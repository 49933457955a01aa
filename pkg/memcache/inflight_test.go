package memcache

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAcquireBlocksDuplicatePair(t *testing.T) {
	g := NewInFlightGuard()
	account, mission := uuid.New(), uuid.New()

	assert.True(t, g.Acquire(account, mission))
	assert.False(t, g.Acquire(account, mission))

	g.Release(account, mission)
	assert.True(t, g.Acquire(account, mission))
}

func TestDistinctPairsDoNotInterfere(t *testing.T) {
	g := NewInFlightGuard()
	account := uuid.New()

	assert.True(t, g.Acquire(account, uuid.New()))
	assert.True(t, g.Acquire(account, uuid.New()))
	assert.True(t, g.Acquire(uuid.New(), uuid.New()))
}

func TestConcurrentAcquireAdmitsExactlyOne(t *testing.T) {
	g := NewInFlightGuard()
	account, mission := uuid.New(), uuid.New()

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Acquire(account, mission) {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, admitted)
}
