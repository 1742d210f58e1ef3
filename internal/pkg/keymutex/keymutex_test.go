package keymutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()
	km := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("emp-1:2024-05-01")
			counter++
			km.Unlock("emp-1:2024-05-01")
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyMutex_DifferentKeysIndependent(t *testing.T) {
	t.Parallel()
	km := New()

	km.Lock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	// Locking "b" must not block on "a" being held.
	<-done
	km.Unlock("a")
}

func TestKeyMutex_EntryReclaimed(t *testing.T) {
	t.Parallel()
	km := New()

	km.Lock("a")
	km.Unlock("a")

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.entries)
}
