package benchmark

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineExpires(t *testing.T) {
	dl := StartDeadline(30 * time.Millisecond)

	assert.False(t, dl.Expired())
	time.Sleep(50 * time.Millisecond)
	assert.True(t, dl.Expired())
}

func TestDeadlineNeverReverts(t *testing.T) {
	dl := StartDeadline(time.Nanosecond)

	time.Sleep(time.Millisecond)
	for i := 0; i < 100; i++ {
		assert.True(t, dl.Expired())
	}
}

func TestDeadlineConcurrentPolling(t *testing.T) {
	dl := StartDeadline(10 * time.Millisecond)

	// Every goroutine must observe a single false -> true transition.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sawExpired := false
			for j := 0; j < 100000; j++ {
				expired := dl.Expired()
				if sawExpired {
					assert.True(t, expired)
				}
				if expired {
					sawExpired = true
				}
			}
		}()
	}
	wg.Wait()
}
