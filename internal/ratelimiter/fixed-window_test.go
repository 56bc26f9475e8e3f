package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(2, 50*time.Millisecond)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, retryAfter, time.Duration(0))

	// a different client has its own window
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)

	// window expires, counting starts over
	time.Sleep(60 * time.Millisecond)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}
