package errors

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTooManyRequestsIncludesWaitTime(t *testing.T) {
	err := TooManyRequests("You are sending messages too fast", 42*time.Second)

	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "You are sending messages too fast. Try again in 42s", err.Message)
}

func TestTooManyRequestsWithoutWaitTime(t *testing.T) {
	err := TooManyRequests("Slow down", 0)

	assert.Equal(t, "Slow down", err.Message)
}

func TestIsMatchesCode(t *testing.T) {
	err := NotFound("Store", nil)

	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "CONFLICT"))
}
