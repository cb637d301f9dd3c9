package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCadence(t *testing.T) {
	assert.False(t, Cadence(0))
	assert.False(t, Cadence(-5))

	// Every 100 up to one thousand.
	assert.False(t, Cadence(99))
	assert.True(t, Cadence(100))
	assert.False(t, Cadence(101))
	assert.True(t, Cadence(1000))

	// Every 500 up to ten thousand.
	assert.False(t, Cadence(1100))
	assert.True(t, Cadence(1500))
	assert.False(t, Cadence(9999))
	assert.True(t, Cadence(10000))

	// Every 1000 beyond.
	assert.False(t, Cadence(10500))
	assert.True(t, Cadence(11000))
	assert.True(t, Cadence(250000))
}
