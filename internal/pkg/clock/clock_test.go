package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_Advance(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewFixed(start)

	assert.Equal(t, start, c.Now())
	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())
}

func TestReal_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Real{}.Now().Location())
}
