package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_ExpiresAfterTTL(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	c := NewCenter(5 * time.Second)
	c.now = func() time.Time { return now }

	c.Success("Animal creado exitosamente")
	c.Error("boom")

	active := c.Active()
	require.Len(t, active, 2)
	assert.False(t, active[0].IsError())
	assert.True(t, active[1].IsError())

	now = now.Add(5 * time.Second)
	assert.Empty(t, c.Active())
}

func TestCenter_Dismiss(t *testing.T) {
	c := NewCenter(0)
	c.Error("x")

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, "x", last.Message)

	assert.True(t, c.Dismiss(last.ID))
	assert.False(t, c.Dismiss(last.ID))
	assert.Empty(t, c.Active())
}
