package confirm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_ConfirmRunsAction(t *testing.T) {
	gate := NewGate()
	ran := false
	gate.Request("Delete Team: Eagles", "Are you sure?", func() { ran = true })

	pending, ok := gate.Pending()
	require.True(t, ok)
	assert.Equal(t, "Delete Team: Eagles", pending.Title)
	assert.Equal(t, "Are you sure?", pending.Message)

	assert.True(t, gate.Confirm())
	assert.True(t, ran)

	_, ok = gate.Pending()
	assert.False(t, ok, "confirm must clear the slot")
}

func TestGate_CancelDiscardsAction(t *testing.T) {
	gate := NewGate()
	ran := false
	gate.Request("Delete Media", "Permanently delete?", func() { ran = true })

	assert.True(t, gate.Cancel())
	assert.False(t, ran)

	assert.False(t, gate.Confirm(), "cancelled action must not be runnable")
	assert.False(t, ran)
}

func TestGate_NothingPending(t *testing.T) {
	gate := NewGate()
	assert.False(t, gate.Confirm())
	assert.False(t, gate.Cancel())
}

func TestGate_NewRequestOverwritesPending(t *testing.T) {
	gate := NewGate()
	firstRan := false
	secondRan := false
	gate.Request("First", "first", func() { firstRan = true })
	gate.Request("Second", "second", func() { secondRan = true })

	pending, ok := gate.Pending()
	require.True(t, ok)
	assert.Equal(t, "Second", pending.Title)

	assert.True(t, gate.Confirm())
	assert.False(t, firstRan, "overwritten intent must never run")
	assert.True(t, secondRan)
}
