package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()
	a := s.Open()
	b := s.Open()
	require.NotEqual(t, a, b)

	s.SetYear(a, 2007)

	y, ok := s.Year(a)
	assert.True(t, ok)
	assert.Equal(t, 2007, y)

	_, ok = s.Year(b)
	assert.False(t, ok)
}

func TestStoreOverwriteAndClear(t *testing.T) {
	s := NewStore()
	id := s.Open()

	s.SetYear(id, 1999)
	s.SetYear(id, 2003)
	y, ok := s.Year(id)
	require.True(t, ok)
	assert.Equal(t, 2003, y)

	s.Clear(id)
	_, ok = s.Year(id)
	assert.False(t, ok)

	// clearing an unknown session is a no-op
	s.Clear("nope")
}

func TestBound(t *testing.T) {
	s := NewStore()
	id := s.Open()

	b := Bound{Store: s, ID: id}
	_, ok := b.Year()
	assert.False(t, ok)

	s.SetYear(id, 2015)
	y, ok := b.Year()
	require.True(t, ok)
	assert.Equal(t, 2015, y)
}
