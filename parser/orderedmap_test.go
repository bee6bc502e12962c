package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSetPreservesInsertionOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("zulu", 1)
	m.Set("alpha", 2)
	m.Set("mike", 3)

	assert.Equal(t, []string{"zulu", "alpha", "mike"}, m.Keys())
}

func TestMapOverwriteKeepsPosition(t *testing.T) {
	m := NewMap[string]()
	m.Set("first", "a")
	m.Set("second", "b")
	m.Set("first", "c")

	assert.Equal(t, []string{"first", "second"}, m.Keys())
	v, ok := m.Get("first")
	require.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestMapDelete(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	m.Delete("b")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
	_, ok := m.Get("b")
	assert.False(t, ok)
}

func TestMapAllIteratesInOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("one", 1)
	m.Set("two", 2)
	m.Set("three", 3)

	var keys []string
	var vals []int
	for k, v := range m.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal(t, []string{"one", "two", "three"}, keys)
	assert.Equal(t, []int{1, 2, 3}, vals)
}

func TestMapNilReceiverReads(t *testing.T) {
	var m *Map[int]

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
	_, ok := m.Get("anything")
	assert.False(t, ok)
	for range m.All() {
		t.Fatal("nil map should not yield entries")
	}
}
