package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionRoundTrip(t *testing.T) {
	s := NewSelection()

	_, ok := s.Selected()
	assert.False(t, ok)

	s.Select(8863)
	id, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, 8863, id)

	s.Select(121003)
	id, ok = s.Selected()
	require.True(t, ok)
	assert.Equal(t, 121003, id)

	s.Clear()
	_, ok = s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Depth())
}

func TestSelectionAcceptsUnknownIDs(t *testing.T) {
	s := NewSelection()
	s.Select(-1)
	id, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, -1, id)
}

func TestSelectionBackRestoresPrevious(t *testing.T) {
	s := NewSelection()
	assert.False(t, s.Back())

	s.Select(1)
	s.Select(2)
	s.Select(3)
	assert.Equal(t, []Entry{{}, {ID: 1, OK: true}, {ID: 2, OK: true}}, s.History())

	require.True(t, s.Back())
	id, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	require.True(t, s.Back())
	id, _ = s.Selected()
	assert.Equal(t, 1, id)

	// back to the list: nothing selected
	require.True(t, s.Back())
	_, ok = s.Selected()
	assert.False(t, ok)

	assert.False(t, s.Back())
}

func TestSelectionSubscribe(t *testing.T) {
	s := NewSelection()

	type event struct {
		id int
		ok bool
	}
	var got []event
	unsubscribe := s.Subscribe(func(id int, ok bool) {
		got = append(got, event{id, ok})
	})

	s.Select(5)
	s.Select(6)
	s.Back()
	s.Clear()
	unsubscribe()
	s.Select(7)

	assert.Equal(t, []event{{5, true}, {6, true}, {5, true}, {0, false}}, got)
}

func TestSelectionSubscriberMayReadStore(t *testing.T) {
	s := NewSelection()
	var seen int
	s.Subscribe(func(int, bool) {
		seen, _ = s.Selected()
	})

	s.Select(42)
	assert.Equal(t, 42, seen)
}

func TestSelectionInstancesAreIsolated(t *testing.T) {
	a, b := NewSelection(), NewSelection()
	a.Select(1)

	_, ok := b.Selected()
	assert.False(t, ok)
}

func TestSelectionConcurrentUse(t *testing.T) {
	s := NewSelection()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.Select(id)
			s.Selected()
			s.History()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Depth())
}
