package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceStates(t *testing.T) {
	p := Pending[[]int]()
	assert.True(t, p.IsPending())
	assert.Equal(t, StatusPending, p.Status())
	_, ok := p.Value()
	assert.False(t, ok)

	r := Ready([]int{1, 2})
	assert.True(t, r.IsReady())
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)
	assert.NoError(t, r.Err())

	boom := errors.New("boom")
	f := Failed[[]int](boom)
	assert.True(t, f.IsFailed())
	assert.ErrorIs(t, f.Err(), boom)
	_, ok = f.Value()
	assert.False(t, ok)
}

func TestResourceZeroValueIsPending(t *testing.T) {
	var r Resource[string]
	assert.True(t, r.IsPending())
	assert.False(t, r.IsReady())
}

func TestFailedWithoutErrorStaysObservable(t *testing.T) {
	f := Failed[int](nil)
	assert.True(t, f.IsFailed())
	assert.Error(t, f.Err())
}

func TestResolve(t *testing.T) {
	assert.True(t, Resolve(3, nil).IsReady())

	// an empty value with an error is a failure, not an empty list
	r := Resolve[[]int](nil, errors.New("network down"))
	assert.True(t, r.IsFailed())
	assert.EqualError(t, r.Err(), "network down")
}
