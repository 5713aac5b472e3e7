package state

import "errors"

// Status is the lifecycle of an asynchronous value
type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Resource is an asynchronous result the views render from.
// A failed resource never reads as an empty ready value.
type Resource[T any] struct {
	status Status
	value  T
	err    error
}

// Pending returns a resource that has not resolved yet
func Pending[T any]() Resource[T] {
	return Resource[T]{status: StatusPending}
}

// Ready returns a resolved resource holding v
func Ready[T any](v T) Resource[T] {
	return Resource[T]{status: StatusReady, value: v}
}

// Failed returns a rejected resource. A nil err is replaced so the failure stays observable.
func Failed[T any](err error) Resource[T] {
	if err == nil {
		err = errors.New("failed without an error")
	}
	return Resource[T]{status: StatusFailed, err: err}
}

// Resolve builds Ready(v) or Failed(err) from a call result
func Resolve[T any](v T, err error) Resource[T] {
	if err != nil {
		return Failed[T](err)
	}
	return Ready(v)
}

func (r Resource[T]) Status() Status { return r.status }

func (r Resource[T]) IsPending() bool { return r.status == StatusPending || r.status == "" }

func (r Resource[T]) IsReady() bool { return r.status == StatusReady }

func (r Resource[T]) IsFailed() bool { return r.status == StatusFailed }

// Value returns the resolved value and whether the resource is ready
func (r Resource[T]) Value() (T, bool) {
	return r.value, r.status == StatusReady
}

// Err returns the failure, or nil unless the resource failed
func (r Resource[T]) Err() error {
	return r.err
}
