package api

import "context"

// Status tracks one fetch's lifecycle. Every dashboard section owns its own
// Resource, so a failure in one never blanks another.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Resource is the result of a single fetch.
type Resource[T any] struct {
	Data   T
	Err    error
	Status Status
}

func (r Resource[T]) IsSuccess() bool { return r.Status == StatusSuccess }
func (r Resource[T]) IsError() bool   { return r.Status == StatusError }
func (r Resource[T]) IsIdle() bool    { return r.Status == StatusIdle }

// Idle is a resource for a fetch that was never issued.
func Idle[T any]() Resource[T] {
	return Resource[T]{Status: StatusIdle}
}

func failed[T any](err error) Resource[T] {
	return Resource[T]{Status: StatusError, Err: err}
}

func succeeded[T any](data T) Resource[T] {
	return Resource[T]{Data: data, Status: StatusSuccess}
}

// Fetch runs one GET and returns the terminal resource. An empty URL never
// issues a request: it reports StatusIdle, which is how gated fetches stay
// un-issued until their gate opens.
func Fetch[T any](ctx context.Context, c *Client, url string) Resource[T] {
	if url == "" {
		return Idle[T]()
	}

	var out T
	if err := c.getJSON(ctx, url, &out); err != nil {
		return failed[T](err)
	}
	return succeeded(out)
}
