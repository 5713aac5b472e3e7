package hackernews

import "errors"

// Error classes returned by the client. Every error it returns wraps one of these.
var (
	// ErrNetwork covers transport failures and non-2xx responses
	ErrNetwork = errors.New("hacker news request failed")

	// ErrDecode means the body was not the JSON shape the endpoint promises
	ErrDecode = errors.New("hacker news response malformed")

	// ErrMissingArticle is a well-formed null item; deleted and removed items look like this
	ErrMissingArticle = errors.New("article not found")
)
