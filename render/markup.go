// Package render holds the text primitives the views share.
package render

import (
	"net/url"
)

// FallbackHost is shown when a story has no usable URL
const FallbackHost = "example.com"

// TrustedMarkup passes source-supplied markup through unchanged.
// Titles and comment text from the API are rendered as trusted content; no
// escaping or sanitizing happens here. This is the only place to add it.
func TrustedMarkup(s string) string {
	return s
}

// Hostname returns the host of a story URL, or FallbackHost when the URL is
// empty, unparsable or has no host.
func Hostname(raw string) string {
	if raw == "" {
		return FallbackHost
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return FallbackHost
	}
	return u.Hostname()
}
