package service

import "errors"

var (
	// ErrUnauthenticated means no OAuth token has been stored yet.
	ErrUnauthenticated = errors.New("not authenticated with Google")
	// ErrInvalidInput covers unparseable dates and malformed request bodies.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstream wraps any failed Calendar API call.
	ErrUpstream = errors.New("calendar provider request failed")
	// ErrUpstreamAuth wraps a failed authorization code exchange.
	ErrUpstreamAuth = errors.New("authorization code exchange failed")
)
