package store

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ErrNoCredentials is returned by Get before any authorization has completed.
var ErrNoCredentials = errors.New("no stored credentials")

// CredentialStore holds the OAuth token used for calendar calls.
type CredentialStore interface {
	Get(ctx context.Context) (*oauth2.Token, error)
	Set(ctx context.Context, token *oauth2.Token) error
}
