package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestMemoryStore_EmptyGet(t *testing.T) {
	s := NewMemoryStore()
	tok, err := s.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Nil(t, tok)
}

func TestMemoryStore_SetThenGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Set(ctx, &oauth2.Token{AccessToken: "a1", RefreshToken: "r1", Expiry: expiry}))

	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", tok.AccessToken)
	assert.Equal(t, "r1", tok.RefreshToken)
	assert.Equal(t, expiry, tok.Expiry)
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, &oauth2.Token{AccessToken: "old"}))
	require.NoError(t, s.Set(ctx, &oauth2.Token{AccessToken: "new"}))

	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", tok.AccessToken)
}

func TestMemoryStore_SetNil(t *testing.T) {
	s := NewMemoryStore()
	assert.Error(t, s.Set(context.Background(), nil))
	_, err := s.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestMemoryStore_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	orig := &oauth2.Token{AccessToken: "a1"}
	require.NoError(t, s.Set(ctx, orig))
	orig.AccessToken = "mutated"

	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", tok.AccessToken)

	tok.AccessToken = "changed"
	again, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", again.AccessToken)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, &oauth2.Token{AccessToken: "tok"})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Get(ctx)
		}()
	}
	wg.Wait()

	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
}

func TestMemoryStore_ImplementsCredentialStore(t *testing.T) {
	var _ CredentialStore = NewMemoryStore()
}
