package services

import (
	"context"
	"sync"
)

// CredentialSource yields the stored bearer token. An empty token with a
// nil error means nobody is signed in.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
}

// CredentialStore is a CredentialSource that can also be written.
type CredentialStore interface {
	CredentialSource
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// MemoryCredentials keeps the token in process memory.
type MemoryCredentials struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryCredentials(token string) *MemoryCredentials {
	return &MemoryCredentials{token: token}
}

func (m *MemoryCredentials) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryCredentials) SetToken(ctx context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryCredentials) ClearToken(ctx context.Context) error {
	return m.SetToken(ctx, "")
}
