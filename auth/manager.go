package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/stencilui/stencil/storage"
)

// digestSize is the BLAKE2b digest length for stored license keys.
const digestSize = 32

// Manager stores and verifies the license credential. Only a digest of
// the key is persisted; the key itself never touches disk.
type Manager struct {
	repository storage.CredentialRepository
	logger     *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewManager creates a credential manager over a credential repository.
func NewManager(repository storage.CredentialRepository, opts ...Option) (*Manager, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	m := &Manager{
		repository: repository,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SetKey digests and stores a license key, replacing any existing one.
func (m *Manager) SetKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	credential := &storage.Credential{
		Digest:    digestKey(key),
		CreatedAt: time.Now().UTC().UnixMicro(),
	}
	if err := m.repository.PutCredential(ctx, credential); err != nil {
		return err
	}

	m.logger.Info("license credential stored")
	return nil
}

// Verify checks a license key against the stored digest. The comparison
// is constant time.
func (m *Manager) Verify(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	credential, err := m.repository.GetCredential(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNoCredential
		}
		return err
	}

	if subtle.ConstantTimeCompare(credential.Digest, digestKey(key)) != 1 {
		return ErrKeyMismatch
	}
	return nil
}

// Status describes the stored credential without revealing it.
type Status struct {
	Configured bool      `json:"configured"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
}

// Status reports whether a credential is stored and when it was set.
func (m *Manager) Status(ctx context.Context) (*Status, error) {
	credential, err := m.repository.GetCredential(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &Status{}, nil
		}
		return nil, err
	}

	return &Status{
		Configured: true,
		CreatedAt:  time.UnixMicro(credential.CreatedAt).UTC(),
	}, nil
}

// ClearKey removes the stored credential.
func (m *Manager) ClearKey(ctx context.Context) error {
	if err := m.repository.DeleteCredential(ctx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNoCredential
		}
		return err
	}

	m.logger.Info("license credential cleared")
	return nil
}

// digestKey computes the stored digest for a license key.
func digestKey(key string) []byte {
	h, _ := blake2b.New(digestSize, nil)
	h.Write([]byte(key))
	return h.Sum(nil)
}
