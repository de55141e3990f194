package storage

import "context"

// PreviewRepository provides operations for the preview image cache.
// Implementations must be thread-safe and support concurrent access.
type PreviewRepository interface {
	// PutPreview stores a preview record, replacing any existing entry for
	// the same component.
	PutPreview(ctx context.Context, record *PreviewRecord) error

	// GetPreview retrieves the cached preview for a component.
	// Returns ErrNotFound if nothing is cached.
	GetPreview(ctx context.Context, componentID string) (*PreviewRecord, error)

	// DeletePreview removes the cached preview for a component.
	// Returns ErrNotFound if nothing is cached.
	DeletePreview(ctx context.Context, componentID string) error

	// PreviewStats reports the entry count and total payload size.
	PreviewStats(ctx context.Context) (CacheStats, error)

	// ClearPreviews removes every cached preview and returns how many
	// entries were dropped.
	ClearPreviews(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}

// CredentialRepository provides operations for the stored license
// credential. At most one credential exists at a time.
type CredentialRepository interface {
	// PutCredential stores the credential, replacing any existing one.
	PutCredential(ctx context.Context, credential *Credential) error

	// GetCredential retrieves the stored credential.
	// Returns ErrNotFound if none is stored.
	GetCredential(ctx context.Context) (*Credential, error)

	// DeleteCredential removes the stored credential.
	// Returns ErrNotFound if none is stored.
	DeleteCredential(ctx context.Context) error

	// Close releases resources held by the repository.
	Close() error
}
