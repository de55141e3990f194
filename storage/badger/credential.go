package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stencilui/stencil/storage"
)

// CredentialRepository implements storage.CredentialRepository for BadgerDB.
type CredentialRepository struct {
	backend *Backend
}

var _ storage.CredentialRepository = (*CredentialRepository)(nil)

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(backend *Backend) *CredentialRepository {
	return &CredentialRepository{backend: backend}
}

// Close implements storage.CredentialRepository.
func (r *CredentialRepository) Close() error {
	return nil
}

// PutCredential stores the credential, replacing any existing one.
func (r *CredentialRepository) PutCredential(ctx context.Context, credential *storage.Credential) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeCredentialKey(), storage.MarshalCredential(credential)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetCredential retrieves the stored credential.
func (r *CredentialRepository) GetCredential(ctx context.Context) (*storage.Credential, error) {
	var credential *storage.Credential

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCredentialKey())
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			credential, err = storage.UnmarshalCredential(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return credential, nil
}

// DeleteCredential removes the stored credential.
func (r *CredentialRepository) DeleteCredential(ctx context.Context) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCredentialKey()
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
