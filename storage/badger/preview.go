package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stencilui/stencil/storage"
)

// PreviewRepository implements storage.PreviewRepository for BadgerDB.
type PreviewRepository struct {
	backend *Backend
}

var _ storage.PreviewRepository = (*PreviewRepository)(nil)

// NewPreviewRepository creates a new PreviewRepository.
func NewPreviewRepository(backend *Backend) *PreviewRepository {
	return &PreviewRepository{backend: backend}
}

// Close implements storage.PreviewRepository. The repository holds no
// resources of its own; the backend is closed by its owner.
func (r *PreviewRepository) Close() error {
	return nil
}

// PutPreview stores a preview record, replacing any existing entry.
func (r *PreviewRepository) PutPreview(ctx context.Context, record *storage.PreviewRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePreviewKey(record.ComponentID)
		if err := tx.Set(key, storage.MarshalPreviewRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetPreview retrieves the cached preview for a component.
func (r *PreviewRepository) GetPreview(ctx context.Context, componentID string) (*storage.PreviewRecord, error) {
	var record *storage.PreviewRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePreviewKey(componentID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalPreviewRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// DeletePreview removes the cached preview for a component.
func (r *PreviewRepository) DeletePreview(ctx context.Context, componentID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePreviewKey(componentID)
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

// PreviewStats reports the entry count and total payload size of the cache.
func (r *PreviewRepository) PreviewStats(ctx context.Context) (storage.CacheStats, error) {
	var stats storage.CacheStats

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(previewPrefix + ":")
		// Value sizes come from item metadata; no need to fetch payloads.
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			stats.Entries++
			stats.Bytes += iter.Item().ValueSize()
		}
		return nil
	}, false)

	return stats, err
}

// ClearPreviews removes every cached preview.
func (r *PreviewRepository) ClearPreviews(ctx context.Context) (int, error) {
	var dropped int

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(previewPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		dropped = len(keys)
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}

	return dropped, nil
}
