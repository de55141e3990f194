package storage

// PreviewRecord is a cached preview image for one component.
type PreviewRecord struct {
	// ComponentID is the catalog id the preview belongs to.
	ComponentID string

	// URL is the source the image was fetched from.
	URL string

	// ContentType is the Content-Type reported by the source.
	ContentType string

	// Data is the raw image payload.
	Data []byte

	// FetchedAt is the fetch time in Unix microseconds.
	FetchedAt int64
}

// Credential is the stored license credential. Only a digest of the key is
// kept; the key itself never touches disk.
type Credential struct {
	// Digest is the BLAKE2b digest of the license key.
	Digest []byte

	// CreatedAt is the store time in Unix microseconds.
	CreatedAt int64
}

// CacheStats summarizes the preview cache contents.
type CacheStats struct {
	// Entries is the number of cached previews.
	Entries int `json:"entries"`

	// Bytes is the total size of the cached payloads.
	Bytes int64 `json:"bytes"`
}
