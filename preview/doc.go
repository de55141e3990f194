// Package preview caches component preview images. Images are fetched
// from the asset host on first access, persisted through the storage
// layer, and served from the cache afterwards. Prefetch warms the cache
// concurrently over a bounded worker pool.
package preview
