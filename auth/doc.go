// Package auth manages the license credential used for catalog asset
// access. Keys are stored as BLAKE2b digests and compared in constant
// time.
package auth
