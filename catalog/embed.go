package catalog

import _ "embed"

// The compiled catalog dataset ships inside the binary. It is produced by
// the catalog compiler and committed alongside the code that reads it.
//
//go:embed data/catalog.json
var embedded []byte

// LoadEmbedded builds the Store from the compiled-in dataset.
func LoadEmbedded() (*Store, error) {
	return Load(embedded)
}
