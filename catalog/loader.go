package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/stencilui/stencil/core"
)

// schemaVersion is the dataset format the loader understands. Bumped when
// the catalog compiler changes the record layout.
const schemaVersion = 1

// dataset is the on-disk shape of a compiled catalog.
type dataset struct {
	SchemaVersion int                  `json:"schemaVersion"`
	BuiltAt       string               `json:"builtAt"`
	Categories    []*core.CategoryNode `json:"categories"`
	Components    []*core.Component    `json:"components"`
}

// Load decodes a compiled catalog dataset and builds the Store from it.
// Any decode failure or integrity violation is returned as an error; the
// caller treats it as fatal, since a process with a broken catalog must
// not serve queries.
func Load(data []byte) (*Store, error) {
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	if ds.SchemaVersion != schemaVersion {
		return nil, fmt.Errorf("%w: schema version %d, want %d",
			ErrMalformedData, ds.SchemaVersion, schemaVersion)
	}

	store, err := NewStore(ds.Components, ds.Categories)
	if err != nil {
		return nil, err
	}
	store.builtAt = ds.BuiltAt
	return store, nil
}
