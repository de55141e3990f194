// Copyright 2026 Stencil Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package preview

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreRequired indicates that a catalog store was not provided.
	ErrStoreRequired = errors.New("catalog store is required")

	// ErrRepositoryRequired indicates that a preview repository was not provided.
	ErrRepositoryRequired = errors.New("preview repository is required")

	// ErrNoPreviewURL indicates that the component declares no preview image.
	ErrNoPreviewURL = errors.New("component has no preview url")

	// ErrDownloadFailed indicates that fetching a preview image failed.
	ErrDownloadFailed = errors.New("preview download failed")
)

// DownloadError reports a failed preview fetch. Status is zero when the
// request never produced a response.
type DownloadError struct {
	ComponentID string
	URL         string
	Status      int
	Err         error
}

func (e *DownloadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("preview download failed: %s returned status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("preview download failed: %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDownloadFailed, e.Err}
	}
	return []error{ErrDownloadFailed}
}
