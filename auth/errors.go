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


package auth

import "errors"

var (
	// ErrRepositoryRequired indicates that a credential repository was not provided.
	ErrRepositoryRequired = errors.New("credential repository is required")

	// ErrEmptyKey indicates that the provided license key is empty.
	ErrEmptyKey = errors.New("license key is empty")

	// ErrNoCredential indicates that no license key has been stored.
	ErrNoCredential = errors.New("no license credential stored")

	// ErrKeyMismatch indicates that the provided key does not match the stored digest.
	ErrKeyMismatch = errors.New("license key does not match")
)
