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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// PreviewRecordMUS serializes PreviewRecord with the MUS format.
var PreviewRecordMUS = previewRecordMUS{}

type previewRecordMUS struct{}

func (previewRecordMUS) Marshal(r PreviewRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.ComponentID, bs)
	n += ord.String.Marshal(r.URL, bs[n:])
	n += ord.String.Marshal(r.ContentType, bs[n:])
	n += ord.ByteSlice.Marshal(r.Data, bs[n:])
	n += varint.Int64.Marshal(r.FetchedAt, bs[n:])
	return n
}

func (previewRecordMUS) Unmarshal(bs []byte) (r PreviewRecord, n int, err error) {
	var n1 int
	r.ComponentID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.ContentType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Data, n1, err = ord.ByteSlice.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.FetchedAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (previewRecordMUS) Size(r PreviewRecord) (size int) {
	size = ord.String.Size(r.ComponentID)
	size += ord.String.Size(r.URL)
	size += ord.String.Size(r.ContentType)
	size += ord.ByteSlice.Size(r.Data)
	size += varint.Int64.Size(r.FetchedAt)
	return size
}

// CredentialMUS serializes Credential with the MUS format.
var CredentialMUS = credentialMUS{}

type credentialMUS struct{}

func (credentialMUS) Marshal(c Credential, bs []byte) (n int) {
	n = ord.ByteSlice.Marshal(c.Digest, bs)
	n += varint.Int64.Marshal(c.CreatedAt, bs[n:])
	return n
}

func (credentialMUS) Unmarshal(bs []byte) (c Credential, n int, err error) {
	var n1 int
	c.Digest, n, err = ord.ByteSlice.Unmarshal(bs)
	if err != nil {
		return
	}
	c.CreatedAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (credentialMUS) Size(c Credential) (size int) {
	size = ord.ByteSlice.Size(c.Digest)
	size += varint.Int64.Size(c.CreatedAt)
	return size
}

// MarshalPreviewRecord serializes a PreviewRecord to bytes.
func MarshalPreviewRecord(record *PreviewRecord) []byte {
	buf := make([]byte, PreviewRecordMUS.Size(*record))
	PreviewRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalPreviewRecord deserializes a PreviewRecord from bytes.
func UnmarshalPreviewRecord(data []byte) (*PreviewRecord, error) {
	record, _, err := PreviewRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}

// MarshalCredential serializes a Credential to bytes.
func MarshalCredential(credential *Credential) []byte {
	buf := make([]byte, CredentialMUS.Size(*credential))
	CredentialMUS.Marshal(*credential, buf)
	return buf
}

// UnmarshalCredential deserializes a Credential from bytes.
func UnmarshalCredential(data []byte) (*Credential, error) {
	credential, _, err := CredentialMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &credential, nil
}
