// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/tusky-uploader/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// SessionStore is the durable per-address state keyed by lower-cased wallet
// address. Implementations are not required to be concurrent-safe: the
// application processes exactly one account at a time, and every mutation is
// a read-modify-write of the whole backing file.
type SessionStore interface {
	// GetOrCreate returns the session record for address, creating and
	// persisting a new one with a freshly generated user-agent and
	// fingerprint on first encounter. Repeated calls for the same address
	// always return the same user-agent and fingerprint.
	GetOrCreate(address string) (models.SessionRecord, error)

	// BindProxy binds proxy to the address's record and persists it, unless
	// a proxy is already bound — the first successful binding is sticky and
	// later hints never replace it. The record must already exist.
	BindProxy(address, proxy string) error

	// Put overwrites the address's whole record and persists the store.
	Put(record models.SessionRecord) error
}
