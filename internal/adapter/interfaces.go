// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/tusky-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// Profile carries the per-account client identity every request is sent
// with: the stable synthetic user-agent, the sticky proxy (empty for a
// direct connection) and the bearer token (empty for the unauthenticated
// challenge/verify calls).
type Profile struct {
	UserAgent string
	Proxy     string
	Token     string
}

// UploadFile is one file to be transferred to a vault.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// TuskyAdapter is the outbound contract against the Tusky storage API.
// Every method returns [ErrUnauthorized] (wrapped) on HTTP 401 so callers
// can run their lazy token-refresh policy; other non-2xx responses map to an
// error carrying the status and response body.
type TuskyAdapter interface {
	// CreateChallenge requests a login nonce for the given wallet address.
	// POST /auth/create-challenge, unauthenticated.
	CreateChallenge(ctx context.Context, profile Profile, address string) (string, error)

	// VerifyChallenge submits the signed challenge and returns the issued
	// bearer token. POST /auth/verify-challenge, unauthenticated.
	VerifyChallenge(ctx context.Context, profile Profile, address, signature string) (string, error)

	// GetStorage returns the account's storage quota. GET /storage.
	GetStorage(ctx context.Context, profile Profile) (models.StorageInfo, error)

	// CreateVault creates an unencrypted public vault with the given name
	// and no tags. POST /vaults.
	CreateVault(ctx context.Context, profile Profile, name string) (models.Vault, error)

	// UploadFile posts the raw file bytes to the vault using the resumable
	// upload convention (tus headers plus base64 key-value metadata) and
	// returns the upload identifier. POST /uploads?vaultId=…
	UploadFile(ctx context.Context, profile Profile, vault models.Vault, file UploadFile) (string, error)
}
