// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/tusky-uploader/internal/adapter"
	"github.com/MKhiriev/tusky-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// AuthService establishes and maintains an authenticated Tusky session for
// one account. Both methods mutate the account in place: they fill in the
// derived wallet address, the stable user-agent and fingerprint, the sticky
// proxy and the bearer token.
type AuthService interface {
	// Login returns a ready session for the account. When the session store
	// already holds a token for the account's address the cached token is
	// reused and no network call is made; otherwise the full
	// challenge-sign-verify flow runs and the fresh token is persisted.
	Login(ctx context.Context, account *models.Account) (*models.AuthSession, error)

	// Refresh discards the persisted token for the account's address and
	// forces a full re-login. Used after the API rejects a token with 401.
	Refresh(ctx context.Context, account *models.Account) (*models.AuthSession, error)
}

// UploadService performs the authenticated Tusky operations for one account.
// Every method recovers from a single stale-token rejection by refreshing the
// session and retrying the operation exactly once.
type UploadService interface {
	// FetchStorageInfo returns the account's storage quota.
	FetchStorageInfo(ctx context.Context, account *models.Account) (models.StorageInfo, error)

	// CreatePublicVault creates an unencrypted vault with a generated name
	// and returns it.
	CreatePublicVault(ctx context.Context, account *models.Account) (models.Vault, error)

	// UploadFiles picks a small random batch of images and uploads them to
	// the vault one by one, pausing a few seconds between files. The vault
	// identifier and its root folder identifier must both be canonical
	// UUIDs; anything else fails before a single byte is sent.
	UploadFiles(ctx context.Context, account *models.Account, vault models.Vault) error
}

// ImagePool supplies the image files used as upload payloads.
type ImagePool interface {
	// Pick returns count randomly chosen images from the pool. It fails when
	// the pool is empty; when count exceeds the pool size every image is
	// returned once.
	Pick(count int) ([]adapter.UploadFile, error)
}
