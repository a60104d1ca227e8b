// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/tusky-uploader/internal/adapter"
	"github.com/MKhiriev/tusky-uploader/internal/logger"
	"github.com/MKhiriev/tusky-uploader/models"
)

const (
	minFilesPerBatch = 1
	maxFilesPerBatch = 3

	// Pause between consecutive file uploads: 5s plus up to 5s of jitter.
	interFileDelayBase   = 5 * time.Second
	interFileDelayJitter = 5 * time.Second
)

type uploadService struct {
	adapter adapter.TuskyAdapter
	auth    AuthService
	images  ImagePool
	log     *logger.Logger

	// sleep is swappable in tests so jitter does not slow them down.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewUploadService builds an [UploadService]. The auth service is consulted
// only when the API rejects the current token.
func NewUploadService(tuskyAdapter adapter.TuskyAdapter, auth AuthService, images ImagePool, log *logger.Logger) UploadService {
	return &uploadService{
		adapter: tuskyAdapter,
		auth:    auth,
		images:  images,
		log:     log,
		sleep:   sleepCtx,
	}
}

// FetchStorageInfo implements [UploadService].
func (u *uploadService) FetchStorageInfo(ctx context.Context, account *models.Account) (models.StorageInfo, error) {
	var info models.StorageInfo
	err := u.withAuthRetry(ctx, account, func(profile adapter.Profile) error {
		var err error
		info, err = u.adapter.GetStorage(ctx, profile)
		return err
	})
	if err != nil {
		return models.StorageInfo{}, err
	}

	u.log.Info().
		Int("account", account.Index).
		Int64("available", info.StorageAvailable).
		Int64("total", info.StorageTotal).
		Msg("storage info")
	return info, nil
}

// CreatePublicVault implements [UploadService].
func (u *uploadService) CreatePublicVault(ctx context.Context, account *models.Account) (models.Vault, error) {
	name := GenerateVaultName()

	var vault models.Vault
	err := u.withAuthRetry(ctx, account, func(profile adapter.Profile) error {
		var err error
		vault, err = u.adapter.CreateVault(ctx, profile, name)
		return err
	})
	if err != nil {
		return models.Vault{}, err
	}

	// The API does not report the root folder; the vault root is the folder
	// sharing the vault's identifier.
	vault.RootFolderID = vault.ID

	u.log.Info().
		Int("account", account.Index).
		Str("vaultId", vault.ID).
		Str("name", vault.Name).
		Msg("vault created")
	return vault, nil
}

// UploadFiles implements [UploadService]. Both vault identifiers are
// validated before any image is read or any request is sent.
func (u *uploadService) UploadFiles(ctx context.Context, account *models.Account, vault models.Vault) error {
	for _, id := range []string{vault.ID, vault.RootFolderID} {
		if len(id) != 36 {
			return fmt.Errorf("%w: %q", ErrInvalidVaultID, id)
		}
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidVaultID, id)
		}
	}

	count := minFilesPerBatch + rand.IntN(maxFilesPerBatch-minFilesPerBatch+1)
	files, err := u.images.Pick(count)
	if err != nil {
		return err
	}

	for i, file := range files {
		if i > 0 {
			delay := interFileDelayBase + time.Duration(rand.Int64N(int64(interFileDelayJitter)))
			if err := u.sleep(ctx, delay); err != nil {
				return err
			}
		}

		var uploadID string
		err := u.withAuthRetry(ctx, account, func(profile adapter.Profile) error {
			var err error
			uploadID, err = u.adapter.UploadFile(ctx, profile, vault, file)
			return err
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", file.Name, err)
		}

		u.log.Info().
			Int("account", account.Index).
			Str("file", file.Name).
			Str("uploadId", uploadID).
			Msgf("uploaded file %d/%d", i+1, len(files))
	}

	return nil
}

// withAuthRetry runs op with the account's current credentials. On a 401 it
// refreshes the session and retries exactly once; a second rejection, or a
// failed refresh, propagates to the caller.
func (u *uploadService) withAuthRetry(ctx context.Context, account *models.Account, op func(profile adapter.Profile) error) error {
	err := op(profileFor(account))
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	u.log.Warn().Int("account", account.Index).Msg("token rejected, re-authenticating")

	session, refreshErr := u.auth.Refresh(ctx, account)
	if refreshErr != nil {
		return fmt.Errorf("%w: %v", ErrTokenRefreshFailed, refreshErr)
	}
	if session == nil || session.IDToken == "" {
		return ErrTokenRefreshFailed
	}
	account.IDToken = session.IDToken

	return op(profileFor(account))
}

func profileFor(account *models.Account) adapter.Profile {
	return adapter.Profile{
		UserAgent: account.UserAgent,
		Proxy:     account.Proxy,
		Token:     account.IDToken,
	}
}

// sleepCtx waits for d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
