// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoAccounts indicates that account discovery produced an empty set.
	// The process must not idle with nothing to do.
	ErrNoAccounts = errors.New("no accounts configured")

	// ErrTokenRefreshFailed indicates that re-login after a 401 rejection did
	// not yield a usable token, so the failed operation cannot be retried.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// ErrInvalidVaultID indicates a vault identifier that is not a canonical
	// UUID. Uploads refuse to start against such a vault.
	ErrInvalidVaultID = errors.New("invalid vault id")

	// ErrNoImages indicates an empty image pool directory.
	ErrNoImages = errors.New("no images available")
)
