// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Vault is a named storage container created once per account per daily run.
// The provider models the vault root as a folder sharing the vault's
// identifier, so RootFolderID always equals ID. Vaults are never persisted
// locally; they are referenced only during the run that created them.
type Vault struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RootFolderID string `json:"rootFolderId"`
	Size         int64  `json:"size"`
	Owner        string `json:"owner"`
}

// StorageInfo is the account's storage quota as reported by the service.
type StorageInfo struct {
	StorageAvailable int64  `json:"storageAvailable"`
	StorageTotal     int64  `json:"storageTotal"`
	Photos           int64  `json:"photos"`
	Owner            string `json:"owner"`
}
