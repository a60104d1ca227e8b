// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialKind identifies which credential material an account was
// configured with.
type CredentialKind string

const (
	// CredentialPrivateKey marks an account configured with a raw
	// bech32-encoded Sui private key.
	CredentialPrivateKey CredentialKind = "privateKey"
	// CredentialMnemonic marks an account configured with a BIP-39
	// mnemonic phrase.
	CredentialMnemonic CredentialKind = "mnemonic"
)

// Account is one configured wallet identity. It is built once from the
// environment at process start and mutated in place as login populates the
// runtime fields. The struct itself is never persisted; durable per-address
// state lives in [SessionRecord].
type Account struct {
	// Index is the 1-based position of the account in the configuration.
	Index int
	// Kind records which credential was found for the account.
	Kind CredentialKind
	// PrivateKey is the raw "suiprivkey..." string, empty if the account
	// uses a mnemonic.
	PrivateKey string
	// Mnemonic is the BIP-39 phrase, empty if the account uses a private key.
	Mnemonic string

	// Runtime fields, populated by a successful login.
	Address     string
	IDToken     string
	UserAgent   string
	Proxy       string
	Fingerprint Fingerprint
}
