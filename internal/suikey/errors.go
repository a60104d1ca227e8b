// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package suikey

import "errors"

var (
	// ErrNoCredential indicates an account with neither a private key nor a
	// mnemonic — a configuration error that makes the account unusable.
	ErrNoCredential = errors.New("no usable credential")
	// ErrInvalidPrivateKey indicates a private key string that is not a
	// valid bech32-encoded Ed25519 Sui key.
	ErrInvalidPrivateKey = errors.New("invalid private key")
	// ErrInvalidMnemonic indicates a phrase that fails BIP-39 validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)
