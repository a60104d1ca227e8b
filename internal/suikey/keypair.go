// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package suikey resolves a configured wallet credential — a bech32-encoded
// Sui private key or a BIP-39 mnemonic phrase — into an Ed25519 keypair,
// the derived Sui address, and a personal-message signing capability.
//
// Resolution is a pure, deterministic function of the credential: the same
// input always yields the same address. The session store is keyed by
// address, so this determinism is load-bearing.
package suikey

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/tusky-uploader/models"
)

const (
	// privateKeyHRP is the bech32 human-readable part of an encoded Sui
	// private key.
	privateKeyHRP = "suiprivkey"

	// schemeFlagEd25519 is the Sui signature-scheme flag byte for Ed25519.
	schemeFlagEd25519 = 0x00

	hardenedOffset = uint32(0x80000000)
)

// derivationPath is the standard Sui wallet path m/44'/784'/0'/0'/0'
// (all segments hardened, as SLIP-0010 Ed25519 requires).
var derivationPath = []uint32{44, 784, 0, 0, 0}

// Keypair wraps an Ed25519 private key resolved from a wallet credential.
type Keypair struct {
	priv ed25519.PrivateKey
}

// Resolve derives a [Keypair] from the account's credential material.
// A mnemonic takes precedence when both credentials are present. Returns
// [ErrNoCredential] if the account carries neither.
func Resolve(account models.Account) (*Keypair, error) {
	switch {
	case account.Mnemonic != "":
		return FromMnemonic(account.Mnemonic)
	case account.PrivateKey != "":
		return FromPrivateKey(account.PrivateKey)
	default:
		return nil, fmt.Errorf("%w for account %d", ErrNoCredential, account.Index)
	}
}

// FromPrivateKey decodes a bech32 "suiprivkey..." string into a [Keypair].
// The decoded payload is 33 bytes: a scheme flag followed by the 32-byte
// Ed25519 seed. Only the Ed25519 scheme is supported.
func FromPrivateKey(encoded string) (*Keypair, error) {
	hrp, data, err := bech32.Decode(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if hrp != privateKeyHRP {
		return nil, fmt.Errorf("%w: unexpected prefix %q", ErrInvalidPrivateKey, hrp)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if len(raw) != 1+ed25519.SeedSize {
		return nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidPrivateKey, len(raw), 1+ed25519.SeedSize)
	}
	if raw[0] != schemeFlagEd25519 {
		return nil, fmt.Errorf("%w: unsupported signature scheme 0x%02x", ErrInvalidPrivateKey, raw[0])
	}

	return &Keypair{priv: ed25519.NewKeyFromSeed(raw[1:])}, nil
}

// FromMnemonic derives a [Keypair] from a BIP-39 mnemonic phrase via
// SLIP-0010 Ed25519 derivation along the standard Sui path
// m/44'/784'/0'/0'/0'. The BIP-39 passphrase is empty, matching the Sui
// wallet convention.
func FromMnemonic(mnemonic string) (*Keypair, error) {
	phrase := strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidMnemonic
	}

	seed := bip39.NewSeed(phrase, "")
	key, chain := slip10Master(seed)
	for _, segment := range derivationPath {
		key, chain = slip10Child(key, chain, segment|hardenedOffset)
	}

	return &Keypair{priv: ed25519.NewKeyFromSeed(key)}, nil
}

// Public returns the Ed25519 public key of the keypair.
func (k *Keypair) Public() ed25519.PublicKey {
	return k.priv.Public().(ed25519.PublicKey)
}

// Address returns the Sui address derived from the keypair:
// "0x" + hex(blake2b-256(flag ‖ pubkey)), always 66 characters.
func (k *Keypair) Address() string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte{schemeFlagEd25519})
	h.Write(k.Public())
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// slip10Master computes the SLIP-0010 Ed25519 master key and chain code
// from a BIP-39 seed.
func slip10Master(seed []byte) (key, chain []byte) {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// slip10Child computes one hardened SLIP-0010 Ed25519 child derivation step.
// index must already include the hardened offset.
func slip10Child(key, chain []byte, index uint32) ([]byte, []byte) {
	data := make([]byte, 0, 1+len(key)+4)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, chain)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
