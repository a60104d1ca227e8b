// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package suikey

import (
	"crypto/ed25519"
	"encoding/base64"

	"golang.org/x/crypto/blake2b"
)

// intentPersonalMessage is the Sui intent prefix for personal-message
// signing: scope PersonalMessage (3), intent version V0 (0), app id Sui (0).
var intentPersonalMessage = []byte{3, 0, 0}

// SignPersonalMessage signs message using the Sui personal-message intent
// scheme: the message is BCS-encoded as a byte vector (ULEB128 length prefix
// followed by the bytes), prefixed with the intent bytes, digested with
// blake2b-256 and signed with Ed25519. The returned string is the standard
// serialized Sui signature: base64(flag ‖ signature ‖ pubkey).
func (k *Keypair) SignPersonalMessage(message []byte) string {
	payload := make([]byte, 0, len(intentPersonalMessage)+len(message)+5)
	payload = append(payload, intentPersonalMessage...)
	payload = appendULEB128(payload, uint64(len(message)))
	payload = append(payload, message...)

	digest := blake2b.Sum256(payload)
	sig := ed25519.Sign(k.priv, digest[:])

	serialized := make([]byte, 0, 1+len(sig)+ed25519.PublicKeySize)
	serialized = append(serialized, schemeFlagEd25519)
	serialized = append(serialized, sig...)
	serialized = append(serialized, k.Public()...)

	return base64.StdEncoding.EncodeToString(serialized)
}

// appendULEB128 appends the unsigned LEB128 encoding of v to dst.
func appendULEB128(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}
