// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/tusky-uploader/internal/adapter"
	"github.com/MKhiriev/tusky-uploader/internal/config"
	"github.com/MKhiriev/tusky-uploader/internal/logger"
	"github.com/MKhiriev/tusky-uploader/internal/store"
	"github.com/MKhiriev/tusky-uploader/models"
)

// fakeTusky is an in-memory stand-in for the remote API. It issues nonces,
// verifies real wallet signatures and tracks which tokens are still valid so
// tests can revoke them mid-flight.
type fakeTusky struct {
	mu          sync.Mutex
	nonces      map[string]string
	validTokens map[string]bool
	issued      int

	challengeCalls int
	verifyCalls    int
	storageCalls   int
}

func newFakeTusky() *fakeTusky {
	return &fakeTusky{
		nonces:      make(map[string]string),
		validTokens: make(map[string]bool),
	}
}

func (f *fakeTusky) revokeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validTokens = make(map[string]bool)
}

func (f *fakeTusky) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.URL.Path {
		case "/auth/create-challenge":
			f.challengeCalls++
			var body struct {
				Address string `json:"address"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			nonce := "nonce-" + body.Address[:10]
			f.nonces[body.Address] = nonce
			json.NewEncoder(w).Encode(map[string]string{"nonce": nonce})

		case "/auth/verify-challenge":
			f.verifyCalls++
			var body struct {
				Address   string `json:"address"`
				Signature string `json:"signature"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if !f.verifySignature(t, body.Address, body.Signature) {
				http.Error(w, "bad signature", http.StatusUnauthorized)
				return
			}
			f.issued++
			token := "token-" + strings.Repeat("x", f.issued)
			f.validTokens[token] = true
			json.NewEncoder(w).Encode(map[string]string{"idToken": token})

		case "/storage":
			f.storageCalls++
			token := strings.TrimPrefix(r.Header.Get("authorization"), "Bearer ")
			if !f.validTokens[token] {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(models.StorageInfo{StorageAvailable: 1000, StorageTotal: 5000})

		default:
			http.NotFound(w, r)
		}
	}
}

// verifySignature checks the serialized wallet signature against the nonce
// previously issued for the address: flag byte, Ed25519 over the
// personal-message digest, and the pubkey-to-address binding.
func (f *fakeTusky) verifySignature(t *testing.T, address, signature string) bool {
	nonce, ok := f.nonces[address]
	if !ok {
		return false
	}

	raw, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	require.Len(t, raw, 1+ed25519.SignatureSize+ed25519.PublicKeySize)
	require.Equal(t, byte(0x00), raw[0])

	sig := raw[1 : 1+ed25519.SignatureSize]
	pub := ed25519.PublicKey(raw[1+ed25519.SignatureSize:])

	h, _ := blake2b.New256(nil)
	h.Write([]byte{0x00})
	h.Write(pub)
	if "0x"+hex.EncodeToString(h.Sum(nil)) != address {
		return false
	}

	message := []byte("tusky:connect:" + nonce)
	payload := append([]byte{3, 0, 0}, byte(len(message)))
	payload = append(payload, message...)
	digest := blake2b.Sum256(payload)

	return ed25519.Verify(pub, digest[:], sig)
}

func newIntegrationServices(t *testing.T, fake *fakeTusky) (*Services, store.SessionStore) {
	t.Helper()

	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	tuskyAdapter := adapter.NewTuskyAdapter(server.URL, 5*time.Second, logger.Nop())
	sessionStore := store.NewFileSessionStore(filepath.Join(t.TempDir(), "tokens.txt"), logger.Nop())
	services := NewServices(tuskyAdapter, sessionStore, config.Storage{ImagesDir: t.TempDir()}, logger.Nop())

	return services, sessionStore
}

func TestIntegration_LoginThenCachedToken(t *testing.T) {
	fake := newFakeTusky()
	services, _ := newIntegrationServices(t, fake)
	ctx := context.Background()

	account := models.Account{Index: 1, Mnemonic: testMnemonic}
	first, err := services.AuthService.Login(ctx, &account)
	require.NoError(t, err)
	assert.NotEmpty(t, first.IDToken)
	assert.Equal(t, 1, fake.challengeCalls)
	assert.Equal(t, 1, fake.verifyCalls)

	// A second login for the same wallet must reuse the persisted token
	// without touching the auth endpoints.
	again := models.Account{Index: 1, Mnemonic: testMnemonic}
	second, err := services.AuthService.Login(ctx, &again)
	require.NoError(t, err)
	assert.Equal(t, first.IDToken, second.IDToken)
	assert.Equal(t, first.UserAgent, second.UserAgent)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, 1, fake.challengeCalls)
	assert.Equal(t, 1, fake.verifyCalls)
}

func TestIntegration_RevokedTokenRecovers(t *testing.T) {
	fake := newFakeTusky()
	services, sessionStore := newIntegrationServices(t, fake)
	ctx := context.Background()

	account := models.Account{Index: 1, Mnemonic: testMnemonic}
	first, err := services.AuthService.Login(ctx, &account)
	require.NoError(t, err)

	// Simulate server-side token revocation between calls.
	fake.revokeAll()

	info, err := services.UploadService.FetchStorageInfo(ctx, &account)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), info.StorageAvailable)

	// Recovery went through the full flow: a second challenge round and a
	// rotated token, both in memory and on disk.
	assert.Equal(t, 2, fake.challengeCalls)
	assert.Equal(t, 2, fake.verifyCalls)
	assert.Equal(t, 2, fake.storageCalls)
	assert.NotEqual(t, first.IDToken, account.IDToken)

	record, err := sessionStore.GetOrCreate(account.Address)
	require.NoError(t, err)
	assert.Equal(t, account.IDToken, record.IDToken)
}

func TestIntegration_TwoAccountsIsolatedIdentities(t *testing.T) {
	fake := newFakeTusky()
	services, _ := newIntegrationServices(t, fake)
	ctx := context.Background()

	// Second well-known BIP-39 phrase, distinct wallet.
	const otherMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

	one := models.Account{Index: 1, Mnemonic: testMnemonic}
	two := models.Account{Index: 2, Mnemonic: otherMnemonic}

	_, err := services.AuthService.Login(ctx, &one)
	require.NoError(t, err)
	_, err = services.AuthService.Login(ctx, &two)
	require.NoError(t, err)

	assert.NotEqual(t, one.Address, two.Address)
	assert.NotEqual(t, one.IDToken, two.IDToken)
	assert.Equal(t, 2, fake.verifyCalls)
}
