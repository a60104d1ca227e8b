// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/tusky-uploader/internal/adapter"
	"github.com/MKhiriev/tusky-uploader/internal/logger"
	"github.com/MKhiriev/tusky-uploader/internal/store"
	"github.com/MKhiriev/tusky-uploader/internal/suikey"
	"github.com/MKhiriev/tusky-uploader/models"
)

// challengePrefix is prepended to the server nonce to form the personal
// message the wallet signs during login.
const challengePrefix = "tusky:connect:"

type authService struct {
	adapter adapter.TuskyAdapter
	store   store.SessionStore
	log     *logger.Logger
}

// NewAuthService builds an [AuthService] on top of the API adapter and the
// durable session store.
func NewAuthService(tuskyAdapter adapter.TuskyAdapter, sessionStore store.SessionStore, log *logger.Logger) AuthService {
	return &authService{adapter: tuskyAdapter, store: sessionStore, log: log}
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, account *models.Account) (*models.AuthSession, error) {
	keys, err := suikey.Resolve(*account)
	if err != nil {
		return nil, err
	}
	address := keys.Address()

	record, err := a.store.GetOrCreate(address)
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}

	// The first proxy hint for an address is bound permanently; later hints
	// never replace it, so a mid-flight re-login keeps the same exit IP.
	if record.Proxy == "" && account.Proxy != "" {
		if err := a.store.BindProxy(address, account.Proxy); err != nil {
			return nil, err
		}
		record.Proxy = account.Proxy
	}

	account.Address = record.Address
	account.UserAgent = record.UserAgent
	account.Fingerprint = record.Fingerprint
	account.Proxy = record.Proxy

	if record.IDToken != "" {
		a.logCachedToken(record)
		account.IDToken = record.IDToken
		return a.session(account), nil
	}

	profile := adapter.Profile{UserAgent: record.UserAgent, Proxy: record.Proxy}

	nonce, err := a.adapter.CreateChallenge(ctx, profile, address)
	if err != nil {
		return nil, err
	}

	signature := keys.SignPersonalMessage([]byte(challengePrefix + nonce))

	token, err := a.adapter.VerifyChallenge(ctx, profile, address, signature)
	if err != nil {
		return nil, err
	}

	record.IDToken = token
	if err := a.store.Put(record); err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}

	account.IDToken = token
	a.log.Info().Int("account", account.Index).Str("address", address).Msg("logged in")
	return a.session(account), nil
}

// Refresh implements [AuthService]. The persisted token is cleared before
// re-login so the cached-token short circuit cannot hand back the token the
// server just rejected.
func (a *authService) Refresh(ctx context.Context, account *models.Account) (*models.AuthSession, error) {
	keys, err := suikey.Resolve(*account)
	if err != nil {
		return nil, err
	}

	record, err := a.store.GetOrCreate(keys.Address())
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}

	record.IDToken = ""
	if err := a.store.Put(record); err != nil {
		return nil, fmt.Errorf("clear session token: %w", err)
	}
	account.IDToken = ""

	return a.Login(ctx, account)
}

func (a *authService) session(account *models.Account) *models.AuthSession {
	return &models.AuthSession{
		IDToken:      account.IDToken,
		Address:      account.Address,
		UserAgent:    account.UserAgent,
		Fingerprint:  account.Fingerprint,
		AccountIndex: account.Index,
	}
}

// logCachedToken notes the reuse of a persisted token. Claims are decoded
// without signature verification, purely for the expiry hint in the log;
// the server remains the only authority on token validity.
func (a *authService) logCachedToken(record models.SessionRecord) {
	event := a.log.Debug().Str("address", record.Address)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(record.IDToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			event = event.Time("expiresAt", exp.Time).Bool("expired", exp.Before(time.Now()))
		}
	}

	event.Msg("reusing cached session token")
}
