// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the HTTP client for the Tusky storage API.
// Each request is sent through a client configured for a single account
// profile, so the user-agent, fingerprint-consistent headers, proxy and
// bearer token always travel together.
package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/tusky-uploader/internal/logger"
	"github.com/MKhiriev/tusky-uploader/models"
)

type tuskyAdapter struct {
	baseURL string
	timeout time.Duration
	log     *logger.Logger
}

// NewTuskyAdapter returns a [TuskyAdapter] talking to the API at baseURL.
// Every request carries an explicit timeout; the address is normalized so
// both "api.tusky.io" and "https://api.tusky.io/" work.
func NewTuskyAdapter(baseURL string, timeout time.Duration, log *logger.Logger) TuskyAdapter {
	return &tuskyAdapter{
		baseURL: normalizeBaseURL(baseURL),
		timeout: timeout,
		log:     log,
	}
}

type challengeRequest struct {
	Address string `json:"address"`
}

type challengeResponse struct {
	Nonce string `json:"nonce"`
}

type verifyRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

type verifyResponse struct {
	IDToken string `json:"idToken"`
}

type createVaultRequest struct {
	Name      string   `json:"name"`
	Encrypted bool     `json:"encrypted"`
	Tags      []string `json:"tags"`
}

type uploadResponse struct {
	UploadID string `json:"uploadId"`
}

// CreateChallenge implements [TuskyAdapter].
func (a *tuskyAdapter) CreateChallenge(ctx context.Context, profile Profile, address string) (string, error) {
	var body challengeResponse
	resp, err := a.newClient(profile).R().
		SetContext(ctx).
		SetBody(challengeRequest{Address: address}).
		SetResult(&body).
		Post("/auth/create-challenge")
	if err != nil {
		return "", fmt.Errorf("create challenge: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("create challenge: %w", err)
	}

	return body.Nonce, nil
}

// VerifyChallenge implements [TuskyAdapter].
func (a *tuskyAdapter) VerifyChallenge(ctx context.Context, profile Profile, address, signature string) (string, error) {
	var body verifyResponse
	resp, err := a.newClient(profile).R().
		SetContext(ctx).
		SetBody(verifyRequest{Address: address, Signature: signature}).
		SetResult(&body).
		Post("/auth/verify-challenge")
	if err != nil {
		return "", fmt.Errorf("verify challenge: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("verify challenge: %w", err)
	}

	return body.IDToken, nil
}

// GetStorage implements [TuskyAdapter].
func (a *tuskyAdapter) GetStorage(ctx context.Context, profile Profile) (models.StorageInfo, error) {
	var body models.StorageInfo
	resp, err := a.newClient(profile).R().
		SetContext(ctx).
		SetResult(&body).
		Get("/storage")
	if err != nil {
		return models.StorageInfo{}, fmt.Errorf("get storage: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.StorageInfo{}, fmt.Errorf("get storage: %w", err)
	}

	return body, nil
}

// CreateVault implements [TuskyAdapter].
func (a *tuskyAdapter) CreateVault(ctx context.Context, profile Profile, name string) (models.Vault, error) {
	var body models.Vault
	resp, err := a.newClient(profile).R().
		SetContext(ctx).
		SetBody(createVaultRequest{Name: name, Encrypted: false, Tags: []string{}}).
		SetResult(&body).
		Post("/vaults")
	if err != nil {
		return models.Vault{}, fmt.Errorf("create vault: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.Vault{}, fmt.Errorf("create vault: %w", err)
	}

	return body, nil
}

// UploadFile implements [TuskyAdapter]. The whole file goes up in a single
// request: raw bytes in the body, size and base64 key-value metadata in the
// resumable-upload headers.
func (a *tuskyAdapter) UploadFile(ctx context.Context, profile Profile, vault models.Vault, file UploadFile) (string, error) {
	var body uploadResponse
	resp, err := a.newClient(profile).R().
		SetContext(ctx).
		SetHeader("content-type", "application/offset+octet-stream").
		SetHeader("tus-resumable", "1.0.0").
		SetHeader("upload-length", strconv.Itoa(len(file.Data))).
		SetHeader("upload-metadata", encodeUploadMetadata(vault, file)).
		SetQueryParam("vaultId", vault.ID).
		SetBody(file.Data).
		SetResult(&body).
		Post("/uploads")
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}

	a.log.Debug().
		Str("vaultId", vault.ID).
		Str("file", file.Name).
		Int("size", len(file.Data)).
		Str("uploadId", body.UploadID).
		Msg("file uploaded")
	return body.UploadID, nil
}

// newClient builds a resty client bound to one account profile. A fresh
// client per call keeps profiles from leaking into each other's requests.
func (a *tuskyAdapter) newClient(profile Profile) *resty.Client {
	client := resty.New().
		SetBaseURL(a.baseURL).
		SetTimeout(a.timeout).
		SetHeaders(commonHeaders(profile.UserAgent))

	if profile.Proxy != "" {
		client.SetProxy(profile.Proxy)
	}
	if profile.Token != "" {
		client.SetHeader("authorization", "Bearer "+profile.Token)
	}

	return client
}

// commonHeaders reproduces the header set the Tusky web application sends,
// with the client-hint platform kept consistent with the user-agent.
func commonHeaders(userAgent string) map[string]string {
	return map[string]string{
		"accept":             "application/json, text/plain, */*",
		"accept-language":    "en-US,en;q=0.8",
		"client-name":        "Tusky-App/dev",
		"sdk-version":        "Tusky-SDK/0.31.0",
		"priority":           "u=1, i",
		"user-agent":         userAgent,
		"sec-ch-ua":          `"Chromium";v="136", "Brave";v="136", "Not.A/Brand";v="99"`,
		"sec-ch-ua-mobile":   "?0",
		"sec-ch-ua-platform": platformHint(userAgent),
		"sec-fetch-dest":     "empty",
		"sec-fetch-mode":     "cors",
		"sec-fetch-site":     "same-site",
		"sec-gpc":            "1",
		"referer":            "https://app.tusky.io/",
	}
}

// platformHint derives the sec-ch-ua-platform value from the OS marker in
// the user-agent string.
func platformHint(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Macintosh"):
		return `"macOS"`
	case strings.Contains(userAgent, "Linux"):
		return `"Linux"`
	default:
		return `"Windows"`
	}
}

// encodeUploadMetadata assembles the upload-metadata header: comma-separated
// "key base64(value)" pairs in a fixed order. Every value is encoded exactly
// once; relativePath is the literal string "null" for top-level files.
func encodeUploadMetadata(vault models.Vault, file UploadFile) string {
	pairs := [][2]string{
		{"vaultId", vault.ID},
		{"parentId", vault.RootFolderID},
		{"relativePath", "null"},
		{"name", file.Name},
		{"type", file.ContentType},
		{"filetype", file.ContentType},
		{"filename", file.Name},
	}

	encoded := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		encoded = append(encoded, pair[0]+" "+base64.StdEncoding.EncodeToString([]byte(pair[1])))
	}

	return strings.Join(encoded, ",")
}

// mapHTTPError converts a non-2xx response into an error. 401 wraps
// [ErrUnauthorized] so the caller can recognize an expired or revoked token.
func mapHTTPError(resp *resty.Response) error {
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == 401:
		return fmt.Errorf("%w: %s", ErrUnauthorized, strings.TrimSpace(string(resp.Body())))
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
}

// normalizeBaseURL adds the https scheme when missing and strips a trailing
// slash so path joining stays predictable.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return baseURL
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}
	return strings.TrimRight(baseURL, "/")
}
