// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Screen is the synthetic display descriptor embedded in a [Fingerprint].
type Screen struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	ColorDepth int `json:"colorDepth"`
}

// Fingerprint is a synthetic client-environment descriptor assigned to an
// address once and kept stable for its whole lifetime, so a given identity
// always presents the same client signature to the remote service.
type Fingerprint struct {
	DoNotTrack          string `json:"doNotTrack"`
	Language            string `json:"language"`
	Platform            string `json:"platform"`
	HardwareConcurrency int    `json:"hardwareConcurrency"`
	MaxTouchPoints      int    `json:"maxTouchPoints"`
	DeviceMemory        int    `json:"deviceMemory"`
	Vendor              string `json:"vendor"`
	Screen              Screen `json:"screen"`
}

// SessionRecord is the durable per-address state, persisted as one JSON line
// in the session file. Address is always stored lower-cased.
//
// Invariants: UserAgent and Fingerprint are assigned on creation and never
// regenerated; Proxy is sticky — once bound it survives later runs even if a
// different proxy is offered.
type SessionRecord struct {
	Address     string      `json:"address"`
	IDToken     string      `json:"idToken,omitempty"`
	UserAgent   string      `json:"userAgent"`
	Fingerprint Fingerprint `json:"fingerprint"`
	Proxy       string      `json:"proxy,omitempty"`
}

// AuthSession is the result of a successful login for one account.
type AuthSession struct {
	IDToken      string
	Address      string
	UserAgent    string
	Fingerprint  Fingerprint
	AccountIndex int
}
