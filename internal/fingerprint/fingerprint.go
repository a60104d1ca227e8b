// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fingerprint generates the synthetic user-agent string and client
// fingerprint assigned to each address. Generation is random, but the session
// store assigns the result exactly once per address and never regenerates it,
// so a given identity always presents the same client signature.
package fingerprint

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/MKhiriev/tusky-uploader/models"
)

var platforms = []string{
	"Windows NT 10.0; Win64; x64",
	"Macintosh; Intel Mac OS X 10_15_7",
	"X11; Linux x86_64",
}

// navigatorPlatforms maps a user-agent OS marker to the value the browser
// would report in navigator.platform.
var navigatorPlatforms = map[string]string{
	"Windows":   "Win32",
	"Macintosh": "MacIntel",
	"Linux":     "Linux x86_64",
}

var deviceMemoryOptions = []int{4, 8, 12, 16}

// New generates a fresh user-agent and the matching fingerprint.
func New() (string, models.Fingerprint) {
	ua := UserAgent()
	return ua, FromUserAgent(ua)
}

// UserAgent assembles a random desktop Chrome, Firefox or Safari user-agent
// string over Windows, macOS or Linux.
func UserAgent() string {
	platform := platforms[rand.IntN(len(platforms))]

	switch rand.IntN(3) {
	case 0: // Chrome
		version := fmt.Sprintf("%d.0.%d.0", 100+rand.IntN(10), rand.IntN(9999))
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36", platform, version)
	case 1: // Firefox
		version := fmt.Sprintf("%d.0", 90+rand.IntN(20))
		return fmt.Sprintf("Mozilla/5.0 (%s; rv:%s) Gecko/20100101 Firefox/%s", platform, version, version)
	default: // Safari
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Safari/605.1.15", platform)
	}
}

// FromUserAgent derives a fingerprint consistent with the given user-agent:
// the navigator platform follows the OS in the UA string, the remaining
// fields are drawn from one fixed distribution (desktop Chrome-like values,
// en-US locale, 1920x1080 screen).
func FromUserAgent(ua string) models.Fingerprint {
	platform := "Win32"
	for marker, value := range navigatorPlatforms {
		if strings.Contains(ua, marker) {
			platform = value
			break
		}
	}

	doNotTrack := "0"
	if rand.IntN(2) == 1 {
		doNotTrack = "1"
	}

	return models.Fingerprint{
		DoNotTrack:          doNotTrack,
		Language:            "en-US",
		Platform:            platform,
		HardwareConcurrency: 4 + rand.IntN(5),
		MaxTouchPoints:      0,
		DeviceMemory:        deviceMemoryOptions[rand.IntN(len(deviceMemoryOptions))],
		Vendor:              "Google Inc.",
		Screen: models.Screen{
			Width:      1920,
			Height:     1080,
			ColorDepth: 24,
		},
	}
}
