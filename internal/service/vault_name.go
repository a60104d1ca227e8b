// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"math/rand/v2"
)

var (
	vaultAdjectives = []string{"Cosmic", "Stellar", "Lunar", "Solar", "Nebula", "Galactic", "Orbit", "Astro"}
	vaultNouns      = []string{"Vault", "Storage", "Chamber", "Node", "Hub", "Cluster", "Zone", "Realm"}
)

// GenerateVaultName produces a random "Adjective-Noun-N" vault name with N
// below 1000, e.g. "Stellar-Hub-417".
func GenerateVaultName() string {
	return fmt.Sprintf("%s-%s-%d",
		vaultAdjectives[rand.IntN(len(vaultAdjectives))],
		vaultNouns[rand.IntN(len(vaultNouns))],
		rand.IntN(1000))
}
