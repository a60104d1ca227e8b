// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/MKhiriev/tusky-uploader/models"
)

// LoadAccounts enumerates the configured wallet accounts from numbered
// environment variables: PRIVATE_KEY_1 / MNEMONIC_1, PRIVATE_KEY_2 /
// MNEMONIC_2, and so on. The first index with neither variable set
// terminates the enumeration, so account numbering must be contiguous.
//
// When both variables are set for one index the account is labelled as a
// private-key account; identity resolution still prefers the mnemonic, the
// label is informational only. An empty result is not an error here — the
// caller decides whether zero accounts is fatal.
func LoadAccounts() []models.Account {
	var accounts []models.Account

	for i := 1; ; i++ {
		privateKey := os.Getenv(fmt.Sprintf("PRIVATE_KEY_%d", i))
		mnemonic := os.Getenv(fmt.Sprintf("MNEMONIC_%d", i))
		if privateKey == "" && mnemonic == "" {
			break
		}

		kind := models.CredentialMnemonic
		if privateKey != "" {
			kind = models.CredentialPrivateKey
		}

		accounts = append(accounts, models.Account{
			Index:      len(accounts) + 1,
			Kind:       kind,
			PrivateKey: privateKey,
			Mnemonic:   mnemonic,
		})
	}

	return accounts
}
