// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tusky-uploader/models"
)

func TestLoadAccounts_Enumeration(t *testing.T) {
	t.Setenv("PRIVATE_KEY_1", "suiprivkey1aaa")
	t.Setenv("MNEMONIC_2", "word word word")
	t.Setenv("PRIVATE_KEY_3", "suiprivkey1bbb")
	t.Setenv("MNEMONIC_3", "other words here")

	accounts := LoadAccounts()
	require.Len(t, accounts, 3)

	assert.Equal(t, 1, accounts[0].Index)
	assert.Equal(t, models.CredentialPrivateKey, accounts[0].Kind)
	assert.Equal(t, "suiprivkey1aaa", accounts[0].PrivateKey)

	assert.Equal(t, 2, accounts[1].Index)
	assert.Equal(t, models.CredentialMnemonic, accounts[1].Kind)
	assert.Equal(t, "word word word", accounts[1].Mnemonic)

	// Both set: labelled as private-key, both values kept.
	assert.Equal(t, models.CredentialPrivateKey, accounts[2].Kind)
	assert.Equal(t, "suiprivkey1bbb", accounts[2].PrivateKey)
	assert.Equal(t, "other words here", accounts[2].Mnemonic)
}

func TestLoadAccounts_GapStopsEnumeration(t *testing.T) {
	t.Setenv("PRIVATE_KEY_1", "suiprivkey1aaa")
	// Index 2 missing on purpose.
	t.Setenv("PRIVATE_KEY_3", "suiprivkey1ccc")

	accounts := LoadAccounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, "suiprivkey1aaa", accounts[0].PrivateKey)
}

func TestLoadAccounts_Empty(t *testing.T) {
	t.Setenv("PRIVATE_KEY_1", "")
	t.Setenv("MNEMONIC_1", "")

	assert.Empty(t, LoadAccounts())
}
