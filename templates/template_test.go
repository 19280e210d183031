// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package templates_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainaim3003/algoTITANV6-sub000/configuration"
	"github.com/chainaim3003/algoTITANV6-sub000/fixtures"
	"github.com/chainaim3003/algoTITANV6-sub000/templates"
)

// a rendered file must load back through the configuration reader
func TestWriteConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	directory := fixtures.TempDir("templates")
	fileName := filepath.Join(directory, "escrow.conf")

	data := &templates.ConfigurationData{
		Testnet: true,
		Connections: []templates.Connection{
			{Address: "127.0.0.1:2130"},
			{Address: "node.example.com:2130", Certificate: "00112233"},
		},
		ApplicationId:      77,
		ApplicationAddress: fixtures.NewParty(1).Address.String(),
		Regulator:          fixtures.NewParty(2).Address.String(),
		CallFee:            2000,
		ConfirmationRounds: 4,
		Decimals:           2,
	}

	f, err := os.Create(fileName)
	require.NoError(t, err)
	require.NoError(t, templates.WriteConfiguration(f, data))
	require.NoError(t, f.Close())

	c, err := configuration.Get(fileName, nil)
	require.NoError(t, err)

	assert.True(t, c.Testnet)
	require.Len(t, c.Connections, 2)
	assert.Equal(t, "127.0.0.1:2130", c.Connections[0].Address)
	assert.Equal(t, "", c.Connections[0].Certificate)
	assert.Equal(t, "00112233", c.Connections[1].Certificate)
	assert.Equal(t, uint64(77), c.ApplicationId)
	assert.Equal(t, data.ApplicationAddress, c.ApplicationAddress)
	assert.Equal(t, data.Regulator, c.Regulator)
	assert.Equal(t, uint64(2000), c.CallFee)
	assert.Equal(t, int32(2), c.Decimals)
	assert.Equal(t, filepath.Join(directory, "journal"), c.JournalDirectory)
	assert.Equal(t, filepath.Join(directory, "identities.json"), c.IdentitiesFile)
}
