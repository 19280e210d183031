// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainaim3003/algoTITANV6-sub000/configuration"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/fixtures"
	"github.com/chainaim3003/algoTITANV6-sub000/settlement"
)

func copyConfiguration(t *testing.T, directory string) string {
	data, err := os.ReadFile(filepath.Join("testdata", "escrow.conf"))
	require.NoError(t, err)
	fileName := filepath.Join(directory, "escrow.conf")
	require.NoError(t, os.WriteFile(fileName, data, 0600))
	return fileName
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	directory := fixtures.TempDir("configuration")

	application := fixtures.NewParty(1).Address
	regulator := fixtures.NewParty(2).Address

	c, err := configuration.Get(copyConfiguration(t, directory), map[string]string{
		"application": application.String(),
		"regulator":   regulator.String(),
	})
	require.NoError(t, err)

	assert.True(t, c.Testnet)
	require.Len(t, c.Connections, 2)
	assert.Equal(t, "127.0.0.1:2131", c.Connections[1].Address)
	assert.Equal(t, 5.0, c.RateLimit.PerSecond)
	assert.Equal(t, 8, c.RateLimit.Burst)
	assert.Equal(t, uint64(1001), c.ApplicationId)
	assert.Equal(t, uint64(3000), c.CallFee)
	assert.Equal(t, uint64(6), c.ConfirmationRounds)

	// defaults survive where the file is silent
	assert.Equal(t, int32(6), c.Decimals)
	assert.Equal(t, settlement.Rate{Numerator: 30, Denominator: 10000}, c.Rates.PlatformFee)
	assert.Equal(t, settlement.DefaultRegulatorTax, c.Rates.RegulatorTax)
	assert.Equal(t, settlement.DefaultRegulatorRefund, c.Rates.RegulatorRefund)

	assert.Equal(t, []string{"tcp://127.0.0.1:2140"}, c.Publishing.Broadcast)
	assert.Equal(t, 65536, c.Logging.Size)
	assert.Equal(t, "debug", c.Logging.Levels["protocol"])

	assert.Equal(t, filepath.Join(directory, "identities.json"), c.IdentitiesFile)
	assert.DirExists(t, c.JournalDirectory)
	assert.DirExists(t, c.Logging.Directory)

	b, err := c.BuilderConfig()
	require.NoError(t, err)
	assert.Equal(t, application, b.ApplicationAddress)
	assert.Equal(t, regulator, b.Regulator)
	assert.Equal(t, uint64(1001), b.ApplicationId)
}

func TestGetRejectsBadAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	directory := fixtures.TempDir("configuration")

	_, err := configuration.Get(copyConfiguration(t, directory), map[string]string{
		"application": "nonsense",
		"regulator":   fixtures.NewParty(2).Address.String(),
	})
	assert.True(t, fault.IsErrInvalid(err), "error: %v", err)
}

func TestValidate(t *testing.T) {
	good := configuration.Configuration{
		Connections:        []configuration.Connection{{Address: "localhost:2130"}},
		RateLimit:          configuration.RateLimit{PerSecond: 1, Burst: 1},
		ApplicationId:      5,
		ApplicationAddress: fixtures.NewParty(1).Address.String(),
		Regulator:          fixtures.NewParty(2).Address.String(),
		ConfirmationRounds: 4,
		Decimals:           6,
		Rates: configuration.Rates{
			PlatformFee:     settlement.DefaultPlatformFee,
			RegulatorTax:    settlement.DefaultRegulatorTax,
			RegulatorRefund: settlement.DefaultRegulatorRefund,
		},
	}
	assert.NoError(t, good.Validate())

	c := good
	c.ApplicationId = 0
	assert.Equal(t, fault.ErrMissingApplication, c.Validate())

	c = good
	c.Connections = nil
	assert.Error(t, c.Validate())

	c = good
	c.ConfirmationRounds = 0
	assert.Error(t, c.Validate())

	c = good
	c.Rates.RegulatorTax = settlement.Rate{Numerator: 9, Denominator: 10}
	assert.Equal(t, fault.ErrInvalidRate, c.Validate())
}

func TestParseRequiresStructPointer(t *testing.T) {
	var n int
	err := configuration.ParseConfigurationFile(filepath.Join("testdata", "escrow.conf"), &n, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}
