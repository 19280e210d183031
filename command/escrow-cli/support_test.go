// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainaim3003/algoTITANV6-sub000/boxname"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/fixtures"
	"github.com/chainaim3003/algoTITANV6-sub000/templates"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

func TestCheckAmount(t *testing.T) {
	items := []struct {
		text  string
		units uint64
	}{
		{"1", 1000000},
		{"1.5", 1500000},
		{"0.000001", 1},
		{" 12.250000 ", 12250000},
		{"18446744073709.551615", 18446744073709551615},
	}

	for _, item := range items {
		n, err := checkAmount(item.text, 6)
		require.NoError(t, err, item.text)
		assert.Equal(t, item.units, n, item.text)
	}
}

func TestCheckAmountErrors(t *testing.T) {
	_, err := checkAmount("0.0000001", 6)
	assert.Equal(t, ErrAmountNotExact, err)

	_, err = checkAmount("18446744073709.551616", 6)
	assert.Equal(t, ErrAmountOutOfRange, err)

	_, err = checkAmount("0", 6)
	assert.Equal(t, fault.ErrInvalidPrincipal, err)

	_, err = checkAmount("-3", 6)
	assert.Equal(t, fault.ErrInvalidPrincipal, err)

	_, err = checkAmount("", 6)
	assert.Equal(t, fault.ErrInvalidPrincipal, err)

	_, err = checkAmount("ten", 6)
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.002500", formatAmount(1002500, 6))
	assert.Equal(t, "0.000001", formatAmount(1, 6))
	assert.Equal(t, "42", formatAmount(42, 0))
}

func TestCheckPhase(t *testing.T) {
	p, err := checkPhase("")
	require.NoError(t, err)
	assert.Equal(t, boxname.CreationDocuments, p)

	p, err = checkPhase("execution")
	require.NoError(t, err)
	assert.Equal(t, boxname.ExecutionDocuments, p)

	_, err = checkPhase("settlement")
	assert.Equal(t, ErrUnknownPhase, err)
}

func TestCheckConnections(t *testing.T) {
	f := util.Fingerprint([]byte("node certificate"))

	connections, err := checkConnections([]string{
		"127.0.0.1:2130",
		"node.example.com:2130," + f.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, []templates.Connection{
		{Address: "127.0.0.1:2130"},
		{Address: "node.example.com:2130", Certificate: f.String()},
	}, connections)

	_, err = checkConnections(nil)
	assert.Equal(t, fault.ErrMissingConnection, err)

	_, err = checkConnections([]string{" ,abcd"})
	assert.Equal(t, fault.ErrMissingConnection, err)

	_, err = checkConnections([]string{"127.0.0.1:2130,abcd"})
	assert.Equal(t, fault.ErrInvalidKeyLength, err)
}

func TestCheckAccount(t *testing.T) {
	party := fixtures.NewParty(4)

	address, err := checkAccount(party.Address.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, party.Address, address)

	_, err = checkAccount("", nil)
	assert.Equal(t, fault.ErrZeroAddress, err)

	_, err = checkAccount("not-an-address", nil)
	assert.Equal(t, fault.ErrInvalidAddress, err)
}
