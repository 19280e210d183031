// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxname_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/boxname"
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

func TestTradeName(t *testing.T) {
	expected := append([]byte("trades"), 0, 0, 0, 0, 0, 0, 0, 42)
	assert.Equal(t, expected, boxname.Trade(42))

	n, err := boxname.Name(boxname.Trades, codec.EncodeUint64(42))
	require.NoError(t, err)
	assert.Equal(t, expected, n)
}

func TestAddressNames(t *testing.T) {
	var a account.Address
	a[0] = 0xaa
	a[31] = 0x55

	buyer := boxname.Buyer(a)
	assert.Equal(t, "buyer", string(buyer[:5]))
	assert.Equal(t, a[:], buyer[5:])

	seller := boxname.Seller(a)
	assert.Equal(t, "seller", string(seller[:6]))
	assert.Equal(t, a[:], seller[6:])
}

func TestDocumentsPhase(t *testing.T) {
	c, err := boxname.Documents(boxname.CreationDocuments, 1)
	require.NoError(t, err)
	assert.Equal(t, "vlei_c", string(c[:6]))

	e, err := boxname.Documents(boxname.ExecutionDocuments, 1)
	require.NoError(t, err)
	assert.Equal(t, "vlei_e", string(e[:6]))

	_, err = boxname.Documents(boxname.Trades, 1)
	assert.Equal(t, fault.ErrInvalidDocumentPhase, err)
}

func TestNameRejectsWrongKey(t *testing.T) {
	_, err := boxname.Name(boxname.Trades, make([]byte, codec.AddressLength))
	assert.Equal(t, fault.ErrInvalidBoxKey, err)

	_, err = boxname.Name(boxname.BuyerIndex, codec.EncodeUint64(1))
	assert.Equal(t, fault.ErrInvalidBoxKey, err)

	_, err = boxname.Name(boxname.Prefix("bogus"), codec.EncodeUint64(1))
	assert.Equal(t, fault.ErrInvalidBoxName, err)
}

// no prefix may be a leading substring of another
func TestPrefixesAreUnambiguous(t *testing.T) {
	prefixes := boxname.Prefixes()
	for i, p := range prefixes {
		for j, q := range prefixes {
			if i == j {
				continue
			}
			assert.False(t, strings.HasPrefix(string(q), string(p)), "%q is a prefix of %q", p, q)
		}
	}
}

// distinct (prefix, key) pairs give distinct names that parse back
func TestNamesAreInjective(t *testing.T) {
	seen := make(map[string]string)

	record := func(name []byte, label string) {
		previous, found := seen[string(name)]
		require.False(t, found, "collision: %s and %s", label, previous)
		seen[string(name)] = label
	}

	ids := []uint64{0, 1, 42, 0x7472616465730000, ^uint64(0)}
	for _, id := range ids {
		record(boxname.Trade(id), "trade")
		record(boxname.TradeMetadata(id), "metadata")
		c, _ := boxname.Documents(boxname.CreationDocuments, id)
		record(c, "creation")
		e, _ := boxname.Documents(boxname.ExecutionDocuments, id)
		record(e, "execution")
	}

	for i := 0; i < 4; i += 1 {
		var a account.Address
		a[i] = byte(i + 1)
		record(boxname.Buyer(a), "buyer")
		record(boxname.Seller(a), "seller")
	}

	for name := range seen {
		p, key, err := boxname.Parse([]byte(name))
		require.NoError(t, err)
		rebuilt, err := boxname.Name(p, key)
		require.NoError(t, err)
		assert.Equal(t, name, string(rebuilt))
	}
}

func TestParseErrors(t *testing.T) {
	_, _, err := boxname.Parse([]byte("unknown"))
	assert.Equal(t, fault.ErrInvalidBoxName, err)

	_, _, err = boxname.Parse(append([]byte("trades"), 1, 2, 3))
	assert.Equal(t, fault.ErrInvalidBoxKey, err)
}
