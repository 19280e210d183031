// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

var testKeys = []string{
	"60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e",
	"731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db",
	"cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e",
	"0000000000000000000000000000000000000000000000000000000000000000",
}

func TestAddressRoundTrip(t *testing.T) {
	for i, k := range testKeys {
		key := decodeHex(t, k)

		a, err := account.AddressFromBytes(key)
		require.NoError(t, err, "%d: from bytes", i)
		assert.Equal(t, key, a.Bytes(), "%d: bytes", i)

		b, err := account.AddressFromBase58(a.String())
		require.NoError(t, err, "%d: from base58", i)
		assert.Equal(t, a, b, "%d: round trip", i)
	}
}

func TestZeroAddress(t *testing.T) {
	a, err := account.AddressFromBytes(make([]byte, account.AddressLength))
	require.NoError(t, err)
	assert.True(t, a.IsZero())

	a, err = account.AddressFromBytes(decodeHex(t, testKeys[0]))
	require.NoError(t, err)
	assert.False(t, a.IsZero())
}

func TestAddressWrongLength(t *testing.T) {
	_, err := account.AddressFromBytes(make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidAddress, err)

	// valid base58 but 33 byte payload
	_, err = account.AddressFromBase58(base58.Encode(make([]byte, 33)))
	assert.Equal(t, fault.ErrInvalidAddress, err)

	// not base58 at all
	_, err = account.AddressFromBase58("0OIl")
	assert.Equal(t, fault.ErrInvalidAddress, err)

	_, err = account.AddressFromBase58("")
	assert.Equal(t, fault.ErrInvalidAddress, err)
}

func TestAddressChecksum(t *testing.T) {
	buffer := decodeHex(t, testKeys[1])
	buffer = append(buffer, 0x01, 0x02, 0x03, 0x04)
	_, err := account.AddressFromBase58(base58.Encode(buffer))
	assert.Equal(t, fault.ErrChecksumMismatch, err)
}

func TestAddressJSON(t *testing.T) {
	a, err := account.AddressFromBytes(decodeHex(t, testKeys[2]))
	require.NoError(t, err)

	type holder struct {
		Owner account.Address `json:"owner"`
	}

	b, err := json.Marshal(holder{Owner: a})
	require.NoError(t, err)
	assert.Equal(t, `{"owner":"`+a.String()+`"}`, string(b))

	var h holder
	err = json.Unmarshal(b, &h)
	require.NoError(t, err)
	assert.Equal(t, a, h.Owner)
}

func TestCheckSignature(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	a, err := account.AddressFromBytes(publicKey)
	require.NoError(t, err)

	message := []byte("TX-some-packed-transaction")
	signature := ed25519.Sign(privateKey, message)

	assert.NoError(t, a.CheckSignature(message, signature))
	assert.Equal(t, fault.ErrInvalidSignature, a.CheckSignature([]byte("other"), signature))
	assert.Equal(t, fault.ErrInvalidSignature, a.CheckSignature(message, signature[:10]))
}

func decodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
