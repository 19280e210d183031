// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

type testKey struct {
	address    account.Address
	privateKey ed25519.PrivateKey
}

func makeKey(t *testing.T, b byte) testKey {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	var a account.Address
	copy(a[:], privateKey.Public().(ed25519.PublicKey))
	return testKey{address: a, privateKey: privateKey}
}

func header(sender account.Address) transactionrecord.Header {
	return transactionrecord.Header{
		Sender:      sender,
		Fee:         1000,
		FirstValid:  100,
		LastValid:   1100,
		GenesisId:   "testnet-v1.0",
		GenesisHash: transactionrecord.Digest{0x48, 0x63},
	}
}

func TestPaymentRoundTrip(t *testing.T) {
	k := makeKey(t, 1)
	p := &transactionrecord.Payment{
		Header:   header(k.address),
		Receiver: account.Address{9},
		Amount:   50000,
	}
	p.Note = []byte("regulator tax")

	packed, err := p.Pack()
	require.NoError(t, err)
	assert.Equal(t, transactionrecord.PaymentTag, packed.Type())

	unpacked, n, err := packed.Unpack()
	require.NoError(t, err)
	assert.Equal(t, len(packed), n)
	assert.Equal(t, p, unpacked)

	name, ok := transactionrecord.RecordName(unpacked)
	assert.True(t, ok)
	assert.Equal(t, "Payment", name)
}

func TestAssetTransferRoundTrip(t *testing.T) {
	k := makeKey(t, 2)
	transfer := &transactionrecord.AssetTransfer{
		Header:   header(k.address),
		AssetId:  7777,
		Receiver: account.Address{3},
		Amount:   1,
	}
	assert.False(t, transfer.IsOptIn())

	packed, err := transfer.Pack()
	require.NoError(t, err)

	unpacked, _, err := packed.Unpack()
	require.NoError(t, err)
	assert.Equal(t, transfer, unpacked)

	optIn := transactionrecord.NewOptIn(header(k.address), 7777)
	assert.True(t, optIn.IsOptIn())
	assert.Equal(t, k.address, optIn.Receiver)

	transfer.AssetId = 0
	_, err = transfer.Pack()
	assert.Equal(t, fault.ErrInvalidInstrument, err)
}

func TestApplicationCallRoundTrip(t *testing.T) {
	k := makeKey(t, 3)
	call := &transactionrecord.ApplicationCall{
		Header:        header(k.address),
		ApplicationId: 123456,
		Arguments:     [][]byte{{0x19, 0xe2, 0xcf, 0xdb}, {0, 0, 0, 0, 0, 0, 0, 42}},
		Accounts:      []account.Address{{1}, {2}},
		ForeignAssets: []uint64{7777},
		Boxes: []transactionrecord.BoxReference{
			{Name: []byte("trades\x00\x00\x00\x00\x00\x00\x00\x2a")},
		},
	}

	packed, err := call.Pack()
	require.NoError(t, err)
	assert.Equal(t, transactionrecord.ApplicationCallTag, packed.Type())

	unpacked, n, err := packed.Unpack()
	require.NoError(t, err)
	assert.Equal(t, len(packed), n)
	assert.Equal(t, call, unpacked)
}

func TestApplicationCallLimits(t *testing.T) {
	k := makeKey(t, 4)

	call := &transactionrecord.ApplicationCall{Header: header(k.address)}
	_, err := call.Pack()
	assert.Equal(t, fault.ErrMissingApplication, err)

	call.ApplicationId = 1
	call.Accounts = make([]account.Address, 4)
	call.ForeignAssets = make([]uint64, 3)
	call.Boxes = []transactionrecord.BoxReference{{Name: []byte("a")}, {Name: []byte("b")}}
	_, err = call.Pack()
	assert.Equal(t, fault.ErrTooManyReferences, err)

	call.Accounts = nil
	call.Boxes = []transactionrecord.BoxReference{{}}
	_, err = call.Pack()
	assert.Equal(t, fault.ErrInvalidBoxName, err)
}

func TestHeaderValidation(t *testing.T) {
	p := &transactionrecord.Payment{}
	_, err := p.Pack()
	assert.Equal(t, fault.ErrZeroAddress, err)

	p.Header = header(account.Address{1})
	p.LastValid = p.FirstValid - 1
	_, err = p.Pack()
	assert.Equal(t, fault.ErrMissingParameters, err)
}

func TestUnpackErrors(t *testing.T) {
	k := makeKey(t, 5)
	p := &transactionrecord.Payment{Header: header(k.address), Receiver: account.Address{1}, Amount: 3}
	packed, err := p.Pack()
	require.NoError(t, err)

	for l := 0; l < len(packed); l += 1 {
		_, _, err := packed[:l].Unpack()
		assert.Error(t, err, "length: %d", l)
	}

	_, _, err = transactionrecord.Packed{0x63}.Unpack()
	assert.Equal(t, fault.ErrUnknownTransaction, err)

	assert.Equal(t, transactionrecord.NullTag, transactionrecord.Packed{}.Type())
}

func TestTxIdDependsOnGroup(t *testing.T) {
	k := makeKey(t, 6)
	p := &transactionrecord.Payment{Header: header(k.address), Receiver: account.Address{1}, Amount: 3}
	before, err := p.Pack()
	require.NoError(t, err)

	p.Group = transactionrecord.GroupId{1}
	after, err := p.Pack()
	require.NoError(t, err)

	assert.NotEqual(t, before.TxId(), after.TxId())
	assert.Equal(t, before.TxId(), before.TxId())
}

func TestGroupId(t *testing.T) {
	ids := []transactionrecord.TxId{{1}, {2}}
	g := transactionrecord.NewGroupId(ids)
	assert.False(t, g.IsZero())
	assert.Equal(t, g, transactionrecord.NewGroupId(ids))

	// order matters
	assert.NotEqual(t, g, transactionrecord.NewGroupId([]transactionrecord.TxId{{2}, {1}}))

	buffer, err := json.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, `"`+g.String()+`"`, string(buffer))

	var g2 transactionrecord.GroupId
	err = json.Unmarshal(buffer, &g2)
	require.NoError(t, err)
	assert.Equal(t, g, g2)

	err = json.Unmarshal([]byte(`"abcd"`), &g2)
	assert.Equal(t, fault.ErrInvalidKeyLength, err)
}

func TestSignedGroup(t *testing.T) {
	buyer := makeKey(t, 7)
	seller := makeKey(t, 8)

	p1, err := (&transactionrecord.Payment{Header: header(buyer.address), Receiver: seller.address, Amount: 10}).Pack()
	require.NoError(t, err)
	p2, err := (&transactionrecord.Payment{Header: header(seller.address), Receiver: buyer.address, Amount: 20}).Pack()
	require.NoError(t, err)

	s1, err := transactionrecord.Sign(p1, ed25519.Sign(buyer.privateKey, p1.SigningMessage()))
	require.NoError(t, err)
	s2, err := transactionrecord.Sign(p2, ed25519.Sign(seller.privateKey, p2.SigningMessage()))
	require.NoError(t, err)
	assert.Equal(t, p1.TxId(), s1.TxId())

	// wrong signer
	_, err = transactionrecord.Sign(p2, ed25519.Sign(buyer.privateKey, p2.SigningMessage()))
	assert.Equal(t, fault.ErrInvalidSignature, err)

	packed, err := transactionrecord.PackGroup([]*transactionrecord.SignedTransaction{s1, s2})
	require.NoError(t, err)

	group, err := transactionrecord.UnpackGroup(packed)
	require.NoError(t, err)
	require.Len(t, group, 2)
	assert.Equal(t, s1, group[0])
	assert.Equal(t, s2, group[1])

	_, err = transactionrecord.PackGroup(nil)
	assert.Equal(t, fault.ErrEmptyGroup, err)

	_, err = transactionrecord.PackGroup([]*transactionrecord.SignedTransaction{s1, nil})
	assert.Equal(t, fault.ErrSigningIncomplete, err)
}

func TestPackedJSON(t *testing.T) {
	packed := transactionrecord.Packed{0x01, 0xab}
	buffer, err := json.Marshal(packed)
	require.NoError(t, err)
	assert.Equal(t, `"01ab"`, string(buffer))

	var p transactionrecord.Packed
	err = json.Unmarshal(buffer, &p)
	require.NoError(t, err)
	assert.Equal(t, packed, p)
}
