// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// sequential field reader; the first failure sticks so a whole record
// can be read before checking
type unpacker struct {
	record Packed
	n      int
	err    error
}

func (u *unpacker) uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := uvarint(u.record[u.n:])
	if count <= 0 {
		u.err = fault.ErrNotTransactionPack
		return 0
	}
	u.n += count
	return value
}

// a length-prefixed field whose length is in minimum..maximum
func (u *unpacker) bytes(minimum int, maximum int) []byte {
	l := u.uint64()
	if nil != u.err {
		return nil
	}
	if l < uint64(minimum) || l > uint64(maximum) || l > uint64(len(u.record)-u.n) {
		u.err = fault.ErrNotTransactionPack
		return nil
	}
	b := make([]byte, l)
	copy(b, u.record[u.n:u.n+int(l)])
	u.n += int(l)
	return b
}

func (u *unpacker) account() account.Address {
	var a account.Address
	b := u.bytes(account.AddressLength, account.AddressLength)
	copy(a[:], b)
	return a
}

// a list count, bounded so a corrupt count cannot force a huge allocation
func (u *unpacker) count(maximum int) int {
	c := u.uint64()
	if nil != u.err {
		return 0
	}
	if c > uint64(maximum) {
		u.err = fault.ErrNotTransactionPack
		return 0
	}
	return int(c)
}

func (u *unpacker) header() Header {
	h := Header{
		Sender:     u.account(),
		Fee:        u.uint64(),
		FirstValid: u.uint64(),
		LastValid:  u.uint64(),
		GenesisId:  string(u.bytes(0, maxGenesisLength)),
	}
	copy(h.GenesisHash[:], u.bytes(DigestLength, DigestLength))
	copy(h.Group[:], u.bytes(DigestLength, DigestLength))
	note := u.bytes(0, maxNoteLength)
	if len(note) > 0 {
		h.Note = note
	}
	return h
}

// Unpack - turn a byte slice into a record
//
// returns the transaction and the number of bytes consumed
//
// must cast result to correct type
//
// e.g.
//   switch tx := result.(type) {
//   case *transactionrecord.Payment:
func (record Packed) Unpack() (Transaction, int, error) {
	u := &unpacker{record: record}

	recordType := u.uint64()
	if nil != u.err {
		return nil, 0, u.err
	}

	var t Transaction

	switch TagType(recordType) {

	case PaymentTag:
		p := &Payment{
			Header: u.header(),
		}
		p.Receiver = u.account()
		p.Amount = u.uint64()
		t = p

	case AssetTransferTag:
		a := &AssetTransfer{
			Header: u.header(),
		}
		a.AssetId = u.uint64()
		a.Receiver = u.account()
		a.Amount = u.uint64()
		t = a

	case ApplicationCallTag:
		c := &ApplicationCall{
			Header: u.header(),
		}
		c.ApplicationId = u.uint64()

		n := u.count(maxArguments)
		for i := 0; i < n && nil == u.err; i += 1 {
			c.Arguments = append(c.Arguments, u.bytes(0, maxArgumentsLength))
		}

		n = u.count(maxReferences)
		for i := 0; i < n && nil == u.err; i += 1 {
			c.Accounts = append(c.Accounts, u.account())
		}

		n = u.count(maxReferences)
		for i := 0; i < n && nil == u.err; i += 1 {
			c.ForeignAssets = append(c.ForeignAssets, u.uint64())
		}

		n = u.count(maxReferences)
		for i := 0; i < n && nil == u.err; i += 1 {
			b := BoxReference{ApplicationId: u.uint64()}
			b.Name = u.bytes(1, maxBoxNameLength)
			c.Boxes = append(c.Boxes, b)
		}
		t = c

	default:
		return nil, 0, fault.ErrUnknownTransaction
	}

	if nil != u.err {
		return nil, 0, u.err
	}
	return t, u.n, nil
}
