// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// SignedTransaction - a packed transaction and the sender's signature
type SignedTransaction struct {
	Transaction Packed            `json:"transaction"`
	Signature   account.Signature `json:"signature"`
}

// Sign - attach a signature made by the sender
//
// the signature is checked against the sender in the header
func Sign(record Packed, signature account.Signature) (*SignedTransaction, error) {
	t, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	if n != len(record) {
		return nil, fault.ErrTrailingData
	}
	err = t.GetHeader().Sender.CheckSignature(record.SigningMessage(), signature)
	if nil != err {
		return nil, err
	}
	return &SignedTransaction{
		Transaction: record,
		Signature:   signature,
	}, nil
}

// Pack - Varint64(length) transaction followed by Varint64(length) signature
func (signed *SignedTransaction) Pack() Packed {
	message := appendBytes(nil, signed.Transaction)
	return appendBytes(message, signed.Signature)
}

// TxId - id of the inner transaction
func (signed *SignedTransaction) TxId() TxId {
	return signed.Transaction.TxId()
}

// UnpackSigned - decode a signed transaction and verify its signature
func UnpackSigned(record Packed) (*SignedTransaction, int, error) {
	u := &unpacker{record: record}
	tx := u.bytes(1, maxTransactionsLength)
	signature := u.bytes(1, maxSignatureLength)
	if nil != u.err {
		return nil, 0, u.err
	}
	signed, err := Sign(tx, signature)
	if nil != err {
		return nil, 0, err
	}
	return signed, u.n, nil
}

// PackGroup - concatenate signed transactions for submission
func PackGroup(signed []*SignedTransaction) (Packed, error) {
	if 0 == len(signed) {
		return nil, fault.ErrEmptyGroup
	}
	var buffer Packed
	for _, s := range signed {
		if nil == s {
			return nil, fault.ErrSigningIncomplete
		}
		buffer = append(buffer, s.Pack()...)
	}
	return buffer, nil
}

// UnpackGroup - split a submission back into its signed transactions
func UnpackGroup(record Packed) ([]*SignedTransaction, error) {
	var group []*SignedTransaction
	for n := 0; n < len(record); {
		s, count, err := UnpackSigned(record[n:])
		if nil != err {
			return nil, err
		}
		group = append(group, s)
		n += count
	}
	if 0 == len(group) {
		return nil, fault.ErrEmptyGroup
	}
	return group, nil
}
