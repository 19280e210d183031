// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"context"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/keypair"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// Signer - signs for a set of unlocked key pairs
type Signer struct {
	pairs map[account.Address]*keypair.KeyPair
}

// NewSigner - signer for the given key pairs
func NewSigner(pairs ...*keypair.KeyPair) *Signer {
	s := &Signer{
		pairs: make(map[account.Address]*keypair.KeyPair),
	}
	for _, p := range pairs {
		s.pairs[p.Address()] = p
	}
	return s
}

// SignTransactions - sign every transaction sent by one of the pairs
//
// transactions from other senders, or that do not unpack, are declined
// with a nil entry
func (s *Signer) SignTransactions(ctx context.Context, transactions []transactionrecord.Packed) ([]transactionrecord.Packed, error) {
	result := make([]transactionrecord.Packed, len(transactions))
	for i, packed := range transactions {
		if err := ctx.Err(); nil != err {
			return nil, err
		}

		t, n, err := packed.Unpack()
		if nil != err || n != len(packed) {
			continue
		}
		pair, ok := s.pairs[t.GetHeader().Sender]
		if !ok {
			continue
		}

		signed := &transactionrecord.SignedTransaction{
			Transaction: packed,
			Signature:   pair.Sign(packed.SigningMessage()),
		}
		result[i] = signed.Pack()
	}
	return result, nil
}
