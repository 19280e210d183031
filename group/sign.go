// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group

import (
	"bytes"
	"context"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// Signer - wallet capability
//
// returns one signed encoding per input in the same order; a nil entry
// means the signer declined that transaction
type Signer interface {
	SignTransactions(ctx context.Context, transactions []transactionrecord.Packed) ([]transactionrecord.Packed, error)
}

// Sign - obtain every signature for a group
//
// fails with fault.ErrSigningIncomplete unless each member comes back
// signed, unchanged and with a valid sender signature
func Sign(ctx context.Context, signer Signer, g *Group) ([]*transactionrecord.SignedTransaction, error) {
	signed, err := signer.SignTransactions(ctx, g.Packed)
	if nil != err {
		return nil, err
	}
	if len(signed) != len(g.Packed) {
		return nil, fault.ErrSigningIncomplete
	}

	result := make([]*transactionrecord.SignedTransaction, len(signed))
	for i, s := range signed {
		if 0 == len(s) {
			return nil, fault.ErrSigningIncomplete
		}
		st, n, err := transactionrecord.UnpackSigned(s)
		if nil != err {
			return nil, err
		}
		if n != len(s) {
			return nil, fault.ErrTrailingData
		}
		if !bytes.Equal(st.Transaction, g.Packed[i]) {
			return nil, fault.ErrInvalidSignature
		}
		result[i] = st
	}
	return result, nil
}
