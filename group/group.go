// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group

import (
	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// MaxTransactions - largest atomic group the ledger accepts
const MaxTransactions = 16

// Group - an ordered all-or-nothing set of transactions
//
// every member carries Id in its header and Packed holds the
// encodings that are handed to the signer
type Group struct {
	Id           transactionrecord.GroupId       `json:"id"`
	Transactions []transactionrecord.Transaction `json:"-"`
	Packed       []transactionrecord.Packed      `json:"packed"`
}

// New - assign a single group id across the transactions
//
// ids are computed with the group field clear, then the id is set in
// every header and the transactions are packed again
func New(transactions ...transactionrecord.Transaction) (*Group, error) {
	if 0 == len(transactions) {
		return nil, fault.ErrEmptyGroup
	}
	if len(transactions) > MaxTransactions {
		return nil, fault.ErrGroupTooLarge
	}

	txIds := make([]transactionrecord.TxId, len(transactions))
	for i, t := range transactions {
		t.GetHeader().Group = transactionrecord.GroupId{}
		packed, err := t.Pack()
		if nil != err {
			return nil, err
		}
		txIds[i] = packed.TxId()
	}

	g := &Group{
		Id:           transactionrecord.NewGroupId(txIds),
		Transactions: transactions,
		Packed:       make([]transactionrecord.Packed, len(transactions)),
	}

	for i, t := range transactions {
		t.GetHeader().Group = g.Id
		packed, err := t.Pack()
		if nil != err {
			return nil, err
		}
		g.Packed[i] = packed
	}
	return g, nil
}

// TxIds - ids of the members as submitted
func (g *Group) TxIds() []transactionrecord.TxId {
	ids := make([]transactionrecord.TxId, len(g.Packed))
	for i, p := range g.Packed {
		ids[i] = p.TxId()
	}
	return ids
}

// Len - number of transactions
func (g *Group) Len() int {
	return len(g.Packed)
}

// Cost - fees and payments that sender funds in this group
//
// asset transfers move units of the asset, not currency, so only their
// fee counts
func (g *Group) Cost(sender account.Address) (uint64, error) {
	total := uint64(0)
	add := func(n uint64) error {
		if total+n < total {
			return fault.ErrAmountOverflow
		}
		total += n
		return nil
	}
	for _, t := range g.Transactions {
		header := t.GetHeader()
		if sender != header.Sender {
			continue
		}
		if err := add(header.Fee); nil != err {
			return 0, err
		}
		if payment, ok := t.(*transactionrecord.Payment); ok {
			if err := add(payment.Amount); nil != err {
				return 0, err
			}
		}
	}
	return total, nil
}
