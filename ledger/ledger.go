// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the remote ledger as seen by the escrow client
//
// the wire protocol is owned by the transport (see rpccalls); this
// package only names the calls the client makes and the shapes of
// their results
package ledger

import (
	"context"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// Parameters - suggested values for a new transaction
type Parameters struct {
	Fee         uint64                   `json:"fee"`    // per transaction
	MinFee      uint64                   `json:"minFee"` // network floor
	FirstValid  uint64                   `json:"firstValid"`
	LastValid   uint64                   `json:"lastValid"`
	GenesisId   string                   `json:"genesisId"`
	GenesisHash transactionrecord.Digest `json:"genesisHash"`
}

// BaseFee - fee for an ordinary transaction
func (p Parameters) BaseFee() uint64 {
	if p.Fee < p.MinFee {
		return p.MinFee
	}
	return p.Fee
}

// Header - transaction header for a sender using these parameters
func (p Parameters) Header(sender account.Address, fee uint64) transactionrecord.Header {
	return transactionrecord.Header{
		Sender:      sender,
		Fee:         fee,
		FirstValid:  p.FirstValid,
		LastValid:   p.LastValid,
		GenesisId:   p.GenesisId,
		GenesisHash: p.GenesisHash,
	}
}

// Status - ledger progress
type Status struct {
	LastRound uint64 `json:"lastRound"`
}

// PendingTransaction - state of a submitted transaction
//
// ConfirmedRound is zero until the transaction is in a block; a non
// empty PoolError means the ledger dropped it
type PendingTransaction struct {
	ConfirmedRound uint64 `json:"confirmedRound"`
	PoolError      string `json:"poolError"`
}

// AccountInformation - balance and asset holdings
type AccountInformation struct {
	Address    account.Address   `json:"address"`
	Amount     uint64            `json:"amount,string"`
	MinBalance uint64            `json:"minBalance,string"`
	Assets     map[uint64]uint64 `json:"assets"` // asset id → amount held
}

// IsOptedIn - account can receive the asset
func (info *AccountInformation) IsOptedIn(assetId uint64) bool {
	_, ok := info.Assets[assetId]
	return ok
}

// Available - balance above the minimum
func (info *AccountInformation) Available() uint64 {
	if info.Amount < info.MinBalance {
		return 0
	}
	return info.Amount - info.MinBalance
}

// Ledger - calls made by the client
//
// Box returns fault.ErrNotFound when the box does not exist;
// SendRawTransactions returns a *fault.SubmissionError when the group
// is rejected
type Ledger interface {
	SuggestedParams(ctx context.Context) (Parameters, error)
	TradeCounter(ctx context.Context, applicationId uint64) (uint64, error)
	Box(ctx context.Context, applicationId uint64, name []byte) ([]byte, error)
	AccountInformation(ctx context.Context, address account.Address) (*AccountInformation, error)
	SendRawTransactions(ctx context.Context, group transactionrecord.Packed) (transactionrecord.TxId, error)
	Status(ctx context.Context) (Status, error)
	StatusAfterRound(ctx context.Context, round uint64) (Status, error)
	PendingTransaction(ctx context.Context, txId transactionrecord.TxId) (PendingTransaction, error)
}
