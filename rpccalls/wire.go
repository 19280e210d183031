// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/ledger"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// remote method names
const (
	MethodSuggestedParams    = "Ledger.SuggestedParams"
	MethodTradeCounter       = "Application.TradeCounter"
	MethodBox                = "Application.Box"
	MethodAccountInformation = "Account.Information"
	MethodSend               = "Transaction.Send"
	MethodPending            = "Transaction.Pending"
	MethodStatus             = "Node.Status"
	MethodStatusAfterRound   = "Node.StatusAfterRound"
)

// NoArguments - for calls that take none
type NoArguments struct{}

// ApplicationArguments - application global state request
type ApplicationArguments struct {
	ApplicationId uint64 `json:"applicationId,string"`
}

// CounterReply - trade counter global
type CounterReply struct {
	Counter uint64 `json:"counter,string"`
}

// BoxArguments - a single box
type BoxArguments struct {
	ApplicationId uint64 `json:"applicationId,string"`
	Name          []byte `json:"name"`
}

// BoxReply - box contents, Found is false for a missing box
type BoxReply struct {
	Found bool   `json:"found"`
	Value []byte `json:"value"`
}

// AccountArguments - account request
type AccountArguments struct {
	Address account.Address `json:"address"`
}

// SendArguments - concatenated signed transactions of one group
type SendArguments struct {
	Transactions transactionrecord.Packed `json:"transactions"`
}

// SendReply - id of the first transaction in the group
type SendReply struct {
	TxId transactionrecord.TxId `json:"txId"`
}

// PendingArguments - transaction status request
type PendingArguments struct {
	TxId transactionrecord.TxId `json:"txId"`
}

// RoundArguments - wait for a round to pass
type RoundArguments struct {
	Round uint64 `json:"round"`
}

// replies that are already ledger types
type (
	ParametersReply = ledger.Parameters
	StatusReply     = ledger.Status
	PendingReply    = ledger.PendingTransaction
	AccountReply    = ledger.AccountInformation
)
