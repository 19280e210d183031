// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"
	"net/rpc"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/ledger"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// check the interface is satisfied
var _ ledger.Ledger = (*Client)(nil)

// SuggestedParams - fee and validity window for new transactions
func (c *Client) SuggestedParams(ctx context.Context) (ledger.Parameters, error) {
	return call[ParametersReply](ctx, c, MethodSuggestedParams, NoArguments{})
}

// TradeCounter - next trade id held in application global state
func (c *Client) TradeCounter(ctx context.Context, applicationId uint64) (uint64, error) {
	arguments := ApplicationArguments{
		ApplicationId: applicationId,
	}
	reply, err := call[CounterReply](ctx, c, MethodTradeCounter, arguments)
	if nil != err {
		return 0, err
	}
	return reply.Counter, nil
}

// Box - contents of an application box
func (c *Client) Box(ctx context.Context, applicationId uint64, name []byte) ([]byte, error) {
	arguments := BoxArguments{
		ApplicationId: applicationId,
		Name:          name,
	}
	reply, err := call[BoxReply](ctx, c, MethodBox, arguments)
	if nil != err {
		return nil, err
	}
	if !reply.Found {
		return nil, fault.ErrNotFound
	}
	return reply.Value, nil
}

// AccountInformation - balance and holdings
func (c *Client) AccountInformation(ctx context.Context, address account.Address) (*ledger.AccountInformation, error) {
	arguments := AccountArguments{
		Address: address,
	}
	reply, err := call[AccountReply](ctx, c, MethodAccountInformation, arguments)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// SendRawTransactions - submit a signed group
//
// a group that does not unpack is refused without contacting the node;
// an error reported by the node is a rejection and is classified
func (c *Client) SendRawTransactions(ctx context.Context, group transactionrecord.Packed) (transactionrecord.TxId, error) {
	signed, err := transactionrecord.UnpackGroup(group)
	if nil != err {
		c.log.Errorf("send: malformed group: %s", err)
		return transactionrecord.TxId{}, err
	}
	first := signed[0].TxId()
	c.log.Debugf("send: transactions: %d  first: %s", len(signed), first)

	arguments := SendArguments{
		Transactions: group,
	}
	reply, err := call[SendReply](ctx, c, MethodSend, arguments)
	if serverError, ok := err.(rpc.ServerError); ok {
		c.log.Warnf("send rejected: %s", serverError)
		return transactionrecord.TxId{}, ledger.ClassifyRejection(string(serverError))
	}
	if nil != err {
		return transactionrecord.TxId{}, err
	}
	if first != reply.TxId {
		c.log.Warnf("send: node returned: %s  expected: %s", reply.TxId, first)
	}
	return reply.TxId, nil
}

// Status - latest round
func (c *Client) Status(ctx context.Context) (ledger.Status, error) {
	return call[StatusReply](ctx, c, MethodStatus, NoArguments{})
}

// StatusAfterRound - block until a round after the given one
func (c *Client) StatusAfterRound(ctx context.Context, round uint64) (ledger.Status, error) {
	arguments := RoundArguments{
		Round: round,
	}
	return call[StatusReply](ctx, c, MethodStatusAfterRound, arguments)
}

// PendingTransaction - confirmation state of a transaction
func (c *Client) PendingTransaction(ctx context.Context, txId transactionrecord.TxId) (ledger.PendingTransaction, error) {
	arguments := PendingArguments{
		TxId: txId,
	}
	return call[PendingReply](ctx, c, MethodPending, arguments)
}
