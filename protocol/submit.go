// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/group"
	"github.com/chainaim3003/algoTITANV6-sub000/journal"
	"github.com/chainaim3003/algoTITANV6-sub000/ledger"
	"github.com/chainaim3003/algoTITANV6-sub000/publish"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// sign, journal, send and wait for one group
func (f *Facade) submit(ctx context.Context, operationId string, operation journal.Operation, tradeId uint64, g *group.Group) (*Result, error) {

	// refuse before asking for signatures; Begin repeats the check
	if nil != f.journal {
		entry, err := f.journal.Pending(operation, tradeId)
		if nil == err {
			f.log.Warnf("%s: %s trade: %d  group: %s  still %s", operationId, operation, tradeId, entry.GroupId, entry.Status)
			return nil, fault.ErrSubmissionPending
		}
		if !fault.IsErrNotFound(err) {
			return nil, err
		}
	}

	signed, err := group.Sign(ctx, f.signer, g)
	if nil != err {
		f.log.Warnf("%s: %s trade: %d  sign error: %s", operationId, operation, tradeId, err)
		return nil, err
	}
	packed, err := transactionrecord.PackGroup(signed)
	if nil != err {
		return nil, err
	}

	if nil != f.journal {
		err := f.journal.Begin(&journal.Entry{
			GroupId:     g.Id,
			TxIds:       g.TxIds(),
			TradeId:     tradeId,
			Operation:   operation,
			OperationId: operationId,
		})
		if nil != err {
			return nil, err
		}
	}

	f.log.Infof("%s: %s trade: %d  submit group: %s  transactions: %d", operationId, operation, tradeId, g.Id, g.Len())

	txId, err := f.ledger.SendRawTransactions(ctx, packed)
	if nil != err {
		f.log.Warnf("%s: group: %s  send error: %s", operationId, g.Id, err)
		if fault.IsErrSubmission(err) {
			f.journalRejected(g.Id, err)
		} else {
			// transport failure: the node may still have the group
			f.journalTimedOut(g.Id)
		}
		return nil, err
	}

	round, err := ledger.WaitForConfirmation(ctx, f.ledger, f.log, txId, f.rounds)
	if nil != err {
		f.log.Warnf("%s: group: %s  confirmation error: %s", operationId, g.Id, err)
		if fault.IsErrSubmission(err) {
			f.journalRejected(g.Id, err)
		} else {
			f.journalTimedOut(g.Id)
		}
		return nil, err
	}

	f.log.Infof("%s: group: %s  confirmed in round: %d", operationId, g.Id, round)
	if nil != f.journal {
		if err := f.journal.Confirmed(g.Id, round); nil != err {
			f.log.Errorf("%s: group: %s  journal error: %s", operationId, g.Id, err)
		}
	}

	return &Result{
		OperationId:    operationId,
		GroupId:        g.Id,
		TxIds:          g.TxIds(),
		ConfirmedRound: round,
	}, nil
}

func (f *Facade) journalRejected(groupId transactionrecord.GroupId, err error) {
	if nil == f.journal {
		return
	}
	message := err.Error()
	var s *fault.SubmissionError
	if errors.As(err, &s) {
		message = s.Message
	}
	if err := f.journal.Rejected(groupId, message); nil != err {
		f.log.Errorf("group: %s  journal error: %s", groupId, err)
	}
}

func (f *Facade) journalTimedOut(groupId transactionrecord.GroupId) {
	if nil == f.journal {
		return
	}
	if err := f.journal.TimedOut(groupId); nil != err {
		f.log.Errorf("group: %s  journal error: %s", groupId, err)
	}
}

// read the trade after confirmation and announce it
//
// the result is returned even if the read back fails since the group
// is already confirmed
func (f *Facade) complete(ctx context.Context, result *Result, tradeId uint64, topic string) (*Result, error) {
	trade, err := f.reader.ReadTrade(ctx, tradeId)
	if nil != err {
		f.log.Errorf("%s: trade: %d  read back error: %s", result.OperationId, tradeId, err)
		return result, fmt.Errorf("read back trade %d: %w", tradeId, err)
	}
	result.Trade = trade

	if nil != f.publisher {
		err := f.publisher.Publish(topic, &publish.Event{
			OperationId: result.OperationId,
			TradeId:     tradeId,
			GroupId:     result.GroupId,
			Round:       result.ConfirmedRound,
			Trade:       trade,
		})
		if nil != err {
			f.log.Warnf("%s: publish %s error: %s", result.OperationId, topic, err)
		}
	}
	return result, nil
}
