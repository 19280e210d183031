// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"context"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/journal"
	"github.com/chainaim3003/algoTITANV6-sub000/ledger"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// Resolve - check the ledger for the outcome of an open journal entry
//
// a confirmed group is marked confirmed, a dropped one rejected; one
// the ledger still holds without a decision is left open.  Closing an
// entry without an outcome (abandon) makes the operation available
// again, so callers must be sure the group can no longer confirm.
func (f *Facade) Resolve(ctx context.Context, groupId transactionrecord.GroupId, abandon bool) (*journal.Entry, error) {
	if nil == f.journal {
		return nil, fault.ErrNotFound
	}
	entry, err := f.journal.Get(groupId)
	if nil != err {
		return nil, err
	}
	if !entry.Status.IsOpen() || 0 == len(entry.TxIds) {
		return entry, nil
	}

	pending, err := f.ledger.PendingTransaction(ctx, entry.TxIds[0])
	if nil != err {
		return nil, err
	}

	switch {
	case pending.ConfirmedRound > 0:
		f.log.Infof("group: %s  resolved: confirmed in round: %d", groupId, pending.ConfirmedRound)
		err = f.journal.Resolve(groupId, pending.ConfirmedRound)
	case "" != pending.PoolError:
		f.log.Infof("group: %s  resolved: rejected: %s", groupId, pending.PoolError)
		f.journalRejected(groupId, ledger.ClassifyRejection(pending.PoolError))
	case abandon:
		f.log.Warnf("group: %s  abandoned while unconfirmed", groupId)
		err = f.journal.Resolve(groupId, 0)
	default:
		f.log.Debugf("group: %s  still pending", groupId)
	}
	if nil != err {
		return nil, err
	}
	return f.journal.Get(groupId)
}

// Journal - entries known to this client
func (f *Facade) Journal(openOnly bool) ([]*journal.Entry, error) {
	if nil == f.journal {
		return []*journal.Entry{}, nil
	}
	return f.journal.List(openOnly)
}
