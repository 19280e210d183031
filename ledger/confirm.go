// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// DefaultConfirmationRounds - rounds to wait before giving up
const DefaultConfirmationRounds = 4

// WaitForConfirmation - block until txId is in a block or rounds have passed
//
// a timeout does not mean failure: the group may still confirm later
// and the caller must re-read state rather than resubmit
func WaitForConfirmation(ctx context.Context, l Ledger, log *logger.L, txId transactionrecord.TxId, rounds uint64) (uint64, error) {
	if 0 == rounds {
		rounds = DefaultConfirmationRounds
	}

	status, err := l.Status(ctx)
	if nil != err {
		return 0, err
	}
	start := status.LastRound
	round := start

	for round < start+rounds {
		pending, err := l.PendingTransaction(ctx, txId)
		if nil != err {
			return 0, err
		}
		if pending.ConfirmedRound > 0 {
			log.Debugf("tx: %s  confirmed in round: %d", txId, pending.ConfirmedRound)
			return pending.ConfirmedRound, nil
		}
		if "" != pending.PoolError {
			log.Warnf("tx: %s  pool error: %s", txId, pending.PoolError)
			return 0, ClassifyRejection(pending.PoolError)
		}

		log.Debugf("tx: %s  waiting after round: %d", txId, round)
		status, err = l.StatusAfterRound(ctx, round)
		if nil != err {
			return 0, err
		}
		if status.LastRound > round {
			round = status.LastRound
		} else {
			round += 1
		}
	}

	// last look after the final round
	pending, err := l.PendingTransaction(ctx, txId)
	if nil == err && pending.ConfirmedRound > 0 {
		return pending.ConfirmedRound, nil
	}

	log.Warnf("tx: %s  not confirmed within %d rounds", txId, rounds)
	return 0, fault.ErrConfirmationTimeout
}
