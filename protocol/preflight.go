// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"context"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/group"
	"github.com/chainaim3003/algoTITANV6-sub000/ledger"
)

// checks against current account state, made before anything is
// signed; the ledger still has the final word

func (f *Facade) account(ctx context.Context, address account.Address) (*ledger.AccountInformation, error) {
	info, err := f.ledger.AccountInformation(ctx, address)
	if nil != err {
		return nil, err
	}
	if nil == info {
		return nil, fault.ErrNotFound
	}
	return info, nil
}

// sender must be able to pay every fee and payment it makes in g
func (f *Facade) checkFunds(operationId string, sender account.Address, info *ledger.AccountInformation, g *group.Group) error {
	cost, err := g.Cost(sender)
	if nil != err {
		return err
	}
	if available := info.Available(); available < cost {
		f.log.Warnf("%s: account: %s  available: %d  required: %d", operationId, sender, available, cost)
		return fault.ErrInsufficientBalance
	}
	return nil
}

// seller must hold the instrument and the recipient must accept it
func (f *Facade) checkInstrument(ctx context.Context, operationId string, seller account.Address, info *ledger.AccountInformation, recipient account.Address, instrumentId uint64) error {
	if held := info.Assets[instrumentId]; 0 == held {
		f.log.Warnf("%s: seller: %s  does not hold instrument: %d", operationId, seller, instrumentId)
		return fault.ErrInstrumentNotHeld
	}
	receiving, err := f.account(ctx, recipient)
	if nil != err {
		return err
	}
	if !receiving.IsOptedIn(instrumentId) {
		f.log.Warnf("%s: recipient: %s  not opted in to instrument: %d", operationId, recipient, instrumentId)
		return fault.ErrNotOptedIn
	}
	return nil
}
