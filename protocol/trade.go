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
	"github.com/chainaim3003/algoTITANV6-sub000/journal"
	"github.com/chainaim3003/algoTITANV6-sub000/publish"
	"github.com/chainaim3003/algoTITANV6-sub000/record"
	"github.com/chainaim3003/algoTITANV6-sub000/tradestate"
)

// CreateRequest - a new trade, initiated by the buyer
type CreateRequest struct {
	Buyer        account.Address
	Seller       account.Address
	Amount       uint64
	Metadata     record.Metadata
	Documents    record.DocumentSet
	InstrumentId uint64 // opt the buyer in to this asset, zero to skip
}

// CreateTrade - open a trade and return it as stored by the ledger
//
// the instrument opt-in is left out when the buyer already holds it
func (f *Facade) CreateTrade(ctx context.Context, request *CreateRequest) (*Result, error) {
	operationId := newOperationId()

	c := &group.CreateTrade{
		Buyer:        request.Buyer,
		Seller:       request.Seller,
		Amount:       request.Amount,
		Metadata:     request.Metadata,
		Documents:    request.Documents,
		InstrumentId: request.InstrumentId,
	}
	if err := c.Validate(); nil != err {
		f.log.Debugf("%s: create rejected locally: %s", operationId, err)
		return nil, err
	}

	if 0 != c.InstrumentId {
		info, err := f.account(ctx, c.Buyer)
		if nil != err {
			return nil, err
		}
		if info.IsOptedIn(c.InstrumentId) {
			f.log.Debugf("%s: buyer already opted in to: %d", operationId, c.InstrumentId)
			c.InstrumentId = 0
		}
	}

	params, err := f.ledger.SuggestedParams(ctx)
	if nil != err {
		return nil, err
	}

	// counter read last so box names match the id the application assigns
	c.TradeId, err = f.ledger.TradeCounter(ctx, f.builder.ApplicationId())
	if nil != err {
		return nil, err
	}
	f.log.Infof("%s: create trade: %d  buyer: %s  seller: %s  amount: %d", operationId, c.TradeId, c.Buyer, c.Seller, c.Amount)

	g, err := f.builder.CreateTrade(params, c)
	if nil != err {
		return nil, err
	}

	result, err := f.submit(ctx, operationId, journal.Create, c.TradeId, g)
	if nil != err {
		return nil, err
	}
	return f.complete(ctx, result, c.TradeId, publish.TradeCreated)
}

// FundRequest - lock escrow, from the buyer or a financier
type FundRequest struct {
	TradeId uint64
	Funder  account.Address
}

// FundEscrow - pay principal plus platform fee into escrow
//
// the funder's available balance must cover the escrow and both fees
func (f *Facade) FundEscrow(ctx context.Context, request *FundRequest) (*Result, error) {
	operationId := newOperationId()

	trade, err := f.reader.ReadTrade(ctx, request.TradeId)
	if nil != err {
		return nil, err
	}

	breakdown, err := f.calculator.Breakdown(trade.Amount)
	if nil != err {
		return nil, err
	}
	f.log.Infof("%s: fund trade: %d  funder: %s  escrow: %d", operationId, trade.Id, request.Funder, breakdown.EscrowRequired)

	params, err := f.ledger.SuggestedParams(ctx)
	if nil != err {
		return nil, err
	}
	g, err := f.builder.FundEscrow(params, &group.FundEscrow{
		Trade:          *trade,
		Funder:         request.Funder,
		EscrowRequired: breakdown.EscrowRequired,
	})
	if nil != err {
		return nil, err
	}

	info, err := f.account(ctx, request.Funder)
	if nil != err {
		return nil, err
	}
	if err := f.checkFunds(operationId, request.Funder, info, g); nil != err {
		return nil, err
	}

	result, err := f.submit(ctx, operationId, journal.Fund, trade.Id, g)
	if nil != err {
		return nil, err
	}
	return f.complete(ctx, result, trade.Id, publish.TradeFunded)
}

// ExecuteRequest - settle a trade, initiated by the seller
//
// Cached is the caller's most recent view of the trade
type ExecuteRequest struct {
	Cached       *record.Trade
	Initiator    account.Address
	InstrumentId uint64
	Documents    record.DocumentSet
}

// ExecuteTrade - transfer the instrument, pay the tax and release escrow
//
// only the seller may execute; the trade is read again before building
// and any change from the cached view aborts with fault.ErrStaleState.
// The seller must hold the instrument and cover tax and fees, and the
// recipient must be opted in to it.
func (f *Facade) ExecuteTrade(ctx context.Context, request *ExecuteRequest) (*Result, error) {
	operationId := newOperationId()

	cached := request.Cached
	if nil == cached {
		return nil, fault.ErrInvalidStructPointer
	}
	if tradestate.Escrowed != cached.State {
		f.log.Debugf("%s: trade: %d  cached state: %s", operationId, cached.Id, cached.State)
		return nil, fault.ErrInvalidTransition
	}
	if _, err := tradestate.Next(cached.State, tradestate.ExecuteTrade, cached.Role(request.Initiator)); nil != err {
		f.log.Debugf("%s: trade: %d  initiator: %s  error: %s", operationId, cached.Id, request.Initiator, err)
		return nil, err
	}

	fresh, err := f.reader.ReadTrade(ctx, cached.Id)
	if nil != err {
		return nil, err
	}
	if tradestate.Escrowed != fresh.State || fresh.State != cached.State {
		f.log.Warnf("%s: trade: %d  cached: %s  ledger: %s", operationId, cached.Id, cached.State, fresh.State)
		return nil, fault.ErrStaleState
	}

	breakdown, err := f.calculator.Breakdown(fresh.Amount)
	if nil != err {
		return nil, err
	}
	f.log.Infof("%s: execute trade: %d  instrument: %d  tax: %d", operationId, fresh.Id, request.InstrumentId, breakdown.RegulatorTax)

	params, err := f.ledger.SuggestedParams(ctx)
	if nil != err {
		return nil, err
	}
	g, err := f.builder.ExecuteTrade(params, &group.ExecuteTrade{
		Trade:        *fresh,
		InstrumentId: request.InstrumentId,
		Tax:          breakdown.RegulatorTax,
		Documents:    request.Documents,
	})
	if nil != err {
		return nil, err
	}

	seller, err := f.account(ctx, fresh.Seller)
	if nil != err {
		return nil, err
	}
	if err := f.checkInstrument(ctx, operationId, fresh.Seller, seller, fresh.InstrumentRecipient(), request.InstrumentId); nil != err {
		return nil, err
	}
	if err := f.checkFunds(operationId, fresh.Seller, seller, g); nil != err {
		return nil, err
	}

	result, err := f.submit(ctx, operationId, journal.Execute, fresh.Id, g)
	if nil != err {
		return nil, err
	}
	return f.complete(ctx, result, fresh.Id, publish.TradeExecuted)
}

// CancelRequest - abandon a trade before settlement
type CancelRequest struct {
	TradeId   uint64
	Initiator account.Address
}

// CancelTrade - move a trade to CANCELLED
func (f *Facade) CancelTrade(ctx context.Context, request *CancelRequest) (*Result, error) {
	operationId := newOperationId()

	trade, err := f.reader.ReadTrade(ctx, request.TradeId)
	if nil != err {
		return nil, err
	}
	f.log.Infof("%s: cancel trade: %d  state: %s  initiator: %s", operationId, trade.Id, trade.State, request.Initiator)

	params, err := f.ledger.SuggestedParams(ctx)
	if nil != err {
		return nil, err
	}
	g, err := f.builder.CancelTrade(params, &group.CancelTrade{
		Trade:     *trade,
		Initiator: request.Initiator,
	})
	if nil != err {
		return nil, err
	}

	result, err := f.submit(ctx, operationId, journal.Cancel, trade.Id, g)
	if nil != err {
		return nil, err
	}
	return f.complete(ctx, result, trade.Id, publish.TradeCancelled)
}
