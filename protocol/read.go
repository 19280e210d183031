// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/boxname"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/record"
	"github.com/chainaim3003/algoTITANV6-sub000/settlement"
)

// Trade - current ledger state of a trade
func (f *Facade) Trade(ctx context.Context, id uint64) (*record.Trade, error) {
	return f.reader.ReadTrade(ctx, id)
}

// Metadata - descriptive fields of a trade
func (f *Facade) Metadata(ctx context.Context, id uint64) (*record.Metadata, error) {
	return f.reader.ReadMetadata(ctx, id)
}

// Documents - compliance documents for one phase
func (f *Facade) Documents(ctx context.Context, phase boxname.Prefix, id uint64) (*record.DocumentSet, error) {
	return f.reader.ReadDocuments(ctx, phase, id)
}

// TradesByBuyer - ids of trades where the address is the buyer
func (f *Facade) TradesByBuyer(ctx context.Context, address account.Address) ([]uint64, error) {
	return f.reader.TradesByBuyer(ctx, address)
}

// TradesBySeller - ids of trades where the address is the seller
func (f *Facade) TradesBySeller(ctx context.Context, address account.Address) ([]uint64, error) {
	return f.reader.TradesBySeller(ctx, address)
}

// SettlementCost - amounts that follow from a principal
func (f *Facade) SettlementCost(principal uint64) (settlement.Breakdown, error) {
	return f.calculator.Breakdown(principal)
}

// Details - everything stored for one trade
//
// Execution is nil until the trade is executed with at least one
// document
type Details struct {
	Trade     *record.Trade        `json:"trade"`
	Metadata  *record.Metadata     `json:"metadata"`
	Creation  *record.DocumentSet  `json:"creation"`
	Execution *record.DocumentSet  `json:"execution,omitempty"`
	Cost      settlement.Breakdown `json:"cost"`
}

// TradeDetails - read all boxes of a trade concurrently
func (f *Facade) TradeDetails(ctx context.Context, id uint64) (*Details, error) {
	details := &Details{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trade, err := f.reader.ReadTrade(gctx, id)
		details.Trade = trade
		return err
	})
	g.Go(func() error {
		metadata, err := f.reader.ReadMetadata(gctx, id)
		details.Metadata = metadata
		return err
	})
	g.Go(func() error {
		documents, err := f.reader.ReadDocuments(gctx, boxname.CreationDocuments, id)
		details.Creation = documents
		return err
	})
	g.Go(func() error {
		documents, err := f.reader.ReadDocuments(gctx, boxname.ExecutionDocuments, id)
		if fault.IsErrNotFound(err) || (nil == err && documents.IsEmpty()) {
			return nil
		}
		details.Execution = documents
		return err
	})
	if err := g.Wait(); nil != err {
		return nil, err
	}

	cost, err := f.calculator.Breakdown(details.Trade.Amount)
	if nil != err {
		return nil, err
	}
	details.Cost = cost
	return details, nil
}
