// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/chainaim3003/algoTITANV6-sub000/protocol"
	"github.com/chainaim3003/algoTITANV6-sub000/record"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seller, err := checkAccount(c.String("seller"), m.identities)
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"), m.config.Decimals)
	if nil != err {
		return err
	}
	documents, err := checkDocuments(c)
	if nil != err {
		return err
	}
	description, err := checkText(c.String("description"))
	if nil != err {
		return err
	}
	meta := record.Metadata{
		ProductType:  c.String("product"),
		Description:  description,
		DocumentHash: c.String("hash"),
	}
	if err := meta.Validate(); nil != err {
		return err
	}

	pair, err := m.unlock(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "buyer: %s\n", pair.Address())
		fmt.Fprintf(m.e, "seller: %s\n", seller)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	s, err := m.open(pair)
	if nil != err {
		return err
	}
	defer s.Close()

	result, err := s.facade.CreateTrade(context.Background(), &protocol.CreateRequest{
		Buyer:        pair.Address(),
		Seller:       seller,
		Amount:       amount,
		Metadata:     meta,
		Documents:    documents,
		InstrumentId: c.Uint64("instrument"),
	})
	if nil != err {
		return err
	}

	return util.PrintJson(m.w, "", result)
}

func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tradeId, err := checkTradeId(c)
	if nil != err {
		return err
	}

	pair, err := m.unlock(c)
	if nil != err {
		return err
	}

	s, err := m.open(pair)
	if nil != err {
		return err
	}
	defer s.Close()

	result, err := s.facade.FundEscrow(context.Background(), &protocol.FundRequest{
		TradeId: tradeId,
		Funder:  pair.Address(),
	})
	if nil != err {
		return err
	}

	return util.PrintJson(m.w, "", result)
}

func runExecute(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tradeId, err := checkTradeId(c)
	if nil != err {
		return err
	}
	documents, err := checkDocuments(c)
	if nil != err {
		return err
	}

	pair, err := m.unlock(c)
	if nil != err {
		return err
	}

	s, err := m.open(pair)
	if nil != err {
		return err
	}
	defer s.Close()

	ctx := context.Background()

	// pre-flight view; the facade reads again before building
	cached, err := s.facade.Trade(ctx, tradeId)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "trade: %d  state: %s\n", cached.Id, cached.State)
	}

	result, err := s.facade.ExecuteTrade(ctx, &protocol.ExecuteRequest{
		Cached:       cached,
		Initiator:    pair.Address(),
		InstrumentId: c.Uint64("instrument"),
		Documents:    documents,
	})
	if nil != err {
		return err
	}

	return util.PrintJson(m.w, "", result)
}

func runCancel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tradeId, err := checkTradeId(c)
	if nil != err {
		return err
	}

	pair, err := m.unlock(c)
	if nil != err {
		return err
	}

	s, err := m.open(pair)
	if nil != err {
		return err
	}
	defer s.Close()

	result, err := s.facade.CancelTrade(context.Background(), &protocol.CancelRequest{
		TradeId:   tradeId,
		Initiator: pair.Address(),
	})
	if nil != err {
		return err
	}

	return util.PrintJson(m.w, "", result)
}
