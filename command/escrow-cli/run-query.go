// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/boxname"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

func runTrade(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tradeId, err := checkTradeId(c)
	if nil != err {
		return err
	}

	s, err := m.open()
	if nil != err {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	if c.Bool("details") {
		details, err := s.facade.TradeDetails(ctx, tradeId)
		if nil != err {
			return err
		}
		return util.PrintJson(m.w, "", details)
	}

	trade, err := s.facade.Trade(ctx, tradeId)
	if nil != err {
		return err
	}
	return util.PrintJson(m.w, "", trade)
}

func checkPhase(s string) (boxname.Prefix, error) {
	switch s {
	case "", "creation", "c":
		return boxname.CreationDocuments, nil
	case "execution", "e":
		return boxname.ExecutionDocuments, nil
	default:
		return "", ErrUnknownPhase
	}
}

func runDocuments(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tradeId, err := checkTradeId(c)
	if nil != err {
		return err
	}
	phase, err := checkPhase(c.String("phase"))
	if nil != err {
		return err
	}

	s, err := m.open()
	if nil != err {
		return err
	}
	defer s.Close()

	documents, err := s.facade.Documents(context.Background(), phase, tradeId)
	if nil != err {
		return err
	}
	return util.PrintJson(m.w, "", documents)
}

type tradesReply struct {
	Account account.Address `json:"account"`
	Role    string          `json:"role"`
	Trades  []uint64        `json:"trades"`
}

func runTrades(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buyer := c.String("buyer")
	seller := c.String("seller")
	if ("" == buyer) == ("" == seller) {
		return ErrMissingParty
	}

	role := "buyer"
	name := buyer
	if "" != seller {
		role = "seller"
		name = seller
	}
	address, err := checkAccount(name, m.identities)
	if nil != err {
		return err
	}

	s, err := m.open()
	if nil != err {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	var ids []uint64
	if "buyer" == role {
		ids, err = s.facade.TradesByBuyer(ctx, address)
	} else {
		ids, err = s.facade.TradesBySeller(ctx, address)
	}
	if nil != err {
		return err
	}

	return util.PrintJson(m.w, "", tradesReply{
		Account: address,
		Role:    role,
		Trades:  ids,
	})
}
