// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

type costReply struct {
	Principal       string `json:"principal"`
	PlatformFee     string `json:"platformFee"`
	EscrowRequired  string `json:"escrowRequired"`
	RegulatorTax    string `json:"regulatorTax"`
	RegulatorRefund string `json:"regulatorRefund"`
	Units           uint64 `json:"units"`
}

func runCost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	decimals := m.config.Decimals

	amount, err := checkAmount(c.String("amount"), decimals)
	if nil != err {
		return err
	}

	b, err := m.config.Calculator().Breakdown(amount)
	if nil != err {
		return err
	}

	return util.PrintJson(m.w, "", costReply{
		Principal:       formatAmount(b.Principal, decimals),
		PlatformFee:     formatAmount(b.PlatformFee, decimals),
		EscrowRequired:  formatAmount(b.EscrowRequired, decimals),
		RegulatorTax:    formatAmount(b.RegulatorTax, decimals),
		RegulatorRefund: formatAmount(b.RegulatorRefund, decimals),
		Units:           b.Principal,
	})
}
