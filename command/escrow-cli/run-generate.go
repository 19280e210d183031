// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/chainaim3003/algoTITANV6-sub000/keypair"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed := c.String("seed")
	if "" == seed {
		var err error
		seed, err = keypair.NewSeed(m.config.Testnet)
		if nil != err {
			return err
		}
	}
	pair, err := keypair.FromSeed(seed)
	if nil != err {
		return err
	}

	name := c.String("add")
	if "" != name {
		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}
		err = m.identities.Add(name, c.String("description"), seed, password)
		if nil != err {
			return err
		}
		m.save = true

		if m.verbose {
			fmt.Fprintf(m.e, "identity: %s  account: %s\n", name, pair.Address())
		}
	}

	return util.PrintJson(m.w, "", pair.Raw())
}
