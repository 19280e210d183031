// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

func runJournal(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s, err := m.open()
	if nil != err {
		return err
	}
	defer s.Close()

	resolve := c.String("resolve")
	if "" == resolve {
		entries, err := s.facade.Journal(c.Bool("open"))
		if nil != err {
			return err
		}
		return util.PrintJson(m.w, "", entries)
	}

	var groupId transactionrecord.GroupId
	if err := groupId.UnmarshalText([]byte(resolve)); nil != err {
		return err
	}
	entry, err := s.facade.Resolve(context.Background(), groupId, c.Bool("abandon"))
	if nil != err {
		return err
	}
	return util.PrintJson(m.w, "", entry)
}
