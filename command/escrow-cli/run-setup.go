// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/templates"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

const (
	defaultCallFee  = 2000
	defaultRounds   = 4
	defaultDecimals = 6
)

type setupReply struct {
	Config string `json:"config"`
}

func runSetup(c *cli.Context) error {

	file := c.GlobalString("config")
	exists, err := util.RegularFile(file)
	if nil != err {
		return err
	}
	if exists {
		return ErrConfigurationExists
	}

	data, err := setupData(c)
	if nil != err {
		return err
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}
	err = templates.WriteConfiguration(f, data)
	if e := f.Close(); nil == err {
		err = e
	}
	if nil != err {
		_ = os.Remove(file)
		return err
	}

	return util.PrintJson(c.App.Writer, "", setupReply{Config: file})
}

func setupData(c *cli.Context) (*templates.ConfigurationData, error) {
	connections, err := checkConnections(c.StringSlice("connect"))
	if nil != err {
		return nil, err
	}
	if !c.IsSet("application-id") {
		return nil, fault.ErrMissingApplication
	}
	for _, a := range []string{c.String("application"), c.String("regulator")} {
		if _, err := checkAccount(a, nil); nil != err {
			return nil, err
		}
	}

	return &templates.ConfigurationData{
		Testnet:            c.Bool("testnet"),
		Connections:        connections,
		ApplicationId:      c.Uint64("application-id"),
		ApplicationAddress: c.String("application"),
		Regulator:          c.String("regulator"),
		CallFee:            c.Uint64("call-fee"),
		ConfirmationRounds: c.Uint64("rounds"),
		Decimals:           int32(c.Int("decimals")),
	}, nil
}

// HOST:PORT optionally followed by ,FINGERPRINT
func checkConnections(items []string) ([]templates.Connection, error) {
	if 0 == len(items) {
		return nil, fault.ErrMissingConnection
	}
	connections := make([]templates.Connection, 0, len(items))
	for _, item := range items {
		parts := strings.SplitN(item, ",", 2)
		connection := templates.Connection{
			Address: strings.TrimSpace(parts[0]),
		}
		if "" == connection.Address {
			return nil, fault.ErrMissingConnection
		}
		if 2 == len(parts) {
			f, err := util.ParseFingerprint(parts[1])
			if nil != err {
				return nil, err
			}
			connection.Certificate = f.String()
		}
		connections = append(connections, connection)
	}
	return connections, nil
}
