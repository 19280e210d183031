// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/journal"
	"github.com/chainaim3003/algoTITANV6-sub000/keypair"
	"github.com/chainaim3003/algoTITANV6-sub000/keystore"
	"github.com/chainaim3003/algoTITANV6-sub000/protocol"
	"github.com/chainaim3003/algoTITANV6-sub000/publish"
	"github.com/chainaim3003/algoTITANV6-sub000/record"
	"github.com/chainaim3003/algoTITANV6-sub000/rpccalls"
)

const (
	dialTimeout     = 10 * time.Second
	journalDatabase = "journal.leveldb"
)

// common errors - keep in alphabetic order
const (
	ErrAmountNotExact      = fault.InvalidError("amount has more decimals than the settlement unit")
	ErrAmountOutOfRange    = fault.InvalidError("amount out of range")
	ErrConfigurationExists = fault.ExistsError("configuration file already exists")
	ErrMissingParty        = fault.InvalidError("select one of buyer or seller")
	ErrMissingTradeId      = fault.InvalidError("trade id is required")
	ErrUnknownPhase        = fault.InvalidError("phase must be creation or execution")
)

// checkAmount - exact decimal text to settlement units
func checkAmount(s string, decimals int32) (uint64, error) {
	if "" == s {
		return 0, fault.ErrInvalidPrincipal
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if nil != err {
		return 0, err
	}
	units := d.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return 0, ErrAmountNotExact
	}
	if units.Sign() <= 0 {
		return 0, fault.ErrInvalidPrincipal
	}
	n := units.BigInt()
	if !n.IsUint64() {
		return 0, ErrAmountOutOfRange
	}
	return n.Uint64(), nil
}

// formatAmount - settlement units as decimal text
func formatAmount(units uint64, decimals int32) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -decimals).StringFixed(decimals)
}

// checkAccount - identity name or base58 account
func checkAccount(s string, identities *keystore.File) (account.Address, error) {
	if "" == s {
		return account.Address{}, fault.ErrZeroAddress
	}
	if nil != identities {
		if id, err := identities.Identity(s); nil == err {
			return id.Address, nil
		}
	}
	key, err := codec.EncodeAddress(s)
	if nil != err {
		return account.Address{}, err
	}
	return codec.DecodeAddress(key)
}

func checkTradeId(c *cli.Context) (uint64, error) {
	if !c.IsSet("trade") {
		return 0, ErrMissingTradeId
	}
	return c.Uint64("trade"), nil
}

// text or @file
func checkText(s string) (string, error) {
	if !strings.HasPrefix(s, "@") {
		return s, nil
	}
	b, err := os.ReadFile(s[1:])
	if nil != err {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func checkDocuments(c *cli.Context) (record.DocumentSet, error) {
	var set record.DocumentSet
	items := []struct {
		flag  string
		value *string
	}{
		{"buyer-credential", &set.Buyer.Payload},
		{"buyer-pointer", &set.Buyer.Pointer},
		{"seller-credential", &set.Seller.Payload},
		{"seller-pointer", &set.Seller.Pointer},
		{"purchase-order", &set.PurchaseOrder.Payload},
		{"purchase-order-pointer", &set.PurchaseOrder.Pointer},
	}
	for _, item := range items {
		s, err := checkText(c.String(item.flag))
		if nil != err {
			return set, err
		}
		*item.value = s
	}
	return set, set.Validate()
}

// unlock the current identity
func (m *metadata) unlock(c *cli.Context) (*keypair.KeyPair, error) {
	name := c.GlobalString("identity")
	if _, err := m.identities.Identity(name); nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}
	return m.identities.Unlock(name, password)
}

// connection to the first reachable node plus the local journal
type session struct {
	facade    *protocol.Facade
	client    *rpccalls.Client
	journal   *journal.Journal
	publisher *publish.Broadcaster
}

func (s *session) Close() {
	if nil != s.publisher {
		s.publisher.Close()
	}
	if nil != s.journal {
		s.journal.Close()
	}
	if nil != s.client {
		s.client.Close()
	}
}

func (m *metadata) open(pairs ...*keypair.KeyPair) (*session, error) {
	log := logger.New("escrow-cli")
	config := m.config
	s := &session{}

	var err error
	for _, connection := range config.Connections {
		s.client, err = rpccalls.NewClient(logger.New("rpccalls"), rpccalls.Options{
			Connect:     connection.Address,
			Fingerprint: connection.Certificate,
			PerSecond:   config.RateLimit.PerSecond,
			Burst:       config.RateLimit.Burst,
			Verbose:     m.verbose,
			Handle:      m.e,
			Timeout:     dialTimeout,
		})
		if nil == err {
			break
		}
		log.Warnf("connect: %s  error: %s", connection.Address, err)
	}
	if nil == s.client {
		return nil, fmt.Errorf("no node reachable: %w", err)
	}

	s.journal, err = journal.Open(logger.New("journal"), filepath.Join(config.JournalDirectory, journalDatabase))
	if nil != err {
		s.Close()
		return nil, err
	}

	s.publisher, err = publish.New(logger.New("publish"), &config.Publishing)
	if nil != err {
		s.Close()
		return nil, err
	}

	builder, err := config.BuilderConfig()
	if nil != err {
		s.Close()
		return nil, err
	}

	options := protocol.Options{
		Ledger:             s.client,
		Signer:             keystore.NewSigner(pairs...),
		Builder:            builder,
		Calculator:         config.Calculator(),
		ConfirmationRounds: config.ConfirmationRounds,
		Journal:            s.journal,
	}
	if nil != s.publisher {
		options.Publisher = s.publisher
	}

	s.facade, err = protocol.New(logger.New("protocol"), options)
	if nil != err {
		s.Close()
		return nil, err
	}
	return s, nil
}
