// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package protocol - trade operations against the settlement application
//
// every state changing operation follows the same path: read fresh
// state, build the atomic group, sign, journal, submit, wait for
// confirmation and read the result back.  A group is never submitted
// twice; a timed out group stays open in the journal until resolved.
package protocol

import (
	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"

	"github.com/chainaim3003/algoTITANV6-sub000/boxreader"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/group"
	"github.com/chainaim3003/algoTITANV6-sub000/journal"
	"github.com/chainaim3003/algoTITANV6-sub000/ledger"
	"github.com/chainaim3003/algoTITANV6-sub000/publish"
	"github.com/chainaim3003/algoTITANV6-sub000/record"
	"github.com/chainaim3003/algoTITANV6-sub000/settlement"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// Options - dependencies of a facade
//
// Journal and Publisher are optional
type Options struct {
	Ledger             ledger.Ledger
	Signer             group.Signer
	Builder            group.Config
	Calculator         settlement.Calculator
	ConfirmationRounds uint64
	Journal            *journal.Journal
	Publisher          publish.Publisher
}

// Facade - the client's view of the settlement application
type Facade struct {
	log        *logger.L
	ledger     ledger.Ledger
	signer     group.Signer
	builder    *group.Builder
	reader     *boxreader.Reader
	calculator settlement.Calculator
	rounds     uint64
	journal    *journal.Journal
	publisher  publish.Publisher
}

// Result - outcome of a confirmed operation
type Result struct {
	OperationId    string                    `json:"operationId"`
	GroupId        transactionrecord.GroupId `json:"groupId"`
	TxIds          []transactionrecord.TxId  `json:"txIds"`
	ConfirmedRound uint64                    `json:"confirmedRound"`
	Trade          *record.Trade             `json:"trade"`
}

// New - create a facade
func New(log *logger.L, options Options) (*Facade, error) {
	if nil == options.Ledger || nil == options.Signer {
		return nil, fault.ErrMissingConnection
	}
	builder, err := group.NewBuilder(options.Builder)
	if nil != err {
		return nil, err
	}
	if err := options.Calculator.Validate(); nil != err {
		return nil, err
	}

	rounds := options.ConfirmationRounds
	if 0 == rounds {
		rounds = ledger.DefaultConfirmationRounds
	}

	return &Facade{
		log:        log,
		ledger:     options.Ledger,
		signer:     options.Signer,
		builder:    builder,
		reader:     boxreader.New(log, options.Ledger, builder.ApplicationId()),
		calculator: options.Calculator,
		rounds:     rounds,
		journal:    options.Journal,
		publisher:  options.Publisher,
	}, nil
}

func newOperationId() string {
	return uuid.New().String()
}
