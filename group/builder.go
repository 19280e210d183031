// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group

import (
	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/boxname"
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/ledger"
	"github.com/chainaim3003/algoTITANV6-sub000/record"
	"github.com/chainaim3003/algoTITANV6-sub000/tradestate"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// application methods
const (
	CreateTradeMethod  = "create_trade(uint64,address,uint64,string,string,string,byte[])void"
	FundEscrowMethod   = "fund_escrow(uint64)void"
	ExecuteTradeMethod = "execute_trade(uint64,uint64,byte[])void"
	CancelTradeMethod  = "cancel_trade(uint64)void"
)

// Config - the deployed application and its fixed counterparties
type Config struct {
	ApplicationId      uint64
	ApplicationAddress account.Address
	Regulator          account.Address
	CallFee            uint64 // flat minimum covering box storage costs
}

// Builder - assembles the groups for each operation
type Builder struct {
	config Config
}

// NewBuilder - check configuration and create a builder
func NewBuilder(config Config) (*Builder, error) {
	if 0 == config.ApplicationId {
		return nil, fault.ErrMissingApplication
	}
	if config.ApplicationAddress.IsZero() || config.Regulator.IsZero() {
		return nil, fault.ErrZeroAddress
	}
	return &Builder{config: config}, nil
}

// ApplicationId - the application every call targets
func (b *Builder) ApplicationId() uint64 {
	return b.config.ApplicationId
}

// call fee is never below the network fee
func (b *Builder) callFee(params ledger.Parameters) uint64 {
	base := params.BaseFee()
	if b.config.CallFee < base {
		return base
	}
	return b.config.CallFee
}

func (b *Builder) call(params ledger.Parameters, sender account.Address, method string, arguments ...[]byte) *transactionrecord.ApplicationCall {
	selector := codec.MethodSelector(method)
	return &transactionrecord.ApplicationCall{
		Header:        params.Header(sender, b.callFee(params)),
		ApplicationId: b.config.ApplicationId,
		Arguments:     append([][]byte{selector.Bytes()}, arguments...),
	}
}

func boxes(names ...[]byte) []transactionrecord.BoxReference {
	refs := make([]transactionrecord.BoxReference, len(names))
	for i, n := range names {
		refs[i] = transactionrecord.BoxReference{Name: n}
	}
	return refs
}

// CreateTrade - request to open a new trade, initiated by the buyer
type CreateTrade struct {
	TradeId      uint64 // ledger counter read just before building
	Buyer        account.Address
	Seller       account.Address
	Amount       uint64
	Metadata     record.Metadata
	Documents    record.DocumentSet
	InstrumentId uint64 // zero if not yet known
}

// Validate - local checks before anything reaches the ledger
func (c *CreateTrade) Validate() error {
	if c.Buyer.IsZero() || c.Seller.IsZero() {
		return fault.ErrZeroAddress
	}
	if c.Buyer == c.Seller {
		return fault.ErrSameParty
	}
	if 0 == c.Amount {
		return fault.ErrInvalidPrincipal
	}
	if err := c.Metadata.Validate(); nil != err {
		return err
	}
	return c.Documents.Validate()
}

// CreateTrade - optional buyer opt-in followed by the create call
func (b *Builder) CreateTrade(params ledger.Parameters, c *CreateTrade) (*Group, error) {
	if err := c.Validate(); nil != err {
		return nil, err
	}

	documentsBox, err := boxname.Documents(boxname.CreationDocuments, c.TradeId)
	if nil != err {
		return nil, err
	}
	documents, err := c.Documents.Pack()
	if nil != err {
		return nil, err
	}

	arguments := [][]byte{
		codec.EncodeUint64(c.TradeId),
		codec.AppendAddress(nil, c.Seller),
		codec.EncodeUint64(c.Amount),
	}
	for _, s := range []string{c.Metadata.ProductType, c.Metadata.Description, c.Metadata.DocumentHash, string(documents)} {
		e, err := codec.EncodeString(s)
		if nil != err {
			return nil, err
		}
		arguments = append(arguments, e)
	}

	call := b.call(params, c.Buyer, CreateTradeMethod, arguments...)
	call.Boxes = boxes(
		boxname.Trade(c.TradeId),
		boxname.TradeMetadata(c.TradeId),
		documentsBox,
		boxname.Buyer(c.Buyer),
		boxname.Seller(c.Seller),
	)

	if 0 == c.InstrumentId {
		return New(call)
	}
	optIn := transactionrecord.NewOptIn(params.Header(c.Buyer, params.BaseFee()), c.InstrumentId)
	return New(optIn, call)
}

// FundEscrow - request to lock the escrow for a trade
type FundEscrow struct {
	Trade          record.Trade
	Funder         account.Address
	EscrowRequired uint64
}

// funder role: anyone other than the trade parties acts as financier
func (f *FundEscrow) role() tradestate.Role {
	role := f.Trade.Role(f.Funder)
	if tradestate.Outsider == role {
		return tradestate.Financier
	}
	return role
}

// FundEscrow - payment of the escrow requirement to the application
// followed by the funding call
func (b *Builder) FundEscrow(params ledger.Parameters, f *FundEscrow) (*Group, error) {
	if f.Funder.IsZero() {
		return nil, fault.ErrZeroAddress
	}
	if f.EscrowRequired < f.Trade.Amount {
		return nil, fault.ErrInvalidPrincipal
	}
	if _, err := tradestate.Next(f.Trade.State, tradestate.FundEscrow, f.role()); nil != err {
		return nil, err
	}

	payment := &transactionrecord.Payment{
		Header:   params.Header(f.Funder, params.BaseFee()),
		Receiver: b.config.ApplicationAddress,
		Amount:   f.EscrowRequired,
	}

	call := b.call(params, f.Funder, FundEscrowMethod, codec.EncodeUint64(f.Trade.Id))
	call.Boxes = boxes(boxname.Trade(f.Trade.Id))

	return New(payment, call)
}

// ExecuteTrade - request to settle a trade, initiated by the seller
type ExecuteTrade struct {
	Trade        record.Trade // freshly read
	InstrumentId uint64
	Tax          uint64
	Documents    record.DocumentSet
}

// ExecuteTrade - instrument transfer, regulator tax then the settle call
//
// the instrument goes to the buyer when self-funded, otherwise to the
// escrow provider
func (b *Builder) ExecuteTrade(params ledger.Parameters, e *ExecuteTrade) (*Group, error) {
	if 0 == e.InstrumentId {
		return nil, fault.ErrInvalidInstrument
	}
	if _, err := tradestate.Next(e.Trade.State, tradestate.ExecuteTrade, tradestate.Seller); nil != err {
		return nil, err
	}
	if err := e.Documents.Validate(); nil != err {
		return nil, err
	}

	seller := e.Trade.Seller
	id := e.Trade.Id

	documentsBox, err := boxname.Documents(boxname.ExecutionDocuments, id)
	if nil != err {
		return nil, err
	}
	documents, err := e.Documents.Pack()
	if nil != err {
		return nil, err
	}
	encodedDocuments, err := codec.EncodeString(string(documents))
	if nil != err {
		return nil, err
	}

	transfer := &transactionrecord.AssetTransfer{
		Header:   params.Header(seller, params.BaseFee()),
		AssetId:  e.InstrumentId,
		Receiver: e.Trade.InstrumentRecipient(),
		Amount:   1,
	}

	tax := &transactionrecord.Payment{
		Header:   params.Header(seller, params.BaseFee()),
		Receiver: b.config.Regulator,
		Amount:   e.Tax,
	}

	escrowProvider := e.Trade.EscrowProvider
	if escrowProvider.IsZero() {
		escrowProvider = e.Trade.Buyer
	}

	call := b.call(params, seller, ExecuteTradeMethod,
		codec.EncodeUint64(id),
		codec.EncodeUint64(e.InstrumentId),
		encodedDocuments,
	)
	call.Accounts = []account.Address{e.Trade.Buyer, escrowProvider}
	call.ForeignAssets = []uint64{e.InstrumentId}
	call.Boxes = boxes(boxname.Trade(id), documentsBox)

	return New(transfer, tax, call)
}

// CancelTrade - request to cancel a trade, initiated by the buyer
type CancelTrade struct {
	Trade     record.Trade
	Initiator account.Address
}

// CancelTrade - single cancel call; the escrow provider is referenced
// so the application can refund it
func (b *Builder) CancelTrade(params ledger.Parameters, c *CancelTrade) (*Group, error) {
	if _, err := tradestate.Next(c.Trade.State, tradestate.Cancel, c.Trade.Role(c.Initiator)); nil != err {
		return nil, err
	}

	call := b.call(params, c.Initiator, CancelTradeMethod, codec.EncodeUint64(c.Trade.Id))
	call.Boxes = boxes(boxname.Trade(c.Trade.Id))
	if !c.Trade.IsSelfFunded() {
		call.Accounts = []account.Address{c.Trade.EscrowProvider}
	}
	return New(call)
}
