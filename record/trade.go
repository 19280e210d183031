// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/tradestate"
)

// trade box sizes
const (
	// id, buyer, seller, escrow provider, amount, state
	TradeLength = 3*codec.Uint64Length + 3*codec.AddressLength

	// id, buyer, seller, amount, state: written before escrow is funded
	CompactTradeLength = 3*codec.Uint64Length + 2*codec.AddressLength
)

// Trade - the mutable trade box
type Trade struct {
	Id             uint64           `json:"id,string"`
	Buyer          account.Address  `json:"buyer"`
	Seller         account.Address  `json:"seller"`
	EscrowProvider account.Address  `json:"escrowProvider"`
	Amount         uint64           `json:"amount,string"`
	State          tradestate.State `json:"state"`
}

// Pack - full layout
func (trade *Trade) Pack() []byte {
	buffer := make([]byte, 0, TradeLength)
	buffer = codec.AppendUint64(buffer, trade.Id)
	buffer = codec.AppendAddress(buffer, trade.Buyer)
	buffer = codec.AppendAddress(buffer, trade.Seller)
	buffer = codec.AppendAddress(buffer, trade.EscrowProvider)
	buffer = codec.AppendUint64(buffer, trade.Amount)
	return codec.AppendUint64(buffer, uint64(trade.State))
}

// UnpackTrade - decode either the full or the compact layout
//
// the compact layout has no escrow provider so it defaults to the buyer
func UnpackTrade(b []byte) (*Trade, error) {
	if TradeLength != len(b) && CompactTradeLength != len(b) {
		return nil, fault.ErrCorruptRecord
	}

	r := codec.NewReader(b)
	trade := &Trade{}
	var err error

	if trade.Id, err = r.Uint64(); nil != err {
		return nil, fault.ErrCorruptRecord
	}
	if trade.Buyer, err = r.Address(); nil != err {
		return nil, fault.ErrCorruptRecord
	}
	if trade.Seller, err = r.Address(); nil != err {
		return nil, fault.ErrCorruptRecord
	}
	if TradeLength == len(b) {
		if trade.EscrowProvider, err = r.Address(); nil != err {
			return nil, fault.ErrCorruptRecord
		}
	} else {
		trade.EscrowProvider = trade.Buyer
	}
	if trade.Amount, err = r.Uint64(); nil != err {
		return nil, fault.ErrCorruptRecord
	}
	state, err := r.Uint64()
	if nil != err {
		return nil, fault.ErrCorruptRecord
	}
	if trade.State, err = tradestate.FromUint64(state); nil != err {
		return nil, fault.ErrCorruptRecord
	}
	if nil != r.Done() {
		return nil, fault.ErrCorruptRecord
	}
	return trade, nil
}

// IsSelfFunded - buyer provides the escrow
func (trade *Trade) IsSelfFunded() bool {
	return trade.EscrowProvider.IsZero() || trade.EscrowProvider == trade.Buyer
}

// InstrumentRecipient - who receives the title document on execution
func (trade *Trade) InstrumentRecipient() account.Address {
	if trade.IsSelfFunded() {
		return trade.Buyer
	}
	return trade.EscrowProvider
}

// Role - relationship of an address to this trade
func (trade *Trade) Role(address account.Address) tradestate.Role {
	return tradestate.RoleOf(trade.Buyer, trade.Seller, trade.EscrowProvider, address)
}
