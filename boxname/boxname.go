// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package boxname - deterministic names for application storage boxes
//
// a box name is a fixed prefix followed by its key, either an 8 byte
// big-endian trade id or a 32 byte address.  No prefix is a leading
// substring of another so every name parses back to exactly one
// (prefix, key) pair.
package boxname

import (
	"bytes"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// Prefix - the record type part of a box name
type Prefix string

// all prefixes used by the escrow application
const (
	Trades             Prefix = "trades"
	Metadata           Prefix = "metadata"
	CreationDocuments  Prefix = "vlei_c"
	ExecutionDocuments Prefix = "vlei_e"
	BuyerIndex         Prefix = "buyer"
	SellerIndex        Prefix = "seller"
)

// key kind for each prefix
var keyLength = map[Prefix]int{
	Trades:             codec.Uint64Length,
	Metadata:           codec.Uint64Length,
	CreationDocuments:  codec.Uint64Length,
	ExecutionDocuments: codec.Uint64Length,
	BuyerIndex:         codec.AddressLength,
	SellerIndex:        codec.AddressLength,
}

// Prefixes - every known prefix
func Prefixes() []Prefix {
	return []Prefix{Trades, Metadata, CreationDocuments, ExecutionDocuments, BuyerIndex, SellerIndex}
}

// Name - prefix bytes followed by key bytes
func Name(prefix Prefix, key []byte) ([]byte, error) {
	l, ok := keyLength[prefix]
	if !ok {
		return nil, fault.ErrInvalidBoxName
	}
	if l != len(key) {
		return nil, fault.ErrInvalidBoxKey
	}
	name := make([]byte, 0, len(prefix)+len(key))
	name = append(name, prefix...)
	return append(name, key...), nil
}

func idName(prefix Prefix, id uint64) []byte {
	name := make([]byte, 0, len(prefix)+codec.Uint64Length)
	name = append(name, prefix...)
	return codec.AppendUint64(name, id)
}

func addressName(prefix Prefix, address account.Address) []byte {
	name := make([]byte, 0, len(prefix)+codec.AddressLength)
	name = append(name, prefix...)
	return codec.AppendAddress(name, address)
}

// Trade - box holding the trade record
func Trade(id uint64) []byte {
	return idName(Trades, id)
}

// TradeMetadata - box holding the immutable trade metadata
func TradeMetadata(id uint64) []byte {
	return idName(Metadata, id)
}

// Documents - box holding a compliance document set for a phase
func Documents(phase Prefix, id uint64) ([]byte, error) {
	if CreationDocuments != phase && ExecutionDocuments != phase {
		return nil, fault.ErrInvalidDocumentPhase
	}
	return idName(phase, id), nil
}

// Buyer - index box of trades where address is the buyer
func Buyer(address account.Address) []byte {
	return addressName(BuyerIndex, address)
}

// Seller - index box of trades where address is the seller
func Seller(address account.Address) []byte {
	return addressName(SellerIndex, address)
}

// Parse - split a box name into its prefix and key
func Parse(name []byte) (Prefix, []byte, error) {
	for _, p := range Prefixes() {
		if !bytes.HasPrefix(name, []byte(p)) {
			continue
		}
		key := name[len(p):]
		if keyLength[p] != len(key) {
			return "", nil, fault.ErrInvalidBoxKey
		}
		k := make([]byte, len(key))
		copy(k, key)
		return p, k, nil
	}
	return "", nil, fault.ErrInvalidBoxName
}
