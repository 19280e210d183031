// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	PaymentTag         = TagType(iota) // native value transfer
	AssetTransferTag   = TagType(iota) // asset transfer or opt-in
	ApplicationCallTag = TagType(iota) // application call

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
type Transaction interface {
	Pack() (Packed, error)
	GetHeader() *Header
}

// limits on the variable parts of a transaction
const (
	maxNoteLength         = 1024
	maxArguments          = 16
	maxArgumentsLength    = 8192
	maxReferences         = 8
	maxBoxNameLength      = 64
	maxGenesisLength      = 64
	maxSignatureLength    = 128
	maxTransactionsLength = 16384
)

// Header - fields common to every transaction
type Header struct {
	Sender      account.Address `json:"sender"`
	Fee         uint64          `json:"fee"`
	FirstValid  uint64          `json:"firstValid"`
	LastValid   uint64          `json:"lastValid"`
	GenesisId   string          `json:"genesisId"`
	GenesisHash Digest          `json:"genesisHash"`
	Group       GroupId         `json:"group"`
	Note        []byte          `json:"note,omitempty"`
}

// Payment - transfer of the native settlement unit
type Payment struct {
	Header
	Receiver account.Address `json:"receiver"`
	Amount   uint64          `json:"amount,string"`
}

// AssetTransfer - transfer of an asset
//
// a zero amount transfer to the sender itself is an opt-in
type AssetTransfer struct {
	Header
	AssetId  uint64          `json:"assetId"`
	Receiver account.Address `json:"receiver"`
	Amount   uint64          `json:"amount,string"`
}

// BoxReference - box an application call may touch
//
// zero application id means the called application
type BoxReference struct {
	ApplicationId uint64 `json:"applicationId"`
	Name          []byte `json:"name"`
}

// ApplicationCall - invoke an application method
type ApplicationCall struct {
	Header
	ApplicationId uint64            `json:"applicationId"`
	Arguments     [][]byte          `json:"arguments"`
	Accounts      []account.Address `json:"accounts,omitempty"`
	ForeignAssets []uint64          `json:"foreignAssets,omitempty"`
	Boxes         []BoxReference    `json:"boxes,omitempty"`
}

// GetHeader - access common fields
func (h *Header) GetHeader() *Header {
	return h
}

// NewOptIn - a zero amount self transfer accepting an asset
func NewOptIn(header Header, assetId uint64) *AssetTransfer {
	return &AssetTransfer{
		Header:   header,
		AssetId:  assetId,
		Receiver: header.Sender,
		Amount:   0,
	}
}

// IsOptIn - true for a zero amount self transfer
func (transfer *AssetTransfer) IsOptIn() bool {
	return 0 == transfer.Amount && transfer.Receiver == transfer.Sender
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := uvarint(record)
	if n <= 0 {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a transaction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Payment, Payment:
		return "Payment", true

	case *AssetTransfer, AssetTransfer:
		return "AssetTransfer", true

	case *ApplicationCall, ApplicationCall:
		return "ApplicationCall", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	if _, err := hex.Decode(b, s); nil != err {
		return err
	}
	*record = b
	return nil
}
