// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

// pack Payment
//
// Pack Varint64(tag) followed by the header and then fields in order
// as struct above
func (payment *Payment) Pack() (Packed, error) {
	message, err := payment.Header.pack(PaymentTag)
	if nil != err {
		return nil, err
	}
	message = appendAccount(message, payment.Receiver)
	message = appendUint64(message, payment.Amount)
	return message, nil
}

// pack AssetTransfer
//
// Pack Varint64(tag) followed by the header and then fields in order
// as struct above
func (transfer *AssetTransfer) Pack() (Packed, error) {
	if 0 == transfer.AssetId {
		return nil, fault.ErrInvalidInstrument
	}
	message, err := transfer.Header.pack(AssetTransferTag)
	if nil != err {
		return nil, err
	}
	message = appendUint64(message, transfer.AssetId)
	message = appendAccount(message, transfer.Receiver)
	message = appendUint64(message, transfer.Amount)
	return message, nil
}

// pack ApplicationCall
//
// Pack Varint64(tag) followed by the header, the application id and
// then each list as Varint64(count) followed by its items
func (call *ApplicationCall) Pack() (Packed, error) {
	if 0 == call.ApplicationId {
		return nil, fault.ErrMissingApplication
	}
	if len(call.Arguments) > maxArguments {
		return nil, fault.ErrTooManyReferences
	}
	total := 0
	for _, a := range call.Arguments {
		total += len(a)
	}
	if total > maxArgumentsLength {
		return nil, fault.ErrStringTooLong
	}

	// the ledger shares one reference limit across all kinds
	if len(call.Accounts)+len(call.ForeignAssets)+len(call.Boxes) > maxReferences {
		return nil, fault.ErrTooManyReferences
	}
	for _, box := range call.Boxes {
		if 0 == len(box.Name) || len(box.Name) > maxBoxNameLength {
			return nil, fault.ErrInvalidBoxName
		}
	}

	message, err := call.Header.pack(ApplicationCallTag)
	if nil != err {
		return nil, err
	}
	message = appendUint64(message, call.ApplicationId)

	message = appendUint64(message, uint64(len(call.Arguments)))
	for _, a := range call.Arguments {
		message = appendBytes(message, a)
	}

	message = appendUint64(message, uint64(len(call.Accounts)))
	for _, a := range call.Accounts {
		message = appendAccount(message, a)
	}

	message = appendUint64(message, uint64(len(call.ForeignAssets)))
	for _, id := range call.ForeignAssets {
		message = appendUint64(message, id)
	}

	message = appendUint64(message, uint64(len(call.Boxes)))
	for _, box := range call.Boxes {
		message = appendUint64(message, box.ApplicationId)
		message = appendBytes(message, box.Name)
	}
	return message, nil
}

// pack the common header preceded by the tag
func (header *Header) pack(tag TagType) (Packed, error) {
	if header.Sender.IsZero() {
		return nil, fault.ErrZeroAddress
	}
	if header.LastValid < header.FirstValid {
		return nil, fault.ErrMissingParameters
	}
	if len(header.GenesisId) > maxGenesisLength {
		return nil, fault.ErrStringTooLong
	}
	if len(header.Note) > maxNoteLength {
		return nil, fault.ErrStringTooLong
	}

	message := appendUint64(nil, uint64(tag))
	message = appendAccount(message, header.Sender)
	message = appendUint64(message, header.Fee)
	message = appendUint64(message, header.FirstValid)
	message = appendUint64(message, header.LastValid)
	message = appendBytes(message, []byte(header.GenesisId))
	message = appendBytes(message, header.GenesisHash[:])
	message = appendBytes(message, header.Group[:])
	message = appendBytes(message, header.Note)
	return message, nil
}

// append an address to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address account.Address) Packed {
	return appendBytes(buffer, address[:])
}

// append bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}

// decode a Varint64, n == 0 on failure
func uvarint(buffer []byte) (uint64, int) {
	return util.FromVarint64(buffer)
}
