// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"math"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// field sizes
const (
	Uint64Length       = 8
	AddressLength      = account.AddressLength
	StringPrefixLength = 2
	MaxStringLength    = math.MaxUint16
)

// EncodeUint64 - 8 bytes big-endian
func EncodeUint64(n uint64) []byte {
	b := make([]byte, Uint64Length)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// DecodeUint64 - exactly 8 bytes big-endian
func DecodeUint64(b []byte) (uint64, error) {
	if len(b) < Uint64Length {
		return 0, fault.ErrShortBuffer
	}
	if len(b) > Uint64Length {
		return 0, fault.ErrTrailingData
	}
	return binary.BigEndian.Uint64(b), nil
}

// EncodeAddress - convert the text form of an address to its 32 byte public key
func EncodeAddress(address string) ([]byte, error) {
	a, err := account.AddressFromBase58(address)
	if nil != err {
		return nil, fault.ErrInvalidAddress
	}
	return a.Bytes(), nil
}

// DecodeAddress - exactly 32 bytes
func DecodeAddress(b []byte) (account.Address, error) {
	if len(b) < AddressLength {
		return account.Address{}, fault.ErrShortBuffer
	}
	if len(b) > AddressLength {
		return account.Address{}, fault.ErrTrailingData
	}
	return account.AddressFromBytes(b)
}

// EncodeString - 2 byte big-endian length followed by the UTF-8 bytes
func EncodeString(s string) ([]byte, error) {
	return AppendString(make([]byte, 0, StringPrefixLength+len(s)), s)
}

// AppendUint64 - append 8 bytes big-endian
func AppendUint64(buffer []byte, n uint64) []byte {
	return binary.BigEndian.AppendUint64(buffer, n)
}

// AppendAddress - append the 32 byte public key
func AppendAddress(buffer []byte, address account.Address) []byte {
	return append(buffer, address[:]...)
}

// AppendString - append a length-prefixed string
func AppendString(buffer []byte, s string) ([]byte, error) {
	if len(s) > MaxStringLength {
		return nil, fault.ErrStringTooLong
	}
	buffer = binary.BigEndian.AppendUint16(buffer, uint16(len(s)))
	return append(buffer, s...), nil
}
