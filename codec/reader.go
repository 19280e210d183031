// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// Reader - sequential decoder over a byte slice
//
// every read checks the remaining length first so a truncated buffer
// produces fault.ErrShortBuffer and the offset is left unchanged
type Reader struct {
	buffer []byte
	offset int
}

// NewReader - start decoding at the beginning of b
func NewReader(b []byte) *Reader {
	return &Reader{buffer: b}
}

// Offset - number of bytes consumed
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining - number of bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Done - error unless every byte has been consumed
func (r *Reader) Done() error {
	if 0 != r.Remaining() {
		return fault.ErrTrailingData
	}
	return nil
}

// Bytes - the next n bytes as a copy
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fault.ErrShortBuffer
	}
	b := make([]byte, n)
	copy(b, r.buffer[r.offset:r.offset+n])
	r.offset += n
	return b, nil
}

// Uint64 - next 8 bytes big-endian
func (r *Reader) Uint64() (uint64, error) {
	if r.Remaining() < Uint64Length {
		return 0, fault.ErrShortBuffer
	}
	n := binary.BigEndian.Uint64(r.buffer[r.offset:])
	r.offset += Uint64Length
	return n, nil
}

// Address - next 32 bytes
func (r *Reader) Address() (account.Address, error) {
	var a account.Address
	if r.Remaining() < AddressLength {
		return a, fault.ErrShortBuffer
	}
	copy(a[:], r.buffer[r.offset:r.offset+AddressLength])
	r.offset += AddressLength
	return a, nil
}

// String - 2 byte length followed by that many bytes
func (r *Reader) String() (string, error) {
	if r.Remaining() < StringPrefixLength {
		return "", fault.ErrShortBuffer
	}
	n := int(binary.BigEndian.Uint16(r.buffer[r.offset:]))
	if r.Remaining() < StringPrefixLength+n {
		return "", fault.ErrShortBuffer
	}
	start := r.offset + StringPrefixLength
	s := string(r.buffer[start : start+n])
	r.offset = start + n
	return s, nil
}
