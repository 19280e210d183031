// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// miscellaneous constants
const (
	AddressLength  = ed25519.PublicKeySize
	checksumLength = 4
)

// Address - a ledger account, the raw ed25519 public key
type Address [AddressLength]byte

// AddressFromBase58 - convert the text form of an address
//
// text form is Base58(publicKey ++ SHA3-256(publicKey)[:4])
func AddressFromBase58(addressBase58Encoded string) (Address, error) {
	var address Address

	decoded, err := base58.Decode(addressBase58Encoded)
	if nil != err || AddressLength+checksumLength != len(decoded) {
		return address, fault.ErrInvalidAddress
	}

	checksum := sha3.Sum256(decoded[:AddressLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[AddressLength:]) {
		return address, fault.ErrChecksumMismatch
	}

	copy(address[:], decoded[:AddressLength])
	return address, nil
}

// AddressFromBytes - wrap a raw 32 byte public key
func AddressFromBytes(publicKey []byte) (Address, error) {
	var address Address
	if AddressLength != len(publicKey) {
		return address, fault.ErrInvalidAddress
	}
	copy(address[:], publicKey)
	return address, nil
}

// Bytes - the raw public key as a new byte slice
func (address Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, address[:])
	return b
}

// IsZero - true for the all-zero address
func (address Address) IsZero() bool {
	return address == Address{}
}

// String - base58 encoding of key with checksum
func (address Address) String() string {
	checksum := sha3.Sum256(address[:])
	buffer := make([]byte, 0, AddressLength+checksumLength)
	buffer = append(buffer, address[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (address Address) GoString() string {
	return "<address:" + address.String() + ">"
}

// MarshalText - convert an address to its Base58 JSON form
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert Base58 JSON form back to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}

// CheckSignature - verify an ed25519 signature made by this account
func (address Address) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(address[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
