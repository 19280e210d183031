// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// DigestLength - size of every hash used here
const DigestLength = 32

// domain separation for the hashes
var (
	txIdTag    = []byte("TX")
	groupIdTag = []byte("TG")
)

// Digest - 32 byte hash
type Digest [DigestLength]byte

// TxId - identifier of a single transaction
type TxId Digest

// GroupId - identifier shared by every transaction of an atomic group
type GroupId Digest

// SigningMessage - the bytes that are signed for a packed transaction
func (record Packed) SigningMessage() []byte {
	message := make([]byte, 0, len(txIdTag)+len(record))
	message = append(message, txIdTag...)
	return append(message, record...)
}

// TxId - hash of the signing message
func (record Packed) TxId() TxId {
	return TxId(sha3.Sum256(record.SigningMessage()))
}

// NewGroupId - create a group identifier from the ids of its members
//
// the ids must be computed with the group field cleared
func NewGroupId(txIds []TxId) GroupId {
	digest := sha3.New256()
	digest.Write(groupIdTag)
	for _, id := range txIds {
		digest.Write(id[:])
	}
	var groupId GroupId
	copy(groupId[:], digest.Sum(nil))
	return groupId
}

// IsZero - no group assigned
func (groupId GroupId) IsZero() bool {
	return GroupId{} == groupId
}

// convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// MarshalText - hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return hexText(digest[:]), nil
}

// UnmarshalText - from hex text
func (digest *Digest) UnmarshalText(s []byte) error {
	return fromHexText(digest[:], s)
}

func (txId TxId) String() string {
	return hex.EncodeToString(txId[:])
}

// GoString - for %#v
func (txId TxId) GoString() string {
	return "<txid:" + hex.EncodeToString(txId[:]) + ">"
}

// MarshalText - hex text
func (txId TxId) MarshalText() ([]byte, error) {
	return hexText(txId[:]), nil
}

// UnmarshalText - from hex text
func (txId *TxId) UnmarshalText(s []byte) error {
	return fromHexText(txId[:], s)
}

func (groupId GroupId) String() string {
	return hex.EncodeToString(groupId[:])
}

// GoString - for %#v
func (groupId GroupId) GoString() string {
	return "<groupid:" + hex.EncodeToString(groupId[:]) + ">"
}

// MarshalText - hex text
func (groupId GroupId) MarshalText() ([]byte, error) {
	return hexText(groupId[:]), nil
}

// UnmarshalText - from hex text
func (groupId *GroupId) UnmarshalText(s []byte) error {
	return fromHexText(groupId[:], s)
}

func hexText(b []byte) []byte {
	buffer := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buffer, b)
	return buffer
}

func fromHexText(d []byte, s []byte) error {
	if len(d) != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidKeyLength
	}
	byteCount, err := hex.Decode(d, s)
	if nil != err {
		return err
	}
	if len(d) != byteCount {
		return fault.ErrInvalidKeyLength
	}
	return nil
}
