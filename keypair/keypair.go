// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// seed layout: header(3) ++ network(1) ++ ed25519 seed(32) ++ checksum(4)
var seedHeader = []byte{0x5a, 0xfe, 0x01}

const (
	seedNetworkLength  = 1
	seedChecksumLength = 4
	seedLength         = 3 + seedNetworkLength + ed25519.SeedSize + seedChecksumLength
)

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       string
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed    string          `json:"seed"`
	Address account.Address `json:"address"`
}

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	core := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(core); nil != err {
		return "", err
	}
	return encodeSeed(core, test), nil
}

func encodeSeed(core []byte, test bool) string {
	net := byte(0x00)
	if test {
		net = 0x01
	}
	packed := make([]byte, 0, seedLength)
	packed = append(packed, seedHeader...)
	packed = append(packed, net)
	packed = append(packed, core...)
	checksum := sha3.Sum256(packed)
	packed = append(packed, checksum[:seedChecksumLength]...)
	return base58.Encode(packed)
}

// New - create new seed and generate public/private keys from it
func New(test bool) (*KeyPair, error) {
	seed, err := NewSeed(test)
	if nil != err {
		return nil, err
	}
	return FromSeed(seed)
}

// FromSeed - generate public/private keys from existing seed
func FromSeed(seed string) (*KeyPair, error) {
	packed, err := base58.Decode(seed)
	if nil != err || seedLength != len(packed) {
		return nil, fault.ErrInvalidSeed
	}
	if !bytes.Equal(seedHeader, packed[:len(seedHeader)]) {
		return nil, fault.ErrInvalidSeed
	}

	checksumStart := seedLength - seedChecksumLength
	checksum := sha3.Sum256(packed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], packed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	core := packed[len(seedHeader)+seedNetworkLength : checksumStart]
	privateKey := ed25519.NewKeyFromSeed(core)

	return &KeyPair{
		Seed:       seed,
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// Address - the ledger account of this key pair
func (pair *KeyPair) Address() account.Address {
	var a account.Address
	copy(a[:], pair.PublicKey)
	return a
}

// Sign - ed25519 signature of a message
func (pair *KeyPair) Sign(message []byte) account.Signature {
	return ed25519.Sign(pair.PrivateKey, message)
}

// Raw - printable form
func (pair *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Seed:    pair.Seed,
		Address: pair.Address(),
	}
}
