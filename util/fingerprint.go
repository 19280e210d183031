// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// FingerprintBytes - to hold type for fingerprint
type FingerprintBytes [32]byte

// Fingerprint - SHA3-256 of a DER certificate
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}

// String - lower case hex
func (f FingerprintBytes) String() string {
	return hex.EncodeToString(f[:])
}

// ParseFingerprint - hex text, colons allowed as separators
func ParseFingerprint(s string) (FingerprintBytes, error) {
	var f FingerprintBytes
	b, err := hex.DecodeString(strings.ReplaceAll(strings.TrimSpace(s), ":", ""))
	if nil != err || len(f) != len(b) {
		return f, fault.ErrInvalidKeyLength
	}
	copy(f[:], b)
	return f, nil
}
