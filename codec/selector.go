// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"crypto/sha512"

	cache "github.com/patrickmn/go-cache"
)

// SelectorLength - bytes of the method signature hash used as selector
const SelectorLength = 4

// Selector - the prefix of the hash of a method signature
type Selector [SelectorLength]byte

// selectors never change for a given signature
var selectors = cache.New(cache.NoExpiration, 0)

// MethodSelector - first 4 bytes of SHA-512/256 of the method signature
//
// e.g. "execute_trade(uint64,uint64)void"
func MethodSelector(signature string) Selector {
	if s, found := selectors.Get(signature); found {
		return s.(Selector)
	}
	digest := sha512.Sum512_256([]byte(signature))
	var s Selector
	copy(s[:], digest[:SelectorLength])
	selectors.Set(signature, s, cache.NoExpiration)
	return s
}

// Bytes - selector as a new byte slice, suitable as the first call argument
func (s Selector) Bytes() []byte {
	b := make([]byte, SelectorLength)
	copy(b, s[:])
	return b
}
