// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// Credential - an opaque credential payload and the content address
// of the full document; empty strings mean absent
type Credential struct {
	Payload string `json:"payload,omitempty"`
	Pointer string `json:"pointer,omitempty"`
}

// IsPresent - either part was supplied
func (c Credential) IsPresent() bool {
	return "" != c.Payload || "" != c.Pointer
}

// DocumentSet - compliance documents for one phase of a trade
type DocumentSet struct {
	Buyer         Credential `json:"buyer"`
	Seller        Credential `json:"seller"`
	PurchaseOrder Credential `json:"purchaseOrder"`
}

// IsEmpty - no credential supplied at all
func (set *DocumentSet) IsEmpty() bool {
	return !set.Buyer.IsPresent() && !set.Seller.IsPresent() && !set.PurchaseOrder.IsPresent()
}

// Validate - check field sizes before anything is sent
func (set *DocumentSet) Validate() error {
	for _, c := range []Credential{set.Buyer, set.Seller, set.PurchaseOrder} {
		if len(c.Payload) > maxCredentialLength || len(c.Pointer) > maxPointerLength {
			return fault.ErrStringTooLong
		}
	}
	return nil
}

// Pack - six length-prefixed strings, payload then pointer for each party
func (set *DocumentSet) Pack() ([]byte, error) {
	if err := set.Validate(); nil != err {
		return nil, err
	}
	return packStrings(
		set.Buyer.Payload, set.Buyer.Pointer,
		set.Seller.Payload, set.Seller.Pointer,
		set.PurchaseOrder.Payload, set.PurchaseOrder.Pointer,
	)
}

// UnpackDocumentSet - decode a compliance document box
func UnpackDocumentSet(b []byte) (*DocumentSet, error) {
	s, err := unpackStrings(b, 6)
	if nil != err {
		return nil, err
	}
	return &DocumentSet{
		Buyer:         Credential{Payload: s[0], Pointer: s[1]},
		Seller:        Credential{Payload: s[2], Pointer: s[3]},
		PurchaseOrder: Credential{Payload: s[4], Pointer: s[5]},
	}, nil
}
