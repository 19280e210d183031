// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settlement - escrow, fee, tax and refund amounts for a principal
//
// all arithmetic is on integer settlement units, products are held in
// 128 bits and every division floors
package settlement

import (
	"fmt"
	"math/bits"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// Rate - an exact fraction Numerator/Denominator
type Rate struct {
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
}

// basis point denominator
const BasisPoints = 10000

// default rates
var (
	DefaultPlatformFee     = Rate{Numerator: 25, Denominator: BasisPoints}  // 0.25%
	DefaultRegulatorTax    = Rate{Numerator: 500, Denominator: BasisPoints} // 5%
	DefaultRegulatorRefund = Rate{Numerator: 200, Denominator: BasisPoints} // 2%
)

// Of - floor(amount * rate)
func (r Rate) Of(amount uint64) (uint64, error) {
	if 0 == r.Denominator {
		return 0, fault.ErrInvalidRate
	}
	hi, lo := bits.Mul64(amount, r.Numerator)
	if hi >= r.Denominator {
		return 0, fault.ErrAmountOverflow
	}
	q, _ := bits.Div64(hi, lo, r.Denominator)
	return q, nil
}

func (r Rate) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// Calculator - holds the configured rates
type Calculator struct {
	PlatformFee     Rate
	RegulatorTax    Rate
	RegulatorRefund Rate
}

// Breakdown - derived amounts, never stored
type Breakdown struct {
	Principal       uint64 `json:"principal"`
	PlatformFee     uint64 `json:"platformFee"`
	EscrowRequired  uint64 `json:"escrowRequired"`
	RegulatorTax    uint64 `json:"regulatorTax"`
	RegulatorRefund uint64 `json:"regulatorRefund"`
}

// New - calculator with the default rates
func New() Calculator {
	return Calculator{
		PlatformFee:     DefaultPlatformFee,
		RegulatorTax:    DefaultRegulatorTax,
		RegulatorRefund: DefaultRegulatorRefund,
	}
}

// Validate - denominators must be non-zero and tax + refund must not
// exceed the principal
func (c Calculator) Validate() error {
	for _, r := range []Rate{c.PlatformFee, c.RegulatorTax, c.RegulatorRefund} {
		if 0 == r.Denominator {
			return fault.ErrInvalidRate
		}
	}

	// tax.N/tax.D + refund.N/refund.D <= 1
	// ⇔ tax.N*refund.D + refund.N*tax.D <= tax.D*refund.D
	aHi, aLo := bits.Mul64(c.RegulatorTax.Numerator, c.RegulatorRefund.Denominator)
	bHi, bLo := bits.Mul64(c.RegulatorRefund.Numerator, c.RegulatorTax.Denominator)
	sumLo, carry := bits.Add64(aLo, bLo, 0)
	sumHi, overflow := bits.Add64(aHi, bHi, carry)
	if 0 != overflow {
		return fault.ErrInvalidRate
	}
	limitHi, limitLo := bits.Mul64(c.RegulatorTax.Denominator, c.RegulatorRefund.Denominator)
	if sumHi > limitHi || (sumHi == limitHi && sumLo > limitLo) {
		return fault.ErrInvalidRate
	}
	return nil
}

// Breakdown - compute all amounts for a principal
func (c Calculator) Breakdown(principal uint64) (Breakdown, error) {
	if 0 == principal {
		return Breakdown{}, fault.ErrInvalidPrincipal
	}
	if err := c.Validate(); nil != err {
		return Breakdown{}, err
	}

	fee, err := c.PlatformFee.Of(principal)
	if nil != err {
		return Breakdown{}, err
	}
	escrow, carry := bits.Add64(principal, fee, 0)
	if 0 != carry {
		return Breakdown{}, fault.ErrAmountOverflow
	}
	tax, err := c.RegulatorTax.Of(principal)
	if nil != err {
		return Breakdown{}, err
	}
	refund, err := c.RegulatorRefund.Of(principal)
	if nil != err {
		return Breakdown{}, err
	}

	return Breakdown{
		Principal:       principal,
		PlatformFee:     fee,
		EscrowRequired:  escrow,
		RegulatorTax:    tax,
		RegulatorRefund: refund,
	}, nil
}
