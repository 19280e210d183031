// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tradestate

import (
	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// State - lifecycle of a trade, stored on ledger as a uint64
type State uint64

// enumerate the states, values are fixed by the application
const (
	Created   State = 0
	Escrowed  State = 1
	Completed State = 2
	Cancelled State = 3

	// this item must be last
	stateLimit State = 4
)

// Event - something the client can ask the application to do
type Event int

// possible events
const (
	FundEscrow Event = iota
	ExecuteTrade
	Cancel
)

// Role - relationship of an initiator to a trade
type Role int

// possible roles
const (
	Outsider Role = iota
	Buyer
	Seller
	Financier
)

// FromUint64 - validate a stored state value
func FromUint64(n uint64) (State, error) {
	if n >= uint64(stateLimit) {
		return 0, fault.ErrInvalidState
	}
	return State(n), nil
}

// IsTerminal - no further transition is possible
func (s State) IsTerminal() bool {
	return Completed == s || Cancelled == s
}

// IsValid - one of the known states
func (s State) IsValid() bool {
	return s < stateLimit
}

func (s State) String() string {
	switch s {
	case Created:
		return "CREATED"
	case Escrowed:
		return "ESCROWED"
	case Completed:
		return "COMPLETED"
	case Cancelled:
		return "CANCELLED"
	default:
		return "INVALID"
	}
}

// MarshalText - state name for JSON
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (e Event) String() string {
	switch e {
	case FundEscrow:
		return "fundEscrow"
	case ExecuteTrade:
		return "executeTrade"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

func (r Role) String() string {
	switch r {
	case Buyer:
		return "buyer"
	case Seller:
		return "seller"
	case Financier:
		return "financier"
	default:
		return "outsider"
	}
}

type transition struct {
	from  State
	event Event
}

type rule struct {
	to    State
	roles []Role
}

// the only transitions the client will attempt
var table = map[transition]rule{
	{Created, FundEscrow}:    {Escrowed, []Role{Buyer, Financier}},
	{Escrowed, ExecuteTrade}: {Completed, []Role{Seller}},
	{Created, Cancel}:        {Cancelled, []Role{Buyer}},
	{Escrowed, Cancel}:       {Cancelled, []Role{Buyer}},
}

// Next - the state reached when role triggers event from state
func Next(from State, event Event, role Role) (State, error) {
	if !from.IsValid() {
		return from, fault.ErrInvalidState
	}
	if from.IsTerminal() {
		return from, fault.ErrTerminalState
	}
	r, ok := table[transition{from, event}]
	if !ok {
		return from, fault.ErrInvalidTransition
	}
	for _, allowed := range r.roles {
		if allowed == role {
			return r.to, nil
		}
	}
	return from, fault.ErrNotPermitted
}

// Permitted - true if Next would succeed
func Permitted(from State, event Event, role Role) bool {
	_, err := Next(from, event, role)
	return nil == err
}

// RoleOf - relationship of an address to the parties of a trade
//
// a buyer that also provides escrow is still the buyer; financier
// applies only to a distinct escrow provider
func RoleOf(buyer, seller, escrowProvider, address account.Address) Role {
	switch address {
	case buyer:
		return Buyer
	case seller:
		return Seller
	case escrowProvider:
		return Financier
	default:
		return Outsider
	}
}
