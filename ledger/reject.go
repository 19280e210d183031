// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// fragments of ledger rejection messages, checked in order
//
// "balance" alone is weak evidence (program labels and box names carry
// it) so it is tried only after the contract logic fragments
var rejections = []struct {
	class     error
	fragments []string
}{
	{fault.ErrBoxReferenceMissing, []string{"invalid box reference", "box not available", "box read budget", "unavailable box"}},
	{fault.ErrInsufficientBalance, []string{"overspend", "below min", "insufficient funds"}},
	{fault.ErrContractLogicRejected, []string{"logic eval error", "rejected by logic", "assert failed", "err opcode"}},
	{fault.ErrInsufficientBalance, []string{"insufficient", "balance"}},
}

// ClassifyRejection - map a rejection message to its class
//
// the message is kept verbatim in the result
func ClassifyRejection(message string) error {
	lower := strings.ToLower(message)
	for _, r := range rejections {
		for _, f := range r.fragments {
			if strings.Contains(lower, f) {
				return &fault.SubmissionError{Class: r.class, Message: message}
			}
		}
	}
	return &fault.SubmissionError{Class: fault.ErrUnclassified, Message: message}
}
