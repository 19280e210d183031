// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - byte layouts of the escrow application boxes
//
// all integers are 8 byte big-endian, addresses are 32 byte public
// keys and strings carry a 2 byte big-endian length prefix.  Any
// layout error on decode is reported as fault.ErrCorruptRecord since
// it means the client and the application disagree on the format.
package record
