// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// PackIndex - concatenated trade ids
func PackIndex(ids []uint64) []byte {
	buffer := make([]byte, 0, len(ids)*codec.Uint64Length)
	for _, id := range ids {
		buffer = codec.AppendUint64(buffer, id)
	}
	return buffer
}

// UnpackIndex - decode a buyer or seller index box
func UnpackIndex(b []byte) ([]uint64, error) {
	if 0 != len(b)%codec.Uint64Length {
		return nil, fault.ErrCorruptRecord
	}
	ids := make([]uint64, 0, len(b)/codec.Uint64Length)
	for i := 0; i < len(b); i += codec.Uint64Length {
		id, err := codec.DecodeUint64(b[i : i+codec.Uint64Length])
		if nil != err {
			return nil, fault.ErrCorruptRecord
		}
		ids = append(ids, id)
	}
	return ids, nil
}
