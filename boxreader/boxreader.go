// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package boxreader - fetch application boxes and decode them
//
// a missing box is fault.ErrNotFound; a box that exists but does not
// decode is fault.ErrCorruptRecord and is logged loudly since it means
// the client and the application disagree on the layout
package boxreader

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/boxname"
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/record"
)

// BoxStore - source of box contents
type BoxStore interface {
	Box(ctx context.Context, applicationId uint64, name []byte) ([]byte, error)
}

// Reader - decoder bound to one application
type Reader struct {
	log           *logger.L
	store         BoxStore
	applicationId uint64
}

// New - create a reader
func New(log *logger.L, store BoxStore, applicationId uint64) *Reader {
	return &Reader{
		log:           log,
		store:         store,
		applicationId: applicationId,
	}
}

func (r *Reader) fetch(ctx context.Context, name []byte) ([]byte, error) {
	b, err := r.store.Box(ctx, r.applicationId, name)
	if nil != err {
		return nil, err
	}
	return b, nil
}

// log which record failed to decode
func (r *Reader) corrupt(name []byte, size int) error {
	prefix, key, err := boxname.Parse(name)
	if nil != err {
		r.log.Criticalf("corrupt box: %q  length: %d", name, size)
		return fault.ErrCorruptRecord
	}
	switch len(key) {
	case codec.Uint64Length:
		id, _ := codec.DecodeUint64(key)
		r.log.Criticalf("corrupt box: %s  trade: %d  length: %d", prefix, id, size)
	default:
		address, _ := codec.DecodeAddress(key)
		r.log.Criticalf("corrupt box: %s  account: %s  length: %d", prefix, address, size)
	}
	return fault.ErrCorruptRecord
}

// ReadTrade - current state of a trade
func (r *Reader) ReadTrade(ctx context.Context, id uint64) (*record.Trade, error) {
	name := boxname.Trade(id)
	b, err := r.fetch(ctx, name)
	if nil != err {
		return nil, err
	}
	trade, err := record.UnpackTrade(b)
	if nil != err {
		return nil, r.corrupt(name, len(b))
	}
	if id != trade.Id {
		r.log.Criticalf("trade box: %d  holds id: %d", id, trade.Id)
		return nil, fault.ErrCorruptRecord
	}
	r.log.Debugf("trade: %d  state: %s", id, trade.State)
	return trade, nil
}

// ReadMetadata - immutable description of a trade
func (r *Reader) ReadMetadata(ctx context.Context, id uint64) (*record.Metadata, error) {
	name := boxname.TradeMetadata(id)
	b, err := r.fetch(ctx, name)
	if nil != err {
		return nil, err
	}
	metadata, err := record.UnpackMetadata(b)
	if nil != err {
		return nil, r.corrupt(name, len(b))
	}
	return metadata, nil
}

// ReadDocuments - compliance documents of one phase
func (r *Reader) ReadDocuments(ctx context.Context, phase boxname.Prefix, id uint64) (*record.DocumentSet, error) {
	name, err := boxname.Documents(phase, id)
	if nil != err {
		return nil, err
	}
	b, err := r.fetch(ctx, name)
	if nil != err {
		return nil, err
	}
	documents, err := record.UnpackDocumentSet(b)
	if nil != err {
		return nil, r.corrupt(name, len(b))
	}
	return documents, nil
}

// TradesByBuyer - ids of trades where address is the buyer
func (r *Reader) TradesByBuyer(ctx context.Context, address account.Address) ([]uint64, error) {
	return r.readIndex(ctx, boxname.Buyer(address))
}

// TradesBySeller - ids of trades where address is the seller
func (r *Reader) TradesBySeller(ctx context.Context, address account.Address) ([]uint64, error) {
	return r.readIndex(ctx, boxname.Seller(address))
}

// an absent index box is an empty list
func (r *Reader) readIndex(ctx context.Context, name []byte) ([]uint64, error) {
	b, err := r.fetch(ctx, name)
	if fault.IsErrNotFound(err) {
		return []uint64{}, nil
	}
	if nil != err {
		return nil, err
	}
	ids, err := record.UnpackIndex(b)
	if nil != err {
		return nil, r.corrupt(name, len(b))
	}
	return ids, nil
}
