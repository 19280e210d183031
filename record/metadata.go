// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

// field limits
const (
	maxProductTypeLength  = 64
	maxDescriptionLength  = 2048
	maxDocumentHashLength = 128
	maxCredentialLength   = 1024
	maxPointerLength      = 256
)

// Metadata - immutable description written with the trade
type Metadata struct {
	ProductType  string `json:"productType"`
	Description  string `json:"description"`
	DocumentHash string `json:"documentHash"` // content address of the purchase order
}

// Validate - check field sizes before anything is sent
func (metadata *Metadata) Validate() error {
	if len(metadata.ProductType) > maxProductTypeLength ||
		len(metadata.Description) > maxDescriptionLength ||
		len(metadata.DocumentHash) > maxDocumentHashLength {
		return fault.ErrStringTooLong
	}
	return nil
}

// Pack - three length-prefixed strings
func (metadata *Metadata) Pack() ([]byte, error) {
	if err := metadata.Validate(); nil != err {
		return nil, err
	}
	return packStrings(metadata.ProductType, metadata.Description, metadata.DocumentHash)
}

// UnpackMetadata - decode a metadata box
func UnpackMetadata(b []byte) (*Metadata, error) {
	s, err := unpackStrings(b, 3)
	if nil != err {
		return nil, err
	}
	return &Metadata{
		ProductType:  s[0],
		Description:  s[1],
		DocumentHash: s[2],
	}, nil
}

func packStrings(items ...string) ([]byte, error) {
	size := 0
	for _, s := range items {
		size += codec.StringPrefixLength + len(s)
	}
	buffer := make([]byte, 0, size)
	for _, s := range items {
		var err error
		buffer, err = codec.AppendString(buffer, s)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

func unpackStrings(b []byte, count int) ([]string, error) {
	r := codec.NewReader(b)
	result := make([]string, count)
	for i := range result {
		s, err := r.String()
		if nil != err {
			return nil, fault.ErrCorruptRecord
		}
		result[i] = s
	}
	if nil != r.Done() {
		return nil, fault.ErrCorruptRecord
	}
	return result, nil
}
