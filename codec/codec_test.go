// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/codec"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

func TestUint64(t *testing.T) {
	items := []struct {
		n       uint64
		encoded []byte
	}{
		{0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{1, []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{42, []byte{0, 0, 0, 0, 0, 0, 0, 0x2a}},
		{0x0102030405060708, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{^uint64(0), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range items {
		b := codec.EncodeUint64(item.n)
		assert.Equal(t, item.encoded, b, "%d: encode", i)

		n, err := codec.DecodeUint64(b)
		require.NoError(t, err, "%d: decode", i)
		assert.Equal(t, item.n, n, "%d: value", i)
	}
}

func TestUint64Truncated(t *testing.T) {
	for l := 0; l < codec.Uint64Length; l += 1 {
		_, err := codec.DecodeUint64(make([]byte, l))
		assert.Equal(t, fault.ErrShortBuffer, err, "length: %d", l)
	}
	_, err := codec.DecodeUint64(make([]byte, 9))
	assert.Equal(t, fault.ErrTrailingData, err)
}

func TestAddress(t *testing.T) {
	var a account.Address
	for i := range a {
		a[i] = byte(i + 1)
	}

	b, err := codec.EncodeAddress(a.String())
	require.NoError(t, err)
	assert.Len(t, b, codec.AddressLength)
	assert.Equal(t, a[:], b)

	d, err := codec.DecodeAddress(b)
	require.NoError(t, err)
	assert.Equal(t, a, d)

	_, err = codec.DecodeAddress(b[:31])
	assert.Equal(t, fault.ErrShortBuffer, err)

	_, err = codec.EncodeAddress("not-an-address")
	assert.Equal(t, fault.ErrInvalidAddress, err)
}

func TestString(t *testing.T) {
	items := []struct {
		s       string
		encoded []byte
	}{
		{"", []byte{0, 0}},
		{"a", []byte{0, 1, 'a'}},
		{"coffee", []byte{0, 6, 'c', 'o', 'f', 'f', 'e', 'e'}},
		{"ü", []byte{0, 2, 0xc3, 0xbc}},
	}

	for i, item := range items {
		b, err := codec.EncodeString(item.s)
		require.NoError(t, err, "%d: encode", i)
		assert.Equal(t, item.encoded, b, "%d: encoded", i)

		r := codec.NewReader(b)
		s, err := r.String()
		require.NoError(t, err, "%d: decode", i)
		assert.Equal(t, item.s, s, "%d: value", i)
		assert.NoError(t, r.Done(), "%d: consumed", i)
	}
}

func TestStringLimits(t *testing.T) {
	longest := strings.Repeat("x", codec.MaxStringLength)
	b, err := codec.EncodeString(longest)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff}, b[:2])

	_, err = codec.EncodeString(longest + "x")
	assert.Equal(t, fault.ErrStringTooLong, err)
}

func TestStringTruncated(t *testing.T) {
	_, err := codec.NewReader([]byte{0}).String()
	assert.Equal(t, fault.ErrShortBuffer, err)

	// declares 6 bytes, carries 3
	r := codec.NewReader([]byte{0, 6, 'a', 'b', 'c'})
	_, err = r.String()
	assert.Equal(t, fault.ErrShortBuffer, err)
	assert.Equal(t, 0, r.Offset())

	r = codec.NewReader([]byte{0, 1, 'a', 'b'})
	s, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "a", s)
	assert.Equal(t, fault.ErrTrailingData, r.Done())
}

func TestReaderSequence(t *testing.T) {
	var a account.Address
	a[0] = 0x80
	a[31] = 0x01

	buffer := codec.AppendUint64(nil, 7)
	buffer = codec.AppendAddress(buffer, a)
	buffer, err := codec.AppendString(buffer, "hello")
	require.NoError(t, err)

	r := codec.NewReader(buffer)
	n, err := r.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), n)

	d, err := r.Address()
	require.NoError(t, err)
	assert.Equal(t, a, d)

	s, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	assert.Equal(t, 0, r.Remaining())
	assert.NoError(t, r.Done())

	_, err = r.Uint64()
	assert.Equal(t, fault.ErrShortBuffer, err)
	_, err = r.Bytes(1)
	assert.Equal(t, fault.ErrShortBuffer, err)
}

func TestReaderShortLeavesOffset(t *testing.T) {
	r := codec.NewReader([]byte{1, 2, 3})
	_, err := r.Address()
	assert.Equal(t, fault.ErrShortBuffer, err)
	assert.Equal(t, 0, r.Offset())

	b, err := r.Bytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, 1, r.Remaining())
}

func TestMethodSelector(t *testing.T) {
	items := []struct {
		signature string
		selector  codec.Selector
	}{
		{"add(uint64,uint64)uint64", codec.Selector{0xfe, 0x6b, 0xdf, 0x69}},
		{"execute_trade(uint64,uint64)void", codec.Selector{0x19, 0xe2, 0xcf, 0xdb}},
	}

	for _, item := range items {
		assert.Equal(t, item.selector, codec.MethodSelector(item.signature), item.signature)
		// second call is served from the cache
		assert.Equal(t, item.selector, codec.MethodSelector(item.signature), item.signature)
		assert.Equal(t, item.selector[:], codec.MethodSelector(item.signature).Bytes())
	}
}
