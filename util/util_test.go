// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: encode", i)

		// trailing bytes are left alone
		buffer := append(append([]byte{}, item.encoded...), 0xff, 0x97)
		value, count := util.FromVarint64(buffer)
		assert.Equal(t, item.value, value, "%d: value", i)
		assert.Equal(t, len(item.encoded), count, "%d: count", i)
	}
}

func TestVarint64Truncated(t *testing.T) {
	for i, b := range [][]byte{
		{},
		{0x80},
		{0xff, 0xff},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	} {
		value, count := util.FromVarint64(b)
		assert.Equal(t, uint64(0), value, "%d: value", i)
		assert.Equal(t, 0, count, "%d: count", i)
	}
}

func TestFingerprint(t *testing.T) {
	f := util.Fingerprint([]byte("certificate"))
	parsed, err := util.ParseFingerprint(f.String())
	require.NoError(t, err)
	assert.Equal(t, f, parsed)

	_, err = util.ParseFingerprint("abcd")
	assert.Equal(t, fault.ErrInvalidKeyLength, err)
	_, err = util.ParseFingerprint("not hex")
	assert.Equal(t, fault.ErrInvalidKeyLength, err)
}

func TestResolvePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	journal := "journal"
	logs := "/var/log/"
	identities := "~/escrow/identities.json"
	err := util.ResolvePaths("/data", &journal, &logs, &identities)
	require.NoError(t, err)
	assert.Equal(t, "/data/journal", journal)
	assert.Equal(t, "/var/log", logs)
	assert.Equal(t, filepath.Join(home, "escrow", "identities.json"), identities)

	// "~" on its own is an ordinary name
	tilde := "~"
	require.NoError(t, util.ResolvePaths("/data", &tilde))
	assert.Equal(t, "/data/~", tilde)

	empty := ""
	err = util.ResolvePaths("/data", &empty)
	assert.Error(t, err)
}

func TestCreateDirectories(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a", "b")
	c := filepath.Join(dir, "c")
	require.NoError(t, util.CreateDirectories(a, c))
	assert.DirExists(t, a)
	assert.DirExists(t, c)

	info, err := os.Stat(c)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm()&0700)
}

func TestRegularFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0600))

	exists, err := util.RegularFile(name)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = util.RegularFile(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = util.RegularFile(dir)
	assert.Error(t, err)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestPrintJson(t *testing.T) {
	var buffer bytes.Buffer
	message := struct {
		Trade uint64 `json:"trade"`
	}{Trade: 17}

	require.NoError(t, util.PrintJson(&buffer, "", message))
	assert.Equal(t, "{\n  \"trade\": 17\n}\n", buffer.String())

	buffer.Reset()
	require.NoError(t, util.PrintJson(&buffer, "Reply", message))
	assert.Equal(t, "Reply:\n{\n  \"trade\": 17\n}\n", buffer.String())

	err := util.PrintJson(&buffer, "", make(chan int))
	assert.Error(t, err)

	err = util.PrintJson(failWriter{}, "", message)
	assert.EqualError(t, err, "write failed")
}
