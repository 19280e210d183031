// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal_test

import (
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/fixtures"
	"github.com/chainaim3003/algoTITANV6-sub000/journal"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

func newEntry(groupByte byte, tradeId uint64, operation journal.Operation) *journal.Entry {
	return &journal.Entry{
		GroupId:     transactionrecord.GroupId{groupByte},
		TxIds:       []transactionrecord.TxId{{groupByte, 1}},
		TradeId:     tradeId,
		Operation:   operation,
		OperationId: "op",
	}
}

func TestBeginBlocksSecondSubmission(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	j, err := journal.OpenMemory(logger.New(fixtures.LogCategory))
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.Begin(newEntry(1, 42, journal.Execute)))

	err = j.Begin(newEntry(2, 42, journal.Execute))
	assert.Equal(t, fault.ErrSubmissionPending, err)

	// other operation or trade is independent
	assert.NoError(t, j.Begin(newEntry(3, 42, journal.Cancel)))
	assert.NoError(t, j.Begin(newEntry(4, 43, journal.Execute)))

	pending, err := j.Pending(journal.Execute, 42)
	require.NoError(t, err)
	assert.Equal(t, transactionrecord.GroupId{1}, pending.GroupId)
	assert.Equal(t, journal.Submitted, pending.Status)
}

func TestLifecycle(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	j, err := journal.OpenMemory(logger.New(fixtures.LogCategory))
	require.NoError(t, err)
	defer j.Close()

	g := transactionrecord.GroupId{1}
	require.NoError(t, j.Begin(newEntry(1, 42, journal.Execute)))

	// timeout keeps it open
	require.NoError(t, j.TimedOut(g))
	assert.Equal(t, fault.ErrSubmissionPending, j.Begin(newEntry(2, 42, journal.Execute)))

	open, err := j.List(true)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	// later found confirmed
	require.NoError(t, j.Resolve(g, 1234))
	entry, err := j.Get(g)
	require.NoError(t, err)
	assert.Equal(t, journal.Confirmed, entry.Status)
	assert.Equal(t, uint64(1234), entry.Round)

	_, err = j.Pending(journal.Execute, 42)
	assert.Equal(t, fault.ErrNotFound, err)

	// released
	assert.NoError(t, j.Begin(newEntry(2, 42, journal.Execute)))
	require.NoError(t, j.Rejected(transactionrecord.GroupId{2}, "overspend"))
	entry, err = j.Get(transactionrecord.GroupId{2})
	require.NoError(t, err)
	assert.Equal(t, journal.Rejected, entry.Status)
	assert.Equal(t, "overspend", entry.Message)

	all, err := j.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	open, err = j.List(true)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestResolveAbandoned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	j, err := journal.OpenMemory(logger.New(fixtures.LogCategory))
	require.NoError(t, err)
	defer j.Close()

	g := transactionrecord.GroupId{9}
	require.NoError(t, j.Begin(newEntry(9, 1, journal.Create)))
	require.NoError(t, j.TimedOut(g))
	require.NoError(t, j.Resolve(g, 0))

	entry, err := j.Get(g)
	require.NoError(t, err)
	assert.Equal(t, journal.Abandoned, entry.Status)
	assert.False(t, entry.Status.IsOpen())

	assert.Equal(t, fault.ErrNotFound, j.Confirmed(transactionrecord.GroupId{8}, 1))
}

func TestPersistence(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	filename := filepath.Join(t.TempDir(), "journal.leveldb")

	j, err := journal.Open(logger.New(fixtures.LogCategory), filename)
	require.NoError(t, err)
	require.NoError(t, j.Begin(newEntry(5, 77, journal.Fund)))
	require.NoError(t, j.Close())

	j, err = journal.Open(logger.New(fixtures.LogCategory), filename)
	require.NoError(t, err)
	defer j.Close()

	assert.Equal(t, fault.ErrSubmissionPending, j.Begin(newEntry(6, 77, journal.Fund)))
	entry, err := j.Pending(journal.Fund, 77)
	require.NoError(t, err)
	assert.Equal(t, []transactionrecord.TxId{{5, 1}}, entry.TxIds)
}
