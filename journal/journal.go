// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - local record of submitted groups
//
// a group that was submitted but not seen confirmed blocks any new
// submission for the same trade and operation, so a group is never
// rebuilt under a new group id while the first may still confirm
package journal

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// key prefixes
const (
	entryPrefix   = 'G' // group id → entry
	pendingPrefix = 'P' // operation ++ trade id → group id
)

var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentVersion = 0x100

// Operation - facade operation that produced a group
type Operation string

// operations
const (
	Create  Operation = "create"
	Fund    Operation = "fund"
	Execute Operation = "execute"
	Cancel  Operation = "cancel"
)

// Status - what is known about a submitted group
type Status string

// statuses
const (
	Submitted Status = "submitted"
	Confirmed Status = "confirmed"
	TimedOut  Status = "timeout"
	Rejected  Status = "rejected"
	Abandoned Status = "abandoned"
)

// IsOpen - still blocks a new submission
func (s Status) IsOpen() bool {
	return Submitted == s || TimedOut == s
}

// Entry - one submitted group
type Entry struct {
	GroupId     transactionrecord.GroupId `json:"groupId"`
	TxIds       []transactionrecord.TxId  `json:"txIds"`
	TradeId     uint64                    `json:"tradeId"`
	Operation   Operation                 `json:"operation"`
	Status      Status                    `json:"status"`
	Round       uint64                    `json:"round,omitempty"`
	Message     string                    `json:"message,omitempty"`
	OperationId string                    `json:"operationId"`
	Created     time.Time                 `json:"created"`
	Updated     time.Time                 `json:"updated"`
}

// Journal - leveldb backed
type Journal struct {
	sync.Mutex
	log *logger.L
	db  *leveldb.DB
}

// Open - open or create the journal database
func Open(log *logger.L, filename string) (*Journal, error) {
	db, err := leveldb.OpenFile(filename, &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	})
	if nil != err {
		return nil, err
	}
	return setup(log, db)
}

// OpenMemory - a journal that is lost on close
func OpenMemory(log *logger.L) (*Journal, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(log, db)
}

func setup(log *logger.L, db *leveldb.DB) (*Journal, error) {
	version, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		v := make([]byte, 4)
		binary.BigEndian.PutUint32(v, currentVersion)
		err = db.Put(versionKey, v, nil)
	} else if nil == err && (4 != len(version) || binary.BigEndian.Uint32(version) > currentVersion) {
		log.Criticalf("journal version: %x is newer than: %x", version, currentVersion)
		err = fault.ErrCorruptRecord
	}
	if nil != err {
		db.Close()
		return nil, err
	}
	return &Journal{log: log, db: db}, nil
}

// Close - flush and close the database
func (j *Journal) Close() error {
	j.Lock()
	defer j.Unlock()
	return j.db.Close()
}

func entryKey(groupId transactionrecord.GroupId) []byte {
	return append([]byte{entryPrefix}, groupId[:]...)
}

func pendingKey(operation Operation, tradeId uint64) []byte {
	key := append([]byte{pendingPrefix}, string(operation)...)
	key = append(key, 0x00)
	return binary.BigEndian.AppendUint64(key, tradeId)
}

func (j *Journal) get(groupId transactionrecord.GroupId) (*Entry, error) {
	buffer, err := j.db.Get(entryKey(groupId), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrNotFound
	}
	if nil != err {
		return nil, err
	}
	entry := &Entry{}
	if err := json.Unmarshal(buffer, entry); nil != err {
		return nil, fault.ErrCorruptRecord
	}
	return entry, nil
}

func putEntry(batch *leveldb.Batch, entry *Entry) error {
	buffer, err := json.Marshal(entry)
	if nil != err {
		return err
	}
	batch.Put(entryKey(entry.GroupId), buffer)
	return nil
}

// Begin - record a group about to be submitted
//
// fails with fault.ErrSubmissionPending if an earlier group for the
// same trade and operation is still open
func (j *Journal) Begin(entry *Entry) error {
	j.Lock()
	defer j.Unlock()

	pk := pendingKey(entry.Operation, entry.TradeId)
	existing, err := j.db.Get(pk, nil)
	if nil == err {
		var groupId transactionrecord.GroupId
		copy(groupId[:], existing)
		j.log.Warnf("trade: %d  %s already pending as group: %s", entry.TradeId, entry.Operation, groupId)
		return fault.ErrSubmissionPending
	}
	if leveldb.ErrNotFound != err {
		return err
	}

	now := time.Now().UTC()
	entry.Status = Submitted
	entry.Created = now
	entry.Updated = now

	batch := new(leveldb.Batch)
	if err := putEntry(batch, entry); nil != err {
		return err
	}
	batch.Put(pk, entry.GroupId[:])
	return j.db.Write(batch, nil)
}

// update an entry; closing statuses release the pending key
func (j *Journal) update(groupId transactionrecord.GroupId, status Status, round uint64, message string) error {
	j.Lock()
	defer j.Unlock()

	entry, err := j.get(groupId)
	if nil != err {
		return err
	}

	entry.Status = status
	entry.Round = round
	if "" != message {
		entry.Message = message
	}
	entry.Updated = time.Now().UTC()

	batch := new(leveldb.Batch)
	if err := putEntry(batch, entry); nil != err {
		return err
	}
	if !status.IsOpen() {
		batch.Delete(pendingKey(entry.Operation, entry.TradeId))
	}

	j.log.Infof("group: %s  trade: %d  %s → %s", groupId, entry.TradeId, entry.Operation, status)
	return j.db.Write(batch, nil)
}

// Confirmed - group seen in a block
func (j *Journal) Confirmed(groupId transactionrecord.GroupId, round uint64) error {
	return j.update(groupId, Confirmed, round, "")
}

// Rejected - ledger refused the group, nothing was applied
func (j *Journal) Rejected(groupId transactionrecord.GroupId, message string) error {
	return j.update(groupId, Rejected, 0, message)
}

// TimedOut - not confirmed within the wait; stays open
func (j *Journal) TimedOut(groupId transactionrecord.GroupId) error {
	return j.update(groupId, TimedOut, 0, "")
}

// Resolve - close a timed out group after its outcome was checked
//
// round is the confirmation round if it did confirm, zero otherwise
func (j *Journal) Resolve(groupId transactionrecord.GroupId, round uint64) error {
	if round > 0 {
		return j.Confirmed(groupId, round)
	}
	return j.update(groupId, Abandoned, 0, "resolved without confirmation")
}

// Get - entry for a group
func (j *Journal) Get(groupId transactionrecord.GroupId) (*Entry, error) {
	j.Lock()
	defer j.Unlock()
	return j.get(groupId)
}

// Pending - open entry for a trade and operation
func (j *Journal) Pending(operation Operation, tradeId uint64) (*Entry, error) {
	j.Lock()
	defer j.Unlock()

	buffer, err := j.db.Get(pendingKey(operation, tradeId), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrNotFound
	}
	if nil != err {
		return nil, err
	}
	var groupId transactionrecord.GroupId
	copy(groupId[:], buffer)
	return j.get(groupId)
}

// List - every entry, optionally only the open ones
func (j *Journal) List(openOnly bool) ([]*Entry, error) {
	j.Lock()
	defer j.Unlock()

	iter := j.db.NewIterator(ldb_util.BytesPrefix([]byte{entryPrefix}), nil)
	defer iter.Release()

	entries := make([]*Entry, 0)
	for iter.Next() {
		entry := &Entry{}
		if err := json.Unmarshal(iter.Value(), entry); nil != err {
			return nil, fault.ErrCorruptRecord
		}
		if openOnly && !entry.Status.IsOpen() {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, iter.Error()
}
