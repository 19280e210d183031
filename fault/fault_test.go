// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrLengthOne   = fault.LengthError("length one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrRecordOne   = fault.RecordError("record one")
	ErrTimeoutOne  = fault.TimeoutError("timeout one")
)

// test that the various classes can be distinguished, even when wrapped
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
		timeout  bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, false, true, false, false},
		{ErrRecordOne, false, false, false, false, false, true, false},
		{ErrTimeoutOne, false, false, false, false, false, false, true},
		{fmt.Errorf("read trade 42: %w", fault.ErrNotFound), false, false, false, true, false, false, false},
		{fmt.Errorf("read trade 42: %w", fault.ErrCorruptRecord), false, false, false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists for err = %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid for err = %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: length for err = %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found for err = %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process for err = %v", i, err)
		assert.Equal(t, e.record, fault.IsErrRecord(err), "%d: record for err = %v", i, err)
		assert.Equal(t, e.timeout, fault.IsErrTimeout(err), "%d: timeout for err = %v", i, err)
	}
}

func TestSubmissionError(t *testing.T) {
	message := "transaction rejected: overspend (account X, balance 10)"
	err := fmt.Errorf("submit: %w", &fault.SubmissionError{
		Class:   fault.ErrInsufficientBalance,
		Message: message,
	})

	assert.True(t, errors.Is(err, fault.ErrInsufficientBalance))
	assert.False(t, errors.Is(err, fault.ErrBoxReferenceMissing))
	assert.True(t, fault.IsErrSubmission(err))
	assert.True(t, fault.IsErrProcess(err))
	assert.Contains(t, err.Error(), message)
}

func TestValidation(t *testing.T) {
	assert.True(t, fault.IsErrValidation(fault.ErrInvalidPrincipal))
	assert.True(t, fault.IsErrValidation(fault.ErrStringTooLong))
	assert.False(t, fault.IsErrValidation(fault.ErrSigningIncomplete))
	assert.False(t, fault.IsErrValidation(fault.ErrConfirmationTimeout))
}
