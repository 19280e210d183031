// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type TimeoutError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAmountOverflow       = InvalidError("amount overflow")
	ErrCertificateMismatch  = InvalidError("certificate fingerprint mismatch")
	ErrChecksumMismatch     = InvalidError("checksum mismatch")
	ErrConfirmationTimeout  = TimeoutError("confirmation timeout")
	ErrCorruptRecord        = RecordError("corrupt record")
	ErrCryptoFailed         = ProcessError("crypto failed")
	ErrEmptyGroup           = InvalidError("empty transaction group")
	ErrGroupTooLarge        = LengthError("transaction group too large")
	ErrIdentityNotFound     = NotFoundError("identity not found")
	ErrInstrumentNotHeld    = InvalidError("instrument not held by seller")
	ErrInvalidAddress       = InvalidError("invalid address")
	ErrInvalidBoxKey        = InvalidError("invalid box key")
	ErrInvalidBoxName       = InvalidError("invalid box name")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidDocumentPhase = InvalidError("invalid document phase")
	ErrInvalidInstrument    = InvalidError("invalid instrument")
	ErrInvalidKeyLength     = LengthError("invalid key length")
	ErrInvalidPrincipal     = InvalidError("invalid principal")
	ErrInvalidRate          = InvalidError("invalid rate")
	ErrInvalidSignature     = InvalidError("invalid signature")
	ErrInvalidSeed          = InvalidError("invalid seed")
	ErrInvalidState         = InvalidError("invalid state")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTransition    = InvalidError("invalid state transition")
	ErrMissingApplication   = InvalidError("missing application id")
	ErrMissingConnection    = InvalidError("missing connection")
	ErrMissingParameters    = InvalidError("missing network parameters")
	ErrNotFound             = NotFoundError("not found")
	ErrNotOptedIn           = InvalidError("recipient not opted in to asset")
	ErrNotPermitted         = InvalidError("initiator not permitted")
	ErrNotTransactionPack   = RecordError("not transaction pack")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrSameParty            = InvalidError("buyer and seller are the same account")
	ErrShortBuffer          = LengthError("short buffer")
	ErrSigningIncomplete    = ProcessError("signing incomplete")
	ErrStaleState           = ProcessError("stale trade state")
	ErrStringTooLong        = LengthError("string too long")
	ErrSubmissionPending    = ExistsError("submission pending")
	ErrTerminalState        = InvalidError("trade is in a terminal state")
	ErrTooManyReferences    = LengthError("too many references")
	ErrTrailingData         = RecordError("trailing data")
	ErrUnknownTransaction   = RecordError("unknown transaction type")
	ErrWrongPassword        = InvalidError("wrong password")
	ErrZeroAddress          = InvalidError("zero address")
)

// rejection classes for submission errors
var (
	ErrBoxReferenceMissing   = ProcessError("box reference missing")
	ErrContractLogicRejected = ProcessError("contract logic rejected")
	ErrInsufficientBalance   = ProcessError("insufficient balance")
	ErrUnclassified          = ProcessError("unclassified rejection")
)

// SubmissionError - a ledger rejection of a submitted group
//
// Class is one of the rejection classes above, Message is the text
// returned by the ledger, unmodified
type SubmissionError struct {
	Class   error
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Class.Error() + ": " + e.Message
}

// Unwrap - allow errors.Is(err, fault.ErrInsufficientBalance)
func (e *SubmissionError) Unwrap() error {
	return e.Class
}

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }
func (e TimeoutError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
func IsErrTimeout(e error) bool  { var x TimeoutError; return errors.As(e, &x) }

// IsErrSubmission - true for a classified ledger rejection
func IsErrSubmission(e error) bool {
	var x *SubmissionError
	return errors.As(e, &x)
}

// IsErrValidation - local validation failures that never reach the ledger
func IsErrValidation(e error) bool {
	return IsErrInvalid(e) || IsErrLength(e)
}
