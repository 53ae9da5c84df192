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
type CapabilityError GenericError
type ExistsError GenericError
type FormatError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TruncatedError GenericError
type ValueError GenericError

// common errors - keep in alphabetic order
var (
	ErrArrayTooLong           = LengthError("array too long")
	ErrCannotSign             = CapabilityError("identity has no private key")
	ErrChecksumMismatch       = FormatError("checksum mismatch")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrHashTooLong            = LengthError("hash too long")
	ErrIdentityExists         = ExistsError("identity already exists")
	ErrIdentityNotFound       = NotFoundError("identity not found")
	ErrInvalidBase32          = FormatError("invalid base32 encoding")
	ErrInvalidBase64          = FormatError("invalid base64 encoding")
	ErrInvalidBool            = FormatError("invalid boolean value")
	ErrInvalidKeyLength       = LengthError("invalid key length")
	ErrInvalidLimbCount       = ValueError("invalid limb count")
	ErrInvalidName            = InvalidError("invalid identity name")
	ErrInvalidPayloadLength   = FormatError("invalid payload length")
	ErrInvalidStrKey          = FormatError("invalid strkey")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidUTF8            = FormatError("invalid UTF-8")
	ErrInvalidVersionByte     = FormatError("version byte mismatch")
	ErrInvalidWidth           = ValueError("invalid integer width")
	ErrMemoIDZero             = ValueError("memo id must be non-zero")
	ErrMemoTextTooLong        = LengthError("memo text too long")
	ErrNegativeCount          = LengthError("negative element count")
	ErrNoSeed                 = CapabilityError("identity has no seed")
	ErrNonZeroPadding         = FormatError("non-zero padding")
	ErrOpaqueTooLong          = LengthError("opaque data too long")
	ErrSignatureTooLong       = LengthError("signature too long")
	ErrStringTooLong          = LengthError("string too long")
	ErrTrailingData           = FormatError("trailing data after value")
	ErrTruncated              = TruncatedError("input truncated")
	ErrUnknownDiscriminant    = FormatError("unknown union discriminant")
	ErrUnknownVersionByte     = FormatError("unknown version byte")
	ErrValueOutOfRange        = ValueError("value out of range")
	ErrWrongPassword          = InvalidError("wrong password")
	ErrWrongSealedRecordValue = ProcessError("sealed record does not match identity")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CapabilityError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e FormatError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e TruncatedError) Error() string  { return string(e) }
func (e ValueError) Error() string      { return string(e) }

// determine the class of an error
//
// wrapped errors are unwrapped so that decoders can add field context
// without losing the class
func IsErrCapability(e error) bool { var t CapabilityError; return errors.As(e, &t) }
func IsErrExists(e error) bool     { var t ExistsError; return errors.As(e, &t) }
func IsErrFormat(e error) bool     { var t FormatError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool    { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool     { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool   { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool    { var t ProcessError; return errors.As(e, &t) }
func IsErrTruncated(e error) bool  { var t TruncatedError; return errors.As(e, &t) }
func IsErrValue(e error) bool      { var t ValueError; return errors.As(e, &t) }
