// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package strkey - versioned, checksummed base32 text form of keys
// and hashes
//
//   base32( version(1) ∥ payload(32) ∥ crc16-xmodem(version ∥ payload)(2, LE) )
//
// The version byte selects the purpose of the payload so that a seed
// can never be mistaken for an account id and so on.
package strkey

import (
	"encoding/base32"

	"github.com/bitmark-inc/ledgerkit/crc16"
	"github.com/bitmark-inc/ledgerkit/fault"
)

// VersionByte - first byte of the decoded data
type VersionByte byte

// enumeration of version bytes, each a five bit code shifted left
// three bits so the first base32 character is fixed per kind
const (
	VersionByteAccountID  VersionByte = 6 << 3  // 'G'
	VersionByteSeed       VersionByte = 18 << 3 // 'S'
	VersionBytePreAuthTx  VersionByte = 19 << 3 // 'T'
	VersionByteSHA256Hash VersionByte = 23 << 3 // 'X'
)

// PayloadSize - all defined kinds carry 32 bytes
const PayloadSize = 32

// miscellaneous constants
const (
	versionLength  = 1
	checksumLength = crc16.Size
	encodedLength  = versionLength + PayloadSize + checksumLength
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

var versionNames = map[VersionByte]string{
	VersionByteAccountID:  "account-id",
	VersionByteSeed:       "seed",
	VersionBytePreAuthTx:  "pre-auth-tx",
	VersionByteSHA256Hash: "sha256-hash",
}

// String - name of the version
func (v VersionByte) String() string {
	if s, ok := versionNames[v]; ok {
		return s
	}
	return "unknown"
}

// Valid - one of the defined version bytes
func (v VersionByte) Valid() bool {
	_, ok := versionNames[v]
	return ok
}

// VersionFromName - inverse of String
func VersionFromName(name string) (VersionByte, error) {
	for v, s := range versionNames {
		if s == name {
			return v, nil
		}
	}
	return 0, fault.ErrUnknownVersionByte
}

// Encode - text form of payload under the given version
func Encode(version VersionByte, payload []byte) (string, error) {
	if !version.Valid() {
		return "", fault.ErrUnknownVersionByte
	}
	if PayloadSize != len(payload) {
		return "", fault.ErrInvalidPayloadLength
	}

	buffer := make([]byte, 0, encodedLength)
	buffer = append(buffer, byte(version))
	buffer = append(buffer, payload...)
	checksum := crc16.Bytes(buffer)
	buffer = append(buffer, checksum[:]...)

	return encoding.EncodeToString(buffer), nil
}

// MustEncode - Encode that panics, for payloads known to be valid
func MustEncode(version VersionByte, payload []byte) string {
	s, err := Encode(version, payload)
	if nil != err {
		panic("strkey: " + err.Error())
	}
	return s
}

// Decode - payload of a text form that must carry the given version
func Decode(expected VersionByte, s string) ([]byte, error) {
	data, checksum, err := split(s)
	if nil != err {
		return nil, err
	}
	if expected != VersionByte(data[0]) {
		return nil, fault.ErrInvalidVersionByte
	}
	if !crc16.Verify(data, checksum) {
		return nil, fault.ErrChecksumMismatch
	}
	payload := data[versionLength:]
	if PayloadSize != len(payload) {
		return nil, fault.ErrInvalidPayloadLength
	}
	return append([]byte{}, payload...), nil
}

// Version - version byte of a valid text form of any kind
func Version(s string) (VersionByte, error) {
	data, checksum, err := split(s)
	if nil != err {
		return 0, err
	}
	if !crc16.Verify(data, checksum) {
		return 0, fault.ErrChecksumMismatch
	}
	version := VersionByte(data[0])
	if !version.Valid() {
		return 0, fault.ErrUnknownVersionByte
	}
	return version, nil
}

// IsValid - true if s decodes under the given version
func IsValid(expected VersionByte, s string) bool {
	_, err := Decode(expected, s)
	return nil == err
}

// base32 decode and separate the checksum from version ∥ payload
func split(s string) ([]byte, []byte, error) {
	raw, err := encoding.DecodeString(s)
	if nil != err {
		return nil, nil, fault.ErrInvalidBase32
	}

	// base32 ignores unused trailing bits, re-encoding rejects the
	// aliases that differ only in those bits
	if encoding.EncodeToString(raw) != s {
		return nil, nil, fault.ErrInvalidBase32
	}

	if len(raw) < versionLength+checksumLength {
		return nil, nil, fault.ErrInvalidStrKey
	}

	checksumStart := len(raw) - checksumLength
	return raw[:checksumStart], raw[checksumStart:], nil
}
