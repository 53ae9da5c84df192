// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"encoding/base64"

	"github.com/bitmark-inc/ledgerkit/fault"
)

// Encodable - a value that can write itself to an Encoder
type Encodable interface {
	EncodeTo(e *Encoder) error
}

// Decodable - a value that can read itself from a Decoder
type Decodable interface {
	DecodeFrom(d *Decoder) error
}

// Marshal - encode a single value
func Marshal(v Encodable) ([]byte, error) {
	e := NewEncoder()
	if err := v.EncodeTo(e); nil != err {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal - decode a single value that must use all of data
func Unmarshal(data []byte, v Decodable) error {
	d := NewDecoder(data)
	if err := v.DecodeFrom(d); nil != err {
		return err
	}
	if 0 != d.Remaining() {
		return fault.ErrTrailingData
	}
	return nil
}

// MarshalBase64 - encode a value to the base64 text form used when
// passing wire data through text protocols
func MarshalBase64(v Encodable) (string, error) {
	b, err := Marshal(v)
	if nil != err {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// UnmarshalBase64 - decode the base64 text form of a value
func UnmarshalBase64(s string, v Decodable) error {
	b, err := base64.StdEncoding.DecodeString(s)
	if nil != err {
		return fault.ErrInvalidBase64
	}
	return Unmarshal(b, v)
}
