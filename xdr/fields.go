// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"fmt"
)

// Field - one member of a structure in wire order
//
// a structure is described by a fixed slice of these, built by a
// method on the structure so the closures bind to its members
type Field struct {
	Name   string
	Encode func(e *Encoder) error
	Decode func(d *Decoder) error
}

// EncodeFields - write every field in order
func EncodeFields(e *Encoder, fields []Field) error {
	for _, f := range fields {
		if err := f.Encode(e); nil != err {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

// DecodeFields - read every field in order
func DecodeFields(d *Decoder, fields []Field) error {
	for _, f := range fields {
		if err := f.Decode(d); nil != err {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}
