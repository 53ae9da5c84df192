// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wideint

import (
	"math/big"

	"github.com/bitmark-inc/ledgerkit/fault"
	"github.com/bitmark-inc/ledgerkit/xdr"
)

// Value - a wide integer of fixed width and signedness
//
// the zero Value is not usable, create one with the constructors
type Value struct {
	width  Width
	signed bool
	value  *big.Int
}

// NewInt128 - signed 128 bit value
func NewInt128(v *big.Int) (Value, error) {
	return newValue(v, Width128, true)
}

// NewUint128 - unsigned 128 bit value
func NewUint128(v *big.Int) (Value, error) {
	return newValue(v, Width128, false)
}

// NewInt256 - signed 256 bit value
func NewInt256(v *big.Int) (Value, error) {
	return newValue(v, Width256, true)
}

// NewUint256 - unsigned 256 bit value
func NewUint256(v *big.Int) (Value, error) {
	return newValue(v, Width256, false)
}

// New - any supported width and signedness
func New(v *big.Int, width Width, signed bool) (Value, error) {
	return newValue(v, width, signed)
}

// Zero - a zero value ready for decoding
func Zero(width Width, signed bool) Value {
	return Value{
		width:  width,
		signed: signed,
		value:  new(big.Int),
	}
}

func newValue(v *big.Int, width Width, signed bool) (Value, error) {
	if !width.Valid() {
		return Value{}, fault.ErrInvalidWidth
	}
	if signed {
		if v.Cmp(width.MinSigned()) < 0 || v.Cmp(width.MaxSigned()) > 0 {
			return Value{}, fault.ErrValueOutOfRange
		}
	} else if v.Sign() < 0 || v.Cmp(width.MaxUnsigned()) > 0 {
		return Value{}, fault.ErrValueOutOfRange
	}
	return Value{
		width:  width,
		signed: signed,
		value:  new(big.Int).Set(v),
	}, nil
}

// Width - number of bits
func (v Value) Width() Width {
	return v.width
}

// Signed - whether the value is two's complement
func (v Value) Signed() bool {
	return v.signed
}

// Int - copy of the value
func (v Value) Int() *big.Int {
	if nil == v.value {
		return new(big.Int)
	}
	return new(big.Int).Set(v.value)
}

// Limbs - the value split into its wire limbs
func (v Value) Limbs() ([]*big.Int, error) {
	return SplitLimbs(v.Int(), v.width.Limbs())
}

// Equal - same width, signedness and value
func (v Value) Equal(other Value) bool {
	return v.width == other.width && v.signed == other.signed && 0 == v.Int().Cmp(other.Int())
}

// String - decimal form
func (v Value) String() string {
	return v.Int().String()
}

// EncodeTo - limbs most significant first
func (v Value) EncodeTo(e *xdr.Encoder) error {
	return Write(e, v.Int(), v.width)
}

// DecodeFrom - reads the width and signedness the receiver already has
func (v *Value) DecodeFrom(d *xdr.Decoder) error {
	var (
		result *big.Int
		err    error
	)
	if v.signed {
		result, err = ReadSigned(d, v.width)
	} else {
		result, err = ReadUnsigned(d, v.width)
	}
	if nil != err {
		return err
	}
	v.value = result
	return nil
}
