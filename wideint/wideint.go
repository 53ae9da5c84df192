// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wideint - 64, 128 and 256 bit integers as sequences of
// 64 bit limbs
//
// A value of width W is written as W/64 big-endian limbs, most
// significant first.  Concatenating the limbs' two's complement bit
// patterns reproduces the two's complement pattern of the value at
// width W, so a negative value has all-ones limbs above the limb
// holding its sign boundary.
package wideint

import (
	"math/big"

	"github.com/bitmark-inc/ledgerkit/fault"
	"github.com/bitmark-inc/ledgerkit/xdr"
)

// Width - number of bits in a wide value
type Width int

// supported widths
const (
	Width64  Width = 64
	Width128 Width = 128
	Width256 Width = 256
)

const limbBits = 64

// common big integers
var (
	big1      = big.NewInt(1)
	limbMask  = new(big.Int).Sub(new(big.Int).Lsh(big1, limbBits), big1)
	limbRange = new(big.Int).Lsh(big1, limbBits)
	limbSign  = new(big.Int).Lsh(big1, limbBits-1)
)

// Limbs - number of 64 bit limbs for the width
func (w Width) Limbs() int {
	return int(w) / limbBits
}

// Valid - only 64, 128 and 256 are defined
func (w Width) Valid() bool {
	switch w {
	case Width64, Width128, Width256:
		return true
	default:
		return false
	}
}

// MinSigned - smallest signed value: -2^(w-1)
func (w Width) MinSigned() *big.Int {
	return new(big.Int).Neg(new(big.Int).Lsh(big1, uint(w)-1))
}

// MaxSigned - largest signed value: 2^(w-1)-1
func (w Width) MaxSigned() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big1, uint(w)-1), big1)
}

// MaxUnsigned - largest unsigned value: 2^w-1
func (w Width) MaxUnsigned() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big1, uint(w)), big1)
}

// SplitLimbs - decompose a value into count limbs, most significant
// first
//
// each limb is returned as a signed value in the int64 range; the
// value may be anything from -2^(w-1) up to 2^w-1 so both signed and
// unsigned interpretations of width w can be split
func SplitLimbs(value *big.Int, count int) ([]*big.Int, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidLimbCount
	}
	width := Width(count * limbBits)
	if value.Cmp(width.MinSigned()) < 0 || value.Cmp(width.MaxUnsigned()) > 0 {
		return nil, fault.ErrValueOutOfRange
	}

	limbs := make([]*big.Int, count)
	for i := 0; i < count; i += 1 {
		// Rsh on a negative big.Int is an arithmetic shift and And
		// uses two's complement, so the sign fills the upper limbs
		shifted := new(big.Int).Rsh(value, uint(limbBits*(count-1-i)))
		limbs[i] = toSigned(shifted.And(shifted, limbMask))
	}
	return limbs, nil
}

// JoinLimbs - reassemble limbs into a signed value
//
// inverse of SplitLimbs for values in the signed range
func JoinLimbs(limbs []*big.Int) *big.Int {
	result := JoinLimbsUnsigned(limbs)
	if 0 == len(limbs) {
		return result
	}
	width := uint(len(limbs) * limbBits)
	if 1 == result.Bit(int(width)-1) {
		result.Sub(result, new(big.Int).Lsh(big1, width))
	}
	return result
}

// JoinLimbsUnsigned - reassemble limbs into a non-negative value
//
// inverse of SplitLimbs for values in the unsigned range
func JoinLimbsUnsigned(limbs []*big.Int) *big.Int {
	result := new(big.Int)
	for _, limb := range limbs {
		result.Lsh(result, limbBits)
		result.Or(result, toUnsigned(limb))
	}
	return result
}

// Write - encode value as width/64 limbs
func Write(e *xdr.Encoder, value *big.Int, width Width) error {
	if !width.Valid() {
		return fault.ErrInvalidWidth
	}
	limbs, err := SplitLimbs(value, width.Limbs())
	if nil != err {
		return err
	}
	for _, limb := range limbs {
		e.WriteUint64(toUnsigned(limb).Uint64())
	}
	return nil
}

// ReadSigned - decode width/64 limbs as a two's complement value
func ReadSigned(d *xdr.Decoder, width Width) (*big.Int, error) {
	limbs, err := readLimbs(d, width)
	if nil != err {
		return nil, err
	}
	return JoinLimbs(limbs), nil
}

// ReadUnsigned - decode width/64 limbs as a non-negative value
func ReadUnsigned(d *xdr.Decoder, width Width) (*big.Int, error) {
	limbs, err := readLimbs(d, width)
	if nil != err {
		return nil, err
	}
	return JoinLimbsUnsigned(limbs), nil
}

func readLimbs(d *xdr.Decoder, width Width) ([]*big.Int, error) {
	if !width.Valid() {
		return nil, fault.ErrInvalidWidth
	}
	limbs := make([]*big.Int, width.Limbs())
	for i := range limbs {
		u, err := d.ReadUint64()
		if nil != err {
			return nil, err
		}
		limbs[i] = toSigned(new(big.Int).SetUint64(u))
	}
	return limbs, nil
}

// reinterpret a 64 bit pattern in [0, 2^64) as a signed limb
func toSigned(pattern *big.Int) *big.Int {
	if pattern.Cmp(limbSign) >= 0 {
		return pattern.Sub(pattern, limbRange)
	}
	return pattern
}

// bit pattern of a limb as a value in [0, 2^64)
func toUnsigned(limb *big.Int) *big.Int {
	return new(big.Int).And(limb, limbMask)
}
