// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/ledgerkit/fault"
)

// Decoder - position tracked input cursor
type Decoder struct {
	buffer []byte
	offset int
}

// NewDecoder - create a decoder reading from the start of data
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buffer: data,
	}
}

// Offset - number of bytes consumed
func (d *Decoder) Offset() int {
	return d.offset
}

// Remaining - number of bytes not yet consumed
func (d *Decoder) Remaining() int {
	return len(d.buffer) - d.offset
}

// Read - the next n bytes, then consume the padding to the four
// byte boundary
//
// the padding must be all zero; the result is a copy
func (d *Decoder) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, fault.ErrInvalidPayloadLength
	}
	pad := padLength(n)
	if n > d.Remaining() || d.Remaining()-n < pad {
		return nil, fault.ErrTruncated
	}

	// nothing is consumed unless the padding is valid
	end := d.offset + n
	for _, b := range d.buffer[end : end+pad] {
		if 0 != b {
			return nil, fault.ErrNonZeroPadding
		}
	}
	data := make([]byte, n)
	copy(data, d.buffer[d.offset:end])
	d.offset = end + pad
	return data, nil
}

// fixed size integer read, never padded
func (d *Decoder) next(n int) ([]byte, error) {
	if d.Remaining() < n {
		return nil, fault.ErrTruncated
	}
	data := d.buffer[d.offset : d.offset+n]
	d.offset += n
	return data, nil
}

// ReadInt32 - signed 32 bit big-endian
func (d *Decoder) ReadInt32() (int32, error) {
	u, err := d.ReadUint32()
	return int32(u), err
}

// ReadUint32 - unsigned 32 bit big-endian
func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.next(4)
	if nil != err {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt64 - one 8 byte limb interpreted as two's complement
func (d *Decoder) ReadInt64() (int64, error) {
	u, err := d.ReadUint64()
	return int64(u), err
}

// ReadUint64 - one 8 byte limb interpreted as unsigned
//
// same bytes as ReadInt64, only the interpretation differs
func (d *Decoder) ReadUint64() (uint64, error) {
	b, err := d.next(8)
	if nil != err {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadBool - only 0 and 1 are accepted
func (d *Decoder) ReadBool() (bool, error) {
	i, err := d.ReadInt32()
	if nil != err {
		return false, err
	}
	switch i {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidBool
	}
}

// ReadEnum - enumerations and union discriminants
func (d *Decoder) ReadEnum() (int32, error) {
	return d.ReadInt32()
}

// ReadFixedOpaque - exactly n bytes plus padding
func (d *Decoder) ReadFixedOpaque(n int) ([]byte, error) {
	return d.Read(n)
}

// ReadOpaque - length prefixed data
//
// a maximum of zero means no limit other than the input length
func (d *Decoder) ReadOpaque(maximum int) ([]byte, error) {
	n, err := d.readLength(maximum, fault.ErrOpaqueTooLong)
	if nil != err {
		return nil, err
	}
	return d.Read(n)
}

// ReadString - length prefixed UTF-8 bytes
//
// invalid UTF-8 is rejected, a maximum of zero means MaximumStringLength
func (d *Decoder) ReadString(maximum int) (string, error) {
	if maximum <= 0 || maximum > MaximumStringLength {
		maximum = MaximumStringLength
	}
	n, err := d.readLength(maximum, fault.ErrStringTooLong)
	if nil != err {
		return "", err
	}
	b, err := d.Read(n)
	if nil != err {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fault.ErrInvalidUTF8
	}
	return string(b), nil
}

// ReadArrayLength - element count prefix of a variable array
func (d *Decoder) ReadArrayLength(maximum int) (int, error) {
	return d.readLength(maximum, fault.ErrArrayTooLong)
}

// ReadOptional - presence flag then the value if present
//
// returns whether the value was present
func (d *Decoder) ReadOptional(decodeValue func(d *Decoder) error) (bool, error) {
	present, err := d.ReadBool()
	if nil != err || !present {
		return false, err
	}
	return true, decodeValue(d)
}

func (d *Decoder) readLength(maximum int, tooLong error) (int, error) {
	u, err := d.ReadUint32()
	if nil != err {
		return 0, err
	}
	if maximum > 0 && uint64(u) > uint64(maximum) {
		return 0, tooLong
	}
	// a length larger than the input can never be satisfied
	if uint64(u) > uint64(d.Remaining()) {
		return 0, fault.ErrTruncated
	}
	return int(u), nil
}
