// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/bitmark-inc/ledgerkit/fault"
)

// MaximumStringLength - hard limit on any string field
const MaximumStringLength = 65535

// Encoder - append only output cursor
type Encoder struct {
	buffer []byte
}

// NewEncoder - create an empty encoder
func NewEncoder() *Encoder {
	return &Encoder{
		buffer: make([]byte, 0, 64),
	}
}

// Bytes - the encoded data so far
func (e *Encoder) Bytes() []byte {
	return e.buffer
}

// Len - number of bytes written so far
func (e *Encoder) Len() int {
	return len(e.buffer)
}

// Write - append raw bytes followed by zero padding up to the next
// four byte boundary
func (e *Encoder) Write(data []byte) {
	e.buffer = append(e.buffer, data...)
	if pad := padLength(len(data)); pad > 0 {
		e.buffer = append(e.buffer, zeroPad[:pad]...)
	}
}

// WriteInt32 - signed 32 bit big-endian
func (e *Encoder) WriteInt32(value int32) {
	e.WriteUint32(uint32(value))
}

// WriteUint32 - unsigned 32 bit big-endian
func (e *Encoder) WriteUint32(value uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], value)
	e.buffer = append(e.buffer, buf[:]...)
}

// WriteInt64 - one 8 byte two's complement limb
func (e *Encoder) WriteInt64(value int64) {
	e.WriteUint64(uint64(value))
}

// WriteUint64 - one 8 byte limb
func (e *Encoder) WriteUint64(value uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)
	e.buffer = append(e.buffer, buf[:]...)
}

// WriteBool - encoded as an int32 of 0 or 1
func (e *Encoder) WriteBool(value bool) {
	if value {
		e.WriteInt32(1)
	} else {
		e.WriteInt32(0)
	}
}

// WriteEnum - enumerations and union discriminants are int32
func (e *Encoder) WriteEnum(value int32) {
	e.WriteInt32(value)
}

// WriteFixedOpaque - fixed length data, no length prefix
func (e *Encoder) WriteFixedOpaque(data []byte) {
	e.Write(data)
}

// WriteOpaque - variable length data with a length prefix
//
// a maximum of zero means no limit other than the uint32 prefix
func (e *Encoder) WriteOpaque(data []byte, maximum int) error {
	if uint64(len(data)) > math.MaxUint32 {
		return fault.ErrOpaqueTooLong
	}
	if maximum > 0 && len(data) > maximum {
		return fault.ErrOpaqueTooLong
	}
	e.WriteUint32(uint32(len(data)))
	e.Write(data)
	return nil
}

// WriteString - UTF-8 bytes with a byte count prefix
//
// the length is the number of bytes not the number of characters,
// a maximum of zero means MaximumStringLength and invalid UTF-8 is
// rejected
func (e *Encoder) WriteString(s string, maximum int) error {
	if maximum <= 0 || maximum > MaximumStringLength {
		maximum = MaximumStringLength
	}
	if len(s) > maximum {
		return fault.ErrStringTooLong
	}
	if !utf8.ValidString(s) {
		return fault.ErrInvalidUTF8
	}
	e.WriteUint32(uint32(len(s)))
	e.Write([]byte(s))
	return nil
}

// WriteArray - count prefix followed by each element
//
// encodeElement is called once for each index in order
func (e *Encoder) WriteArray(count int, maximum int, encodeElement func(e *Encoder, index int) error) error {
	if count < 0 {
		return fault.ErrNegativeCount
	}
	if maximum > 0 && count > maximum {
		return fault.ErrArrayTooLong
	}
	e.WriteUint32(uint32(count))
	for i := 0; i < count; i += 1 {
		if err := encodeElement(e, i); nil != err {
			return err
		}
	}
	return nil
}

// WriteOptional - presence flag then the value if present
func (e *Encoder) WriteOptional(present bool, encodeValue func(e *Encoder) error) error {
	e.WriteBool(present)
	if !present {
		return nil
	}
	return encodeValue(e)
}

var zeroPad = [4]byte{}

// bytes needed to reach the next four byte boundary
func padLength(n int) int {
	return (4 - n%4) % 4
}
