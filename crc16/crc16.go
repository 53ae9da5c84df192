// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crc16 - CRC16-XModem checksum
//
// polynomial 0x1021, initial value 0, input and output not
// reflected, no final xor.  This is not CRC16-CCITT-FALSE which
// starts from 0xffff.
package crc16

const polynomial = 0x1021

// Size - number of checksum bytes
const Size = 2

var table = makeTable()

// build the byte-at-a-time lookup table
func makeTable() [256]uint16 {
	var t [256]uint16
	for i := 0; i < 256; i += 1 {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit += 1 {
			if 0 != crc&0x8000 {
				crc = crc<<1 ^ polynomial
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Checksum - CRC16-XModem of data
func Checksum(data []byte) uint16 {
	crc := uint16(0)
	for _, b := range data {
		crc = crc<<8 ^ table[byte(crc>>8)^b]
	}
	return crc
}

// Bytes - checksum as two bytes, least significant first
func Bytes(data []byte) [Size]byte {
	crc := Checksum(data)
	return [Size]byte{byte(crc), byte(crc >> 8)}
}

// Verify - check data against a little-endian two byte checksum
func Verify(data []byte, expected []byte) bool {
	if Size != len(expected) {
		return false
	}
	actual := Bytes(data)
	return actual[0] == expected[0] && actual[1] == expected[1]
}
