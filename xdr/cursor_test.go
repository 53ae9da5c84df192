// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerkit/fault"
	"github.com/bitmark-inc/ledgerkit/xdr"
)

func TestWritePadding(t *testing.T) {
	items := []struct {
		data    []byte
		encoded []byte
	}{
		{[]byte{}, []byte{}},
		{[]byte{0x01}, []byte{0x01, 0x00, 0x00, 0x00}},
		{[]byte{0x01, 0x02}, []byte{0x01, 0x02, 0x00, 0x00}},
		{[]byte{0x01, 0x02, 0x03}, []byte{0x01, 0x02, 0x03, 0x00}},
		{[]byte{0x01, 0x02, 0x03, 0x04}, []byte{0x01, 0x02, 0x03, 0x04}},
		{[]byte{0x01, 0x02, 0x03, 0x04, 0x05}, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x00, 0x00, 0x00}},
	}

	for i, item := range items {
		e := xdr.NewEncoder()
		e.Write(item.data)
		if !bytes.Equal(item.encoded, e.Bytes()) {
			t.Errorf("%d: Write(%x) -> %x  expected: %x", i, item.data, e.Bytes(), item.encoded)
		}
	}
}

func TestReadRoundTrip(t *testing.T) {
	for n := 0; n <= 67; n += 1 {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*7 + 1)
		}

		e := xdr.NewEncoder()
		e.Write(data)
		assert.Equal(t, 0, e.Len()%4, "%d: not aligned", n)

		d := xdr.NewDecoder(e.Bytes())
		result, err := d.Read(n)
		require.NoError(t, err, "%d: read failed", n)
		assert.Equal(t, data, result, "%d: round trip mismatch", n)
		assert.Equal(t, 0, d.Remaining(), "%d: padding not consumed", n)
	}
}

func TestReadNonZeroPadding(t *testing.T) {
	d := xdr.NewDecoder([]byte{0x01, 0x02, 0x00, 0x01})
	_, err := d.Read(2)
	assert.Equal(t, fault.ErrNonZeroPadding, err, "wrong error")
	assert.True(t, fault.IsErrFormat(err), "padding error is not a format error")
	assert.Equal(t, 0, d.Offset(), "failed read consumed input")
	assert.Equal(t, 4, d.Remaining(), "failed read consumed input")
}

func TestReadHugeLength(t *testing.T) {
	items := []int{
		math.MaxInt64,
		math.MaxInt64 - 1,
		math.MaxInt64 - 2,
		math.MaxInt64 - 3,
	}
	for i, n := range items {
		d := xdr.NewDecoder([]byte{0x01, 0x02, 0x03, 0x04})
		var err error
		assert.NotPanics(t, func() { _, err = d.Read(n) }, "%d: Read(%d) panicked", i, n)
		assert.Equal(t, fault.ErrTruncated, err, "%d: wrong error", i)
		assert.Equal(t, 0, d.Offset(), "%d: failed read consumed input", i)
	}

	_, err := xdr.NewDecoder([]byte{0x01}).Read(-1)
	assert.Equal(t, fault.ErrInvalidPayloadLength, err)
}

func TestReadTruncated(t *testing.T) {
	items := []struct {
		data []byte
		n    int
	}{
		{[]byte{}, 1},
		{[]byte{0x01, 0x02, 0x03}, 4},
		{[]byte{0x01, 0x02, 0x03}, 3}, // padding missing
		{[]byte{0x01, 0x02, 0x03, 0x00}, 5},
	}
	for i, item := range items {
		d := xdr.NewDecoder(item.data)
		_, err := d.Read(item.n)
		assert.Equal(t, fault.ErrTruncated, err, "%d: wrong error", i)
		assert.True(t, fault.IsErrTruncated(err), "%d: not a truncated error", i)
	}
}

func TestUint64Vectors(t *testing.T) {
	items := []struct {
		unsigned uint64
		signed   int64
		encoded  []byte
	}{
		{0, 0, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{0x0102030405060708, 0x0102030405060708, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
		{18446744073709551615, -1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{0x8000000000000000, -9223372036854775808, []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{0x7fffffffffffffff, 9223372036854775807, []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range items {
		e := xdr.NewEncoder()
		e.WriteUint64(item.unsigned)
		assert.Equal(t, item.encoded, e.Bytes(), "%d: WriteUint64", i)

		e = xdr.NewEncoder()
		e.WriteInt64(item.signed)
		assert.Equal(t, item.encoded, e.Bytes(), "%d: WriteInt64", i)

		u, err := xdr.NewDecoder(item.encoded).ReadUint64()
		require.NoError(t, err)
		assert.Equal(t, item.unsigned, u, "%d: ReadUint64", i)

		s, err := xdr.NewDecoder(item.encoded).ReadInt64()
		require.NoError(t, err)
		assert.Equal(t, item.signed, s, "%d: ReadInt64", i)
	}
}

func TestInt32(t *testing.T) {
	e := xdr.NewEncoder()
	e.WriteInt32(-2)
	e.WriteUint32(0xdeadbeef)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xfe, 0xde, 0xad, 0xbe, 0xef}, e.Bytes())

	d := xdr.NewDecoder(e.Bytes())
	i, err := d.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-2), i)
	u, err := d.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), u)

	_, err = d.ReadInt32()
	assert.Equal(t, fault.ErrTruncated, err)
}

func TestString(t *testing.T) {
	e := xdr.NewEncoder()
	err := e.WriteString("héllo", 0)
	require.NoError(t, err)

	// byte count, not character count
	expected := []byte{0x00, 0x00, 0x00, 0x06, 'h', 0xc3, 0xa9, 'l', 'l', 'o', 0x00, 0x00}
	assert.Equal(t, expected, e.Bytes())

	s, err := xdr.NewDecoder(e.Bytes()).ReadString(0)
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)
}

func TestStringTooLong(t *testing.T) {
	e := xdr.NewEncoder()
	err := e.WriteString(strings.Repeat("x", xdr.MaximumStringLength+1), 0)
	assert.Equal(t, fault.ErrStringTooLong, err)
	assert.True(t, fault.IsErrLength(err))
	assert.Equal(t, 0, e.Len(), "nothing should be written on failure")

	err = e.WriteString(strings.Repeat("x", xdr.MaximumStringLength), 0)
	assert.NoError(t, err)

	err = xdr.NewEncoder().WriteString("abcde", 4)
	assert.Equal(t, fault.ErrStringTooLong, err)

	_, err = xdr.NewDecoder([]byte{0x00, 0x00, 0x00, 0x05, 'a', 'b', 'c', 'd', 'e', 0, 0, 0}).ReadString(4)
	assert.Equal(t, fault.ErrStringTooLong, err)
}

func TestStringInvalidUTF8(t *testing.T) {
	e := xdr.NewEncoder()
	err := e.WriteString("ab\xffcd", 0)
	assert.Equal(t, fault.ErrInvalidUTF8, err)
	assert.Equal(t, 0, e.Len(), "nothing should be written on failure")

	_, err = xdr.NewDecoder([]byte{0x00, 0x00, 0x00, 0x02, 0xc3, 0x28, 0x00, 0x00}).ReadString(0)
	assert.Equal(t, fault.ErrInvalidUTF8, err)
}

func TestOpaque(t *testing.T) {
	e := xdr.NewEncoder()
	err := e.WriteOpaque([]byte{0xaa, 0xbb, 0xcc}, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x03, 0xaa, 0xbb, 0xcc, 0x00}, e.Bytes())

	b, err := xdr.NewDecoder(e.Bytes()).ReadOpaque(8)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, b)

	_, err = xdr.NewDecoder(e.Bytes()).ReadOpaque(2)
	assert.Equal(t, fault.ErrOpaqueTooLong, err)

	err = xdr.NewEncoder().WriteOpaque([]byte{1, 2, 3}, 2)
	assert.Equal(t, fault.ErrOpaqueTooLong, err)

	// length prefix claims more than is present
	_, err = xdr.NewDecoder([]byte{0x00, 0x00, 0x01, 0x00, 0x01}).ReadOpaque(0)
	assert.Equal(t, fault.ErrTruncated, err)
}

func TestBool(t *testing.T) {
	e := xdr.NewEncoder()
	e.WriteBool(true)
	e.WriteBool(false)
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 0}, e.Bytes())

	d := xdr.NewDecoder(e.Bytes())
	b, err := d.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = d.ReadBool()
	require.NoError(t, err)
	assert.False(t, b)

	_, err = xdr.NewDecoder([]byte{0, 0, 0, 2}).ReadBool()
	assert.Equal(t, fault.ErrInvalidBool, err)
}

func TestArray(t *testing.T) {
	values := []uint32{7, 8, 9}

	e := xdr.NewEncoder()
	err := e.WriteArray(len(values), 10, func(e *xdr.Encoder, i int) error {
		e.WriteUint32(values[i])
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 3, 0, 0, 0, 7, 0, 0, 0, 8, 0, 0, 0, 9}, e.Bytes())

	d := xdr.NewDecoder(e.Bytes())
	n, err := d.ReadArrayLength(10)
	require.NoError(t, err)
	result := make([]uint32, n)
	for i := range result {
		result[i], err = d.ReadUint32()
		require.NoError(t, err)
	}
	assert.Equal(t, values, result)

	err = xdr.NewEncoder().WriteArray(3, 2, nil)
	assert.Equal(t, fault.ErrArrayTooLong, err)

	for _, maximum := range []int{0, 10} {
		negative := xdr.NewEncoder()
		err = negative.WriteArray(-1, maximum, func(e *xdr.Encoder, i int) error {
			t.Errorf("element %d encoded for a negative count", i)
			return nil
		})
		assert.Equal(t, fault.ErrNegativeCount, err, "maximum %d", maximum)
		assert.True(t, fault.IsErrLength(err), "not a length error")
		assert.Equal(t, 0, negative.Len(), "maximum %d: count prefix written", maximum)
	}

	_, err = xdr.NewDecoder(e.Bytes()).ReadArrayLength(2)
	assert.Equal(t, fault.ErrArrayTooLong, err)
}

func TestOptional(t *testing.T) {
	e := xdr.NewEncoder()
	err := e.WriteOptional(true, func(e *xdr.Encoder) error {
		e.WriteUint32(42)
		return nil
	})
	require.NoError(t, err)
	err = e.WriteOptional(false, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 42, 0, 0, 0, 0}, e.Bytes())

	d := xdr.NewDecoder(e.Bytes())
	value := uint32(0)
	present, err := d.ReadOptional(func(d *xdr.Decoder) error {
		v, err := d.ReadUint32()
		value = v
		return err
	})
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, uint32(42), value)

	present, err = d.ReadOptional(nil)
	require.NoError(t, err)
	assert.False(t, present)
	assert.Equal(t, 0, d.Remaining())
}
