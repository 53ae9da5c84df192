// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerkit/fault"
	"github.com/bitmark-inc/ledgerkit/xdr"
)

func TestPublicKey(t *testing.T) {
	key := bytes.Repeat([]byte{0x5a}, 32)
	pk, err := xdr.NewEd25519PublicKey(key)
	require.NoError(t, err)

	b, err := xdr.Marshal(pk)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0, 0, 0, 0}, key...), b)

	var decoded xdr.PublicKey
	err = xdr.Unmarshal(b, &decoded)
	require.NoError(t, err)
	assert.Equal(t, pk, decoded)

	_, err = xdr.NewEd25519PublicKey(key[:31])
	assert.Equal(t, fault.ErrInvalidKeyLength, err)

	err = xdr.Unmarshal(append([]byte{0, 0, 0, 1}, key...), &decoded)
	assert.Equal(t, fault.ErrUnknownDiscriminant, err)

	_, err = xdr.Marshal(xdr.PublicKey{Type: 3})
	assert.Equal(t, fault.ErrUnknownDiscriminant, err)
}

func TestDecoratedSignature(t *testing.T) {
	ds := xdr.DecoratedSignature{
		Hint:      xdr.SignatureHint{0x01, 0x02, 0x03, 0x04},
		Signature: xdr.Signature(bytes.Repeat([]byte{0xee}, 64)),
	}

	b, err := xdr.Marshal(ds)
	require.NoError(t, err)

	expected := []byte{0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x40}
	expected = append(expected, bytes.Repeat([]byte{0xee}, 64)...)
	assert.Equal(t, expected, b)

	var decoded xdr.DecoratedSignature
	err = xdr.Unmarshal(b, &decoded)
	require.NoError(t, err)
	assert.Equal(t, ds, decoded)
	assert.Equal(t, "01020304", decoded.Hint.String())
}

func TestDecoratedSignatureErrors(t *testing.T) {
	ds := xdr.DecoratedSignature{
		Signature: xdr.Signature(make([]byte, 65)),
	}
	_, err := xdr.Marshal(ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fault.ErrSignatureTooLong), "wrong error: %v", err)
	assert.True(t, fault.IsErrLength(err), "field wrapping lost the class")
	assert.Contains(t, err.Error(), "signature", "field name missing")

	var decoded xdr.DecoratedSignature
	err = xdr.Unmarshal([]byte{1, 2}, &decoded)
	assert.True(t, errors.Is(err, fault.ErrTruncated), "wrong error: %v", err)
	assert.Contains(t, err.Error(), "hint", "field name missing")

	oversize := []byte{1, 2, 3, 4, 0, 0, 0, 0x41}
	oversize = append(oversize, make([]byte, 68)...)
	err = xdr.Unmarshal(oversize, &decoded)
	assert.True(t, errors.Is(err, fault.ErrSignatureTooLong), "wrong error: %v", err)
}

func TestHash(t *testing.T) {
	var h xdr.Hash
	for i := range h {
		h[i] = byte(255 - i)
	}
	b, err := xdr.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, h[:], b, "hash must have no length prefix")

	var decoded xdr.Hash
	require.NoError(t, xdr.Unmarshal(b, &decoded))
	assert.Equal(t, h, decoded)
}
