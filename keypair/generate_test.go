// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromReader(t *testing.T) {
	random := bytes.NewReader(bytes.Repeat([]byte{7}, 64))

	a, err := generate(random)
	require.NoError(t, err, "first")
	b, err := generate(random)
	require.NoError(t, err, "second")

	assert.True(t, a.Equal(b), "same random bytes gave different identities")
}

func TestGenerateShortRandom(t *testing.T) {
	_, err := generate(bytes.NewReader(make([]byte, 10)))
	assert.Error(t, err, "short random source accepted")
}

func TestGenerateDistinct(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err, "first")
	b, err := Generate()
	require.NoError(t, err, "second")

	assert.False(t, a.Equal(b), "two random identities are equal")
	assert.Equal(t, 32, len(a.seed), "seed size")
}
