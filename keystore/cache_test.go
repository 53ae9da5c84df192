// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerkit/keypair"
)

func TestCacheSetGetDelete(t *testing.T) {
	c := NewCache(time.Minute)

	_, found := c.Get("main")
	assert.False(t, found, "empty cache returned entry")

	identity, err := keypair.Generate()
	assert.NoError(t, err, "generate")

	entry := CacheEntry{
		Identity: identity,
		Check:    makeCheck([]byte("salt"), "password"),
	}
	c.Set("main", entry)

	actual, found := c.Get("main")
	assert.True(t, found, "entry not found")
	assert.Equal(t, entry.Check, actual.Check, "wrong check")
	assert.True(t, identity == actual.Identity, "wrong identity")

	c.Delete("main")
	_, found = c.Get("main")
	assert.False(t, found, "deleted entry found")

	c.Set("main", entry)
	c.Clear()
	_, found = c.Get("main")
	assert.False(t, found, "cleared entry found")
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)
	c.Set("main", CacheEntry{})

	time.Sleep(50 * time.Millisecond)

	_, found := c.Get("main")
	assert.False(t, found, "expired entry found")
}

func TestMakeCheck(t *testing.T) {
	a := makeCheck([]byte("salt"), "password")
	assert.Equal(t, a, makeCheck([]byte("salt"), "password"), "not deterministic")
	assert.NotEqual(t, a, makeCheck([]byte("salt"), "passwore"), "password ignored")
	assert.NotEqual(t, a, makeCheck([]byte("salu"), "password"), "salt ignored")
}
