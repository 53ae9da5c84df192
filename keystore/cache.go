// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"crypto/sha256"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ledgerkit/keypair"
)

// CacheEntry - an unlocked identity and the check value that must be
// presented again to obtain it
type CacheEntry struct {
	Identity *keypair.Identity
	Check    [sha256.Size]byte
}

// Cache - unlocked identities by name
type Cache interface {
	Get(string) (CacheEntry, bool)
	Set(string, CacheEntry)
	Delete(string)
	Clear()
}

const (
	defaultCacheTTL = 5 * time.Minute
	cleanupInterval = 1 * time.Minute
)

type identityCache struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewCache - entries expire after ttl, zero selects the default
func NewCache(ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &identityCache{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (c *identityCache) Get(name string) (CacheEntry, bool) {
	obj, found := c.cache.Get(name)
	if !found {
		return CacheEntry{}, false
	}
	return obj.(CacheEntry), true
}

func (c *identityCache) Set(name string, entry CacheEntry) {
	c.cache.Set(name, entry, c.ttl)
}

func (c *identityCache) Delete(name string) {
	c.cache.Delete(name)
}

func (c *identityCache) Clear() {
	c.cache.Flush()
}

// check value binding a password to one particular sealed record
func makeCheck(salt []byte, password string) [sha256.Size]byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))

	var check [sha256.Size]byte
	copy(check[:], h.Sum(nil))
	return check
}
