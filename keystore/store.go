// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"sort"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ledgerkit/fault"
	"github.com/bitmark-inc/ledgerkit/keypair"
	"github.com/bitmark-inc/ledgerkit/xdr"
	"github.com/bitmark-inc/logger"
)

const (
	// DefaultIterations - pbkdf2 rounds used when none are configured
	DefaultIterations = 100000

	loggerCategory = "keystore"
)

// all identity records share this key prefix
var identityPrefix = []byte{'I'}

// Options - tuning for a store
type Options struct {
	Iterations int
	CacheTTL   time.Duration
}

// Store - named identities
type Store struct {
	mutex sync.RWMutex

	db         *leveldb.DB
	access     DataAccess
	cache      Cache
	iterations int
	log        *logger.L
}

// Open - open or create the database in directory
//
// logger must be initialised before calling this
func Open(directory string, options Options) (*Store, error) {
	db, err := leveldb.OpenFile(directory, nil)
	if nil != err {
		return nil, err
	}

	s := New(NewDataAccess(db), NewCache(options.CacheTTL), options)
	s.db = db

	s.log.Infof("opened: %q", directory)
	return s, nil
}

// New - store over existing data access and cache
func New(access DataAccess, cache Cache, options Options) *Store {
	iterations := options.Iterations
	if iterations < minimumIteration {
		iterations = DefaultIterations
	}

	return &Store{
		access:     access,
		cache:      cache,
		iterations: iterations,
		log:        logger.New(loggerCategory),
	}
}

// Close - drop all unlocked identities and close the database
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache.Clear()
	if nil == s.db {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	s.log.Info("closed")
	s.log.Flush()
	return err
}

// Add - seal identity under password and store it as name
func (s *Store) Add(name string, identity *keypair.Identity, password string) error {
	if err := checkName(name); nil != err {
		return err
	}
	if !identity.CanSign() {
		return fault.ErrCannotSign
	}

	r, err := seal(name, identity, password, s.iterations, randomSource)
	if nil != err {
		return err
	}
	data, err := xdr.Marshal(r)
	if nil != err {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := recordKey(name)
	found, err := s.access.Has(key)
	if nil != err {
		return err
	}
	if found {
		return fault.ErrIdentityExists
	}

	s.access.Begin()
	s.access.Put(key, data)
	if err := s.access.Write(); nil != err {
		s.log.Errorf("add: %q  error: %s", name, err)
		return err
	}

	s.log.Infof("added: %q  address: %s", name, r.address)
	return nil
}

// Unlock - recover the signing identity stored as name
func (s *Store) Unlock(name string, password string) (*keypair.Identity, error) {
	s.mutex.RLock()
	r, err := s.read(name)
	s.mutex.RUnlock()
	if nil != err {
		return nil, err
	}

	check := makeCheck(r.salt[:], password)
	if entry, ok := s.cache.Get(name); ok && entry.Check == check {
		s.log.Debugf("unlock: %q  from cache", name)
		return entry.Identity, nil
	}

	identity, err := r.open(password)
	if nil != err {
		s.log.Warnf("unlock: %q  error: %s", name, err)
		return nil, err
	}

	s.cache.Set(name, CacheEntry{
		Identity: identity,
		Check:    check,
	})

	s.log.Infof("unlocked: %q", name)
	return identity, nil
}

// Lock - forget any unlocked copy of name
func (s *Store) Lock(name string) {
	s.cache.Delete(name)
	s.log.Debugf("locked: %q", name)
}

// Address - account address of name, no password is needed
func (s *Store) Address(name string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	r, err := s.read(name)
	if nil != err {
		return "", err
	}
	return r.address, nil
}

// List - sorted names of all stored identities
func (s *Store) List() ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	names := make([]string, 0, 8)

	iter := s.access.Iterator(ldb_util.BytesPrefix(identityPrefix))
	for iter.Next() {
		names = append(names, string(iter.Key()[len(identityPrefix):]))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// Remove - delete name and any unlocked copy
func (s *Store) Remove(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := recordKey(name)
	found, err := s.access.Has(key)
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrIdentityNotFound
	}

	s.access.Begin()
	s.access.Delete(key)
	if err := s.access.Write(); nil != err {
		return err
	}
	s.cache.Delete(name)

	s.log.Infof("removed: %q", name)
	return nil
}

// fetch and decode a record, caller holds the lock
func (s *Store) read(name string) (*record, error) {
	if err := checkName(name); nil != err {
		return nil, err
	}

	data, err := s.access.Get(recordKey(name))
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrIdentityNotFound
	}
	if nil != err {
		return nil, err
	}

	r := &record{}
	if err := xdr.Unmarshal(data, r); nil != err {
		s.log.Errorf("read: %q  error: %s", name, err)
		return nil, err
	}
	if r.name != name {
		return nil, fault.ErrWrongSealedRecordValue
	}
	return r, nil
}

func recordKey(name string) []byte {
	return append(append([]byte{}, identityPrefix...), name...)
}

// names are printable UTF-8 of 1 to MaximumNameLength bytes
func checkName(name string) error {
	if 0 == len(name) || len(name) > MaximumNameLength || !utf8.ValidString(name) {
		return fault.ErrInvalidName
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return fault.ErrInvalidName
		}
	}
	return nil
}
