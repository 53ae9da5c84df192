// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - batched access to the underlying database
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Write() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
}

type dataAccessImpl struct {
	db          *leveldb.DB
	transaction *leveldb.Batch
}

// NewDataAccess - wrap an open database
func NewDataAccess(db *leveldb.DB) DataAccess {
	return &dataAccessImpl{
		db:          db,
		transaction: new(leveldb.Batch),
	}
}

func (d *dataAccessImpl) Begin() {
	d.transaction.Reset()
}

func (d *dataAccessImpl) Put(key []byte, value []byte) {
	d.transaction.Put(key, value)
}

func (d *dataAccessImpl) Delete(key []byte) {
	d.transaction.Delete(key)
}

func (d *dataAccessImpl) Write() error {
	err := d.db.Write(d.transaction, nil)
	d.Begin()
	return err
}

func (d *dataAccessImpl) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *dataAccessImpl) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *dataAccessImpl) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
