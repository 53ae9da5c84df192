// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"crypto/rand"
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/pbkdf2"

	"github.com/bitmark-inc/ledgerkit/fault"
	"github.com/bitmark-inc/ledgerkit/keypair"
	"github.com/bitmark-inc/ledgerkit/xdr"
)

const (
	// MaximumNameLength - bytes allowed in an identity name
	MaximumNameLength = 64

	saltSize         = 16
	nonceSize        = 24
	keySize          = 32
	maximumAddress   = 56
	maximumSealed    = 32 + secretbox.Overhead
	recordVersion    = 1
	minimumIteration = 1
)

// one stored identity
type record struct {
	version    uint32
	name       string
	address    string
	salt       [saltSize]byte
	nonce      [nonceSize]byte
	iterations uint32
	sealed     []byte
}

// wire order of the record members
func (r *record) fields() []xdr.Field {
	return []xdr.Field{
		{
			Name:   "version",
			Encode: func(e *xdr.Encoder) error { e.WriteUint32(r.version); return nil },
			Decode: func(d *xdr.Decoder) error {
				v, err := d.ReadUint32()
				if nil != err {
					return err
				}
				if recordVersion != v {
					return fault.ErrWrongSealedRecordValue
				}
				r.version = v
				return nil
			},
		},
		{
			Name:   "name",
			Encode: func(e *xdr.Encoder) error { return e.WriteString(r.name, MaximumNameLength) },
			Decode: func(d *xdr.Decoder) (err error) { r.name, err = d.ReadString(MaximumNameLength); return },
		},
		{
			Name:   "address",
			Encode: func(e *xdr.Encoder) error { return e.WriteString(r.address, maximumAddress) },
			Decode: func(d *xdr.Decoder) (err error) { r.address, err = d.ReadString(maximumAddress); return },
		},
		{
			Name:   "salt",
			Encode: func(e *xdr.Encoder) error { e.WriteFixedOpaque(r.salt[:]); return nil },
			Decode: func(d *xdr.Decoder) error { return readFixed(d, r.salt[:]) },
		},
		{
			Name:   "nonce",
			Encode: func(e *xdr.Encoder) error { e.WriteFixedOpaque(r.nonce[:]); return nil },
			Decode: func(d *xdr.Decoder) error { return readFixed(d, r.nonce[:]) },
		},
		{
			Name:   "iterations",
			Encode: func(e *xdr.Encoder) error { e.WriteUint32(r.iterations); return nil },
			Decode: func(d *xdr.Decoder) (err error) { r.iterations, err = d.ReadUint32(); return },
		},
		{
			Name:   "sealed",
			Encode: func(e *xdr.Encoder) error { return e.WriteOpaque(r.sealed, maximumSealed) },
			Decode: func(d *xdr.Decoder) (err error) { r.sealed, err = d.ReadOpaque(maximumSealed); return },
		},
	}
}

func readFixed(d *xdr.Decoder, buffer []byte) error {
	b, err := d.ReadFixedOpaque(len(buffer))
	if nil != err {
		return err
	}
	copy(buffer, b)
	return nil
}

// EncodeTo - members in wire order
func (r *record) EncodeTo(e *xdr.Encoder) error {
	return xdr.EncodeFields(e, r.fields())
}

// DecodeFrom - members in wire order
func (r *record) DecodeFrom(d *xdr.Decoder) error {
	return xdr.DecodeFields(d, r.fields())
}

// seal the seed of identity under password
func seal(name string, identity *keypair.Identity, password string, iterations int, random io.Reader) (*record, error) {
	seed, err := identity.RawSeed()
	if nil != err {
		return nil, fault.ErrCannotSign
	}

	r := &record{
		version:    recordVersion,
		name:       name,
		address:    identity.Address(),
		iterations: uint32(iterations),
	}
	if _, err := io.ReadFull(random, r.salt[:]); nil != err {
		return nil, err
	}
	if _, err := io.ReadFull(random, r.nonce[:]); nil != err {
		return nil, err
	}

	key := stretch(password, r.salt[:], iterations)
	r.sealed = secretbox.Seal(nil, seed, &r.nonce, key)

	return r, nil
}

// recover the identity sealed in the record
func (r *record) open(password string) (*keypair.Identity, error) {
	if r.iterations < minimumIteration {
		return nil, fault.ErrWrongSealedRecordValue
	}

	key := stretch(password, r.salt[:], int(r.iterations))
	seed, ok := secretbox.Open(nil, r.sealed, &r.nonce, key)
	if !ok {
		return nil, fault.ErrWrongPassword
	}

	identity, err := keypair.FromRawSeed(seed)
	if nil != err {
		return nil, fault.ErrWrongSealedRecordValue
	}
	if identity.Address() != r.address {
		return nil, fault.ErrWrongSealedRecordValue
	}
	return identity, nil
}

func stretch(password string, salt []byte, iterations int) *[keySize]byte {
	var key [keySize]byte
	copy(key[:], pbkdf2.Key([]byte(password), salt, iterations, keySize, sha512.New))
	return &key
}

// the secure random source used for salt and nonce
var randomSource io.Reader = rand.Reader
