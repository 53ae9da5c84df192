// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"encoding/hex"

	"github.com/bitmark-inc/ledgerkit/fault"
)

// byte sizes for various fields
const (
	HashSize          = 32
	Ed25519KeySize    = 32
	SignatureHintSize = 4
	MaxSignatureSize  = 64
)

// Hash - 32 byte fixed opaque
type Hash [HashSize]byte

// EncodeTo - write the hash without a length prefix
func (h Hash) EncodeTo(e *Encoder) error {
	e.WriteFixedOpaque(h[:])
	return nil
}

// DecodeFrom - read exactly HashSize bytes
func (h *Hash) DecodeFrom(d *Decoder) error {
	b, err := d.ReadFixedOpaque(HashSize)
	if nil != err {
		return err
	}
	copy(h[:], b)
	return nil
}

// String - hex form for the fmt package
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// PublicKeyType - discriminant of the PublicKey union
type PublicKeyType int32

// enumeration of public key algorithms
const (
	PublicKeyTypeEd25519 PublicKeyType = 0
)

// PublicKey - union switched on PublicKeyType
//
// only the ed25519 arm is defined
type PublicKey struct {
	Type    PublicKeyType
	Ed25519 [Ed25519KeySize]byte
}

// NewEd25519PublicKey - build the ed25519 arm from raw key bytes
func NewEd25519PublicKey(key []byte) (PublicKey, error) {
	if Ed25519KeySize != len(key) {
		return PublicKey{}, fault.ErrInvalidKeyLength
	}
	pk := PublicKey{
		Type: PublicKeyTypeEd25519,
	}
	copy(pk.Ed25519[:], key)
	return pk, nil
}

// EncodeTo - discriminant followed by the active arm
func (pk PublicKey) EncodeTo(e *Encoder) error {
	switch pk.Type {
	case PublicKeyTypeEd25519:
		e.WriteEnum(int32(pk.Type))
		e.WriteFixedOpaque(pk.Ed25519[:])
		return nil
	default:
		return fault.ErrUnknownDiscriminant
	}
}

// DecodeFrom - discriminant first, then the arm it selects
func (pk *PublicKey) DecodeFrom(d *Decoder) error {
	t, err := d.ReadEnum()
	if nil != err {
		return err
	}
	switch PublicKeyType(t) {
	case PublicKeyTypeEd25519:
		b, err := d.ReadFixedOpaque(Ed25519KeySize)
		if nil != err {
			return err
		}
		pk.Type = PublicKeyTypeEd25519
		copy(pk.Ed25519[:], b)
		return nil
	default:
		return fault.ErrUnknownDiscriminant
	}
}

// SignatureHint - last four bytes of the encoded signer public key
type SignatureHint [SignatureHintSize]byte

// EncodeTo - fixed opaque[4]
func (h SignatureHint) EncodeTo(e *Encoder) error {
	e.WriteFixedOpaque(h[:])
	return nil
}

// DecodeFrom - fixed opaque[4]
func (h *SignatureHint) DecodeFrom(d *Decoder) error {
	b, err := d.ReadFixedOpaque(SignatureHintSize)
	if nil != err {
		return err
	}
	copy(h[:], b)
	return nil
}

// String - hex form for the fmt package
func (h SignatureHint) String() string {
	return hex.EncodeToString(h[:])
}

// Signature - variable opaque of at most MaxSignatureSize bytes
type Signature []byte

// EncodeTo - length prefixed
func (s Signature) EncodeTo(e *Encoder) error {
	if len(s) > MaxSignatureSize {
		return fault.ErrSignatureTooLong
	}
	return e.WriteOpaque(s, MaxSignatureSize)
}

// DecodeFrom - length prefixed
func (s *Signature) DecodeFrom(d *Decoder) error {
	b, err := d.ReadOpaque(MaxSignatureSize)
	if nil != err {
		if fault.ErrOpaqueTooLong == err {
			return fault.ErrSignatureTooLong
		}
		return err
	}
	*s = b
	return nil
}

// String - hex form for the fmt package
func (s Signature) String() string {
	return hex.EncodeToString(s)
}

// DecoratedSignature - signature together with the hint of its signer
type DecoratedSignature struct {
	Hint      SignatureHint
	Signature Signature
}

// wire order of the structure members
func (ds *DecoratedSignature) fields() []Field {
	return []Field{
		{"hint", ds.Hint.EncodeTo, ds.Hint.DecodeFrom},
		{"signature", ds.Signature.EncodeTo, ds.Signature.DecodeFrom},
	}
}

// EncodeTo - members in wire order
func (ds DecoratedSignature) EncodeTo(e *Encoder) error {
	return EncodeFields(e, ds.fields())
}

// DecodeFrom - members in wire order
func (ds *DecoratedSignature) DecodeFrom(d *Decoder) error {
	return DecodeFields(d, ds.fields())
}
