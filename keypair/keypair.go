// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgerkit/fault"
	"github.com/bitmark-inc/ledgerkit/strkey"
	"github.com/bitmark-inc/ledgerkit/xdr"
)

// Identity - an ed25519 public key with optional private key
//
// every field belongs to this instance and none changes after
// construction, so an Identity can be shared between goroutines
type Identity struct {
	publicKey  ed25519.PublicKey
	privateKey ed25519.PrivateKey // nil for watch-only
	seed       []byte             // nil for watch-only
}

// Generate - new identity from secure random data
func Generate() (*Identity, error) {
	return generate(rand.Reader)
}

func generate(random io.Reader) (*Identity, error) {
	seed := make([]byte, ed25519.SeedSize)
	n, err := io.ReadFull(random, seed)
	if nil != err {
		return nil, err
	}
	if ed25519.SeedSize != n {
		return nil, fault.ErrInvalidKeyLength
	}
	return FromRawSeed(seed)
}

// FromRawSeed - derive the key pair from a 32 byte seed
//
// the same seed always produces the same key pair
func FromRawSeed(seed []byte) (*Identity, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)

	return &Identity{
		publicKey:  privateKey.Public().(ed25519.PublicKey),
		privateKey: privateKey,
		seed:       append([]byte{}, seed...),
	}, nil
}

// ParseSeed - identity from the text form of a secret seed
func ParseSeed(seed string) (*Identity, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, seed)
	if nil != err {
		return nil, err
	}
	return FromRawSeed(raw)
}

// FromPublicKey - watch-only identity from a raw 32 byte public key
func FromPublicKey(publicKey []byte) (*Identity, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &Identity{
		publicKey: append(ed25519.PublicKey{}, publicKey...),
	}, nil
}

// ParseAddress - watch-only identity from the text form of an
// account id
func ParseAddress(address string) (*Identity, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if nil != err {
		return nil, err
	}
	return FromPublicKey(raw)
}

// Parse - identity from either a seed or an account id
func Parse(s string) (*Identity, error) {
	version, err := strkey.Version(s)
	if nil != err {
		return nil, err
	}
	switch version {
	case strkey.VersionByteSeed:
		return ParseSeed(s)
	case strkey.VersionByteAccountID:
		return ParseAddress(s)
	default:
		return nil, fault.ErrInvalidVersionByte
	}
}

// CanSign - true if private key material is present
func (identity *Identity) CanSign() bool {
	return nil != identity.privateKey
}

// PublicKey - copy of the raw public key
func (identity *Identity) PublicKey() []byte {
	return append([]byte{}, identity.publicKey...)
}

// Address - text form of the account id
func (identity *Identity) Address() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, identity.publicKey)
}

// String - same as Address so a private seed is never printed
func (identity *Identity) String() string {
	return identity.Address()
}

// RawSeed - copy of the 32 byte seed
func (identity *Identity) RawSeed() ([]byte, error) {
	if nil == identity.seed {
		return nil, fault.ErrNoSeed
	}
	return append([]byte{}, identity.seed...), nil
}

// Seed - text form of the secret seed
func (identity *Identity) Seed() (string, error) {
	if nil == identity.seed {
		return "", fault.ErrNoSeed
	}
	return strkey.Encode(strkey.VersionByteSeed, identity.seed)
}

// XDRPublicKey - the public key as the wire PublicKey union
func (identity *Identity) XDRPublicKey() xdr.PublicKey {
	pk, err := xdr.NewEd25519PublicKey(identity.publicKey)
	if nil != err {
		// length is checked by every constructor
		panic("keypair: " + err.Error())
	}
	return pk
}

// Hint - last four bytes of the wire encoding of the public key
func (identity *Identity) Hint() xdr.SignatureHint {
	var hint xdr.SignatureHint
	encoded, err := xdr.Marshal(identity.XDRPublicKey())
	if nil != err {
		panic("keypair: " + err.Error())
	}
	copy(hint[:], encoded[len(encoded)-xdr.SignatureHintSize:])
	return hint
}

// Sign - ed25519 signature of message
func (identity *Identity) Sign(message []byte) ([]byte, error) {
	if !identity.CanSign() {
		return nil, fault.ErrCannotSign
	}
	return ed25519.Sign(identity.privateKey, message), nil
}

// SignDecorated - signature together with this identity's hint
func (identity *Identity) SignDecorated(message []byte) (xdr.DecoratedSignature, error) {
	signature, err := identity.Sign(message)
	if nil != err {
		return xdr.DecoratedSignature{}, err
	}
	return xdr.DecoratedSignature{
		Hint:      identity.Hint(),
		Signature: xdr.Signature(signature),
	}, nil
}

// Verify - check a signature of message, malformed signatures are
// simply invalid
func (identity *Identity) Verify(message []byte, signature []byte) bool {
	if ed25519.SignatureSize != len(signature) {
		return false
	}
	return ed25519.Verify(identity.publicKey, message, signature)
}

// VerifyDecorated - the hint must match before the signature is
// checked
func (identity *Identity) VerifyDecorated(message []byte, signature xdr.DecoratedSignature) bool {
	if identity.Hint() != signature.Hint {
		return false
	}
	return identity.Verify(message, signature.Signature)
}

// Equal - same public key and same signing capability
func (identity *Identity) Equal(other *Identity) bool {
	if nil == identity || nil == other {
		return identity == other
	}
	return bytes.Equal(identity.publicKey, other.publicKey) &&
		identity.CanSign() == other.CanSign()
}

// MarshalText - the account id
func (identity *Identity) MarshalText() ([]byte, error) {
	return []byte(identity.Address()), nil
}

// UnmarshalText - a watch-only identity from an account id
func (identity *Identity) UnmarshalText(s []byte) error {
	i, err := ParseAddress(string(s))
	if nil != err {
		return err
	}
	*identity = *i
	return nil
}
