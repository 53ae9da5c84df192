// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"fmt"
	"unicode/utf8"

	"github.com/bitmark-inc/ledgerkit/fault"
)

// MemoType - discriminant of the Memo union
type MemoType int32

// enumeration of memo variants, values are fixed by the wire format
const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeID     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

// MaxMemoTextLength - bytes of UTF-8, not characters
const MaxMemoTextLength = 28

var memoTypeNames = map[MemoType]string{
	MemoTypeNone:   "none",
	MemoTypeText:   "text",
	MemoTypeID:     "id",
	MemoTypeHash:   "hash",
	MemoTypeReturn: "return",
}

// String - lower case name of the variant
func (t MemoType) String() string {
	if s, ok := memoTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("MemoType(%d)", int32(t))
}

// Memo - transaction annotation
//
// exactly one arm is populated and it always matches memoType, the
// members are unexported so the only way to build a memo is through
// the constructors below which check each arm's limit immediately
type Memo struct {
	memoType MemoType
	text     string
	id       uint64
	hash     Hash
}

// MemoNone - the empty memo, also the zero value of Memo
func MemoNone() Memo {
	return Memo{memoType: MemoTypeNone}
}

// NewMemoText - at most MaxMemoTextLength bytes of UTF-8
func NewMemoText(text string) (Memo, error) {
	if len(text) > MaxMemoTextLength {
		return Memo{}, fault.ErrMemoTextTooLong
	}
	if !utf8.ValidString(text) {
		return Memo{}, fault.ErrInvalidUTF8
	}
	return Memo{memoType: MemoTypeText, text: text}, nil
}

// NewMemoID - a non-zero 64 bit identifier
func NewMemoID(id uint64) (Memo, error) {
	if 0 == id {
		return Memo{}, fault.ErrMemoIDZero
	}
	return Memo{memoType: MemoTypeID, id: id}, nil
}

// NewMemoHash - up to 32 bytes, shorter input is padded on the right
// with zero bytes
func NewMemoHash(hash []byte) (Memo, error) {
	return newHashMemo(MemoTypeHash, hash)
}

// NewMemoReturn - same shape as NewMemoHash with its own discriminant
func NewMemoReturn(hash []byte) (Memo, error) {
	return newHashMemo(MemoTypeReturn, hash)
}

func newHashMemo(memoType MemoType, hash []byte) (Memo, error) {
	if len(hash) > HashSize {
		return Memo{}, fault.ErrHashTooLong
	}
	m := Memo{memoType: memoType}
	copy(m.hash[:], hash)
	return m, nil
}

// Type - the active variant
func (m Memo) Type() MemoType {
	return m.memoType
}

// Text - the text arm
func (m Memo) Text() (string, bool) {
	return m.text, MemoTypeText == m.memoType
}

// ID - the id arm
func (m Memo) ID() (uint64, bool) {
	return m.id, MemoTypeID == m.memoType
}

// Hash - the hash arm
func (m Memo) Hash() (Hash, bool) {
	return m.hash, MemoTypeHash == m.memoType
}

// ReturnHash - the return hash arm
func (m Memo) ReturnHash() (Hash, bool) {
	return m.hash, MemoTypeReturn == m.memoType
}

// Equal - same variant and same payload
func (m Memo) Equal(other Memo) bool {
	return m == other
}

// EncodeTo - discriminant then only the active arm
func (m Memo) EncodeTo(e *Encoder) error {
	switch m.memoType {
	case MemoTypeNone:
		e.WriteEnum(int32(m.memoType))
	case MemoTypeText:
		e.WriteEnum(int32(m.memoType))
		return e.WriteString(m.text, MaxMemoTextLength)
	case MemoTypeID:
		e.WriteEnum(int32(m.memoType))
		e.WriteUint64(m.id)
	case MemoTypeHash, MemoTypeReturn:
		e.WriteEnum(int32(m.memoType))
		e.WriteFixedOpaque(m.hash[:])
	default:
		return fault.ErrUnknownDiscriminant
	}
	return nil
}

// DecodeFrom - discriminant first, then exactly the arm it selects
//
// the receiver is only changed when the whole memo decoded
func (m *Memo) DecodeFrom(d *Decoder) error {
	t, err := d.ReadEnum()
	if nil != err {
		return err
	}

	var decoded Memo
	switch MemoType(t) {
	case MemoTypeNone:
		decoded = MemoNone()

	case MemoTypeText:
		s, err := d.ReadString(MaxMemoTextLength)
		if nil != err {
			if fault.ErrStringTooLong == err {
				return fault.ErrMemoTextTooLong
			}
			return err
		}
		decoded = Memo{memoType: MemoTypeText, text: s}

	case MemoTypeID:
		id, err := d.ReadUint64()
		if nil != err {
			return err
		}
		if decoded, err = NewMemoID(id); nil != err {
			return err
		}

	case MemoTypeHash, MemoTypeReturn:
		var h Hash
		if err := h.DecodeFrom(d); nil != err {
			return err
		}
		decoded = Memo{memoType: MemoType(t), hash: h}

	default:
		return fault.ErrUnknownDiscriminant
	}

	*m = decoded
	return nil
}

// String - for the fmt package
func (m Memo) String() string {
	switch m.memoType {
	case MemoTypeText:
		return fmt.Sprintf("text:%q", m.text)
	case MemoTypeID:
		return fmt.Sprintf("id:%d", m.id)
	case MemoTypeHash, MemoTypeReturn:
		return m.memoType.String() + ":" + m.hash.String()
	default:
		return m.memoType.String()
	}
}
