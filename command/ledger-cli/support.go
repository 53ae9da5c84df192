// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/bitmark-inc/ledgerkit/fault"
	"github.com/bitmark-inc/ledgerkit/keypair"
	"github.com/bitmark-inc/ledgerkit/keystore"
	"github.com/bitmark-inc/ledgerkit/strkey"
	"github.com/bitmark-inc/ledgerkit/wideint"
	"github.com/bitmark-inc/ledgerkit/xdr"
)

// command line errors
var (
	ErrRequiredAddress   = fault.InvalidError("address is required")
	ErrRequiredHex       = fault.InvalidError("hex payload is required")
	ErrRequiredKey       = fault.InvalidError("key is required")
	ErrRequiredMessage   = fault.InvalidError("message is required")
	ErrRequiredName      = fault.InvalidError("identity name is required")
	ErrRequiredPassword  = fault.InvalidError("password is required")
	ErrRequiredSignature = fault.InvalidError("signature is required")
	ErrRequiredSigner    = fault.InvalidError("one of seed or name is required")
	ErrRequiredSource    = fault.InvalidError("one of seed, public key or address is required")
	ErrRequiredValue     = fault.InvalidError("value is required")
	ErrRequiredXDR       = fault.InvalidError("xdr is required")
	ErrUnknownMemoType   = fault.InvalidError("unknown memo type")
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// non-blank hex value
func checkHex(s string, required error) ([]byte, error) {
	if "" == s {
		return nil, required
	}
	return hex.DecodeString(s)
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredName
	}
	return name, nil
}

func checkPassword(password string) (string, error) {
	if "" == password {
		return "", ErrRequiredPassword
	}
	return password, nil
}

// the version named on the command line
func checkVersion(name string) (strkey.VersionByte, error) {
	return strkey.VersionFromName(name)
}

type accountInfo struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key"`
	Hint      string `json:"hint"`
	CanSign   bool   `json:"can_sign"`
	Seed      string `json:"seed,omitempty"`
}

// describe an identity, the seed only when asked for
func describe(identity *keypair.Identity, withSeed bool) (*accountInfo, error) {
	info := &accountInfo{
		Address:   identity.Address(),
		PublicKey: hex.EncodeToString(identity.PublicKey()),
		Hint:      identity.Hint().String(),
		CanSign:   identity.CanSign(),
	}
	if withSeed && identity.CanSign() {
		seed, err := identity.Seed()
		if nil != err {
			return nil, err
		}
		info.Seed = seed
	}
	return info, nil
}

// build a memo from its command line type and value
func makeMemo(memoType string, value string) (xdr.Memo, error) {
	switch memoType {
	case "", "none":
		return xdr.MemoNone(), nil

	case "text":
		return xdr.NewMemoText(value)

	case "id":
		if "" == value {
			return xdr.Memo{}, ErrRequiredValue
		}
		id, err := strconv.ParseUint(value, 10, 64)
		if nil != err {
			return xdr.Memo{}, err
		}
		return xdr.NewMemoID(id)

	case "hash", "return":
		b, err := checkHex(value, ErrRequiredValue)
		if nil != err {
			return xdr.Memo{}, err
		}
		if "hash" == memoType {
			return xdr.NewMemoHash(b)
		}
		return xdr.NewMemoReturn(b)

	default:
		return xdr.Memo{}, ErrUnknownMemoType
	}
}

type memoInfo struct {
	Type   string `json:"type"`
	Value  string `json:"value,omitempty"`
	Hex    string `json:"xdr_hex"`
	Base64 string `json:"xdr_base64"`
}

func describeMemo(memo xdr.Memo) (*memoInfo, error) {
	b, err := xdr.Marshal(memo)
	if nil != err {
		return nil, err
	}
	s, err := xdr.MarshalBase64(memo)
	if nil != err {
		return nil, err
	}

	info := &memoInfo{
		Type:   memo.Type().String(),
		Hex:    hex.EncodeToString(b),
		Base64: s,
	}
	if text, ok := memo.Text(); ok {
		info.Value = text
	} else if id, ok := memo.ID(); ok {
		info.Value = strconv.FormatUint(id, 10)
	} else if h, ok := memo.Hash(); ok {
		info.Value = h.String()
	} else if h, ok := memo.ReturnHash(); ok {
		info.Value = h.String()
	}
	return info, nil
}

type intInfo struct {
	Width  int      `json:"width"`
	Signed bool     `json:"signed"`
	Value  string   `json:"value"`
	Limbs  []string `json:"limbs"`
	Hex    string   `json:"xdr_hex"`
}

// encode a decimal number at a given width
func encodeInt(width int, signed bool, value string) (*intInfo, error) {
	if "" == value {
		return nil, ErrRequiredValue
	}
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fault.ErrValueOutOfRange
	}

	v, err := wideint.New(n, wideint.Width(width), signed)
	if nil != err {
		return nil, err
	}
	limbs, err := v.Limbs()
	if nil != err {
		return nil, err
	}
	b, err := xdr.Marshal(v)
	if nil != err {
		return nil, err
	}

	info := &intInfo{
		Width:  width,
		Signed: signed,
		Value:  v.String(),
		Limbs:  make([]string, len(limbs)),
		Hex:    hex.EncodeToString(b),
	}
	for i, l := range limbs {
		info.Limbs[i] = l.String()
	}
	return info, nil
}

// open the identity database named by the configuration
func openKeystore(m *metadata) (*keystore.Store, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "keystore: %s\n", m.config.Keystore.Directory)
	}
	return keystore.Open(m.config.Keystore.Directory, m.config.Options())
}
