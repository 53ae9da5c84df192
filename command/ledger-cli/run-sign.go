// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerkit/keypair"
	"github.com/bitmark-inc/ledgerkit/xdr"
)

type signInfo struct {
	Address   string `json:"address"`
	Hint      string `json:"hint"`
	Signature string `json:"signature"`
	Decorated string `json:"decorated_xdr"`
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	message, err := checkHex(c.String("message"), ErrRequiredMessage)
	if nil != err {
		return err
	}

	var identity *keypair.Identity
	if seed := c.String("seed"); "" != seed {
		identity, err = keypair.ParseSeed(seed)
	} else if name := c.String("name"); "" != name {
		identity, err = unlockIdentity(m, name, c.String("password"))
	} else {
		err = ErrRequiredSigner
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signer: %s\n", identity)
	}

	info, err := signMessage(identity, message)
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func signMessage(identity *keypair.Identity, message []byte) (*signInfo, error) {
	signature, err := identity.SignDecorated(message)
	if nil != err {
		return nil, err
	}
	decorated, err := xdr.MarshalBase64(signature)
	if nil != err {
		return nil, err
	}

	return &signInfo{
		Address:   identity.Address(),
		Hint:      signature.Hint.String(),
		Signature: signature.Signature.String(),
		Decorated: decorated,
	}, nil
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address := c.String("address")
	if "" == address {
		return ErrRequiredAddress
	}
	message, err := checkHex(c.String("message"), ErrRequiredMessage)
	if nil != err {
		return err
	}
	signature, err := checkHex(c.String("signature"), ErrRequiredSignature)
	if nil != err {
		return err
	}

	identity, err := keypair.ParseAddress(address)
	if nil != err {
		return err
	}

	result := struct {
		Address   string `json:"address"`
		Signature string `json:"signature"`
		Valid     bool   `json:"valid"`
	}{
		Address:   address,
		Signature: hex.EncodeToString(signature),
		Valid:     identity.Verify(message, signature),
	}
	return printJson(m.w, result)
}
