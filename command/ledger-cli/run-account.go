// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerkit/keypair"
)

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identity, err := accountFrom(c.String("seed"), c.String("publickey"), c.String("address"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", identity)
	}

	info, err := describe(identity, false)
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

// first of seed, public key, address that is present
func accountFrom(seed string, publicKey string, address string) (*keypair.Identity, error) {
	switch {
	case "" != seed:
		return keypair.ParseSeed(seed)
	case "" != publicKey:
		b, err := checkHex(publicKey, ErrRequiredSource)
		if nil != err {
			return nil, err
		}
		return keypair.FromPublicKey(b)
	case "" != address:
		return keypair.ParseAddress(address)
	default:
		return nil, ErrRequiredSource
	}
}
