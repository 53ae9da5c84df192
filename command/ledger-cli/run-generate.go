// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerkit/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identity, err := keypair.Generate()
	if nil != err {
		return err
	}

	info, err := describe(identity, true)
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}
