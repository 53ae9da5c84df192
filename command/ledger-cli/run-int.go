// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info, err := encodeInt(c.Int("width"), !c.Bool("unsigned"), c.String("value"))
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}
