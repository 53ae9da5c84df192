// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerkit/xdr"
)

func runMemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	memo, err := makeMemo(c.String("type"), c.String("value"))
	if nil != err {
		return err
	}

	info, err := describeMemo(memo)
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func runDecodeMemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("xdr")
	if "" == s {
		return ErrRequiredXDR
	}

	var memo xdr.Memo
	if err := xdr.UnmarshalBase64(s, &memo); nil != err {
		return err
	}

	info, err := describeMemo(memo)
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}
