// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerkit/strkey"
)

type strkeyInfo struct {
	Version string `json:"version"`
	Hex     string `json:"hex"`
	Key     string `json:"key"`
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	version, err := checkVersion(c.String("version"))
	if nil != err {
		return err
	}
	payload, err := checkHex(c.String("hex"), ErrRequiredHex)
	if nil != err {
		return err
	}

	key, err := strkey.Encode(version, payload)
	if nil != err {
		return err
	}

	return printJson(m.w, strkeyInfo{
		Version: version.String(),
		Hex:     hex.EncodeToString(payload),
		Key:     key,
	})
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info, err := decodeKey(c.String("version"), c.String("key"))
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

// decode against the named version, or whatever version the key
// carries when none is named
func decodeKey(versionName string, key string) (*strkeyInfo, error) {
	if "" == key {
		return nil, ErrRequiredKey
	}

	var version strkey.VersionByte
	var err error
	if "" == versionName {
		version, err = strkey.Version(key)
	} else {
		version, err = checkVersion(versionName)
	}
	if nil != err {
		return nil, err
	}

	payload, err := strkey.Decode(version, key)
	if nil != err {
		return nil, err
	}

	return &strkeyInfo{
		Version: version.String(),
		Hex:     hex.EncodeToString(payload),
		Key:     key,
	}, nil
}
