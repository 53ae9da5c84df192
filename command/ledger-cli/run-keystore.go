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

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}
	password, err := checkPassword(c.String("password"))
	if nil != err {
		return err
	}

	var identity *keypair.Identity
	if seed := c.String("seed"); "" != seed {
		identity, err = keypair.ParseSeed(seed)
	} else {
		identity, err = keypair.Generate()
	}
	if nil != err {
		return err
	}

	store, err := openKeystore(m)
	if nil != err {
		return err
	}
	defer store.Close()

	if err := store.Add(name, identity, password); nil != err {
		return err
	}

	info, err := describe(identity, false)
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	store, err := openKeystore(m)
	if nil != err {
		return err
	}
	defer store.Close()

	names, err := store.List()
	if nil != err {
		return err
	}

	type entry struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	result := make([]entry, 0, len(names))
	for _, name := range names {
		address, err := store.Address(name)
		if nil != err {
			return err
		}
		result = append(result, entry{Name: name, Address: address})
	}
	return printJson(m.w, result)
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}
	password := c.String("password")

	store, err := openKeystore(m)
	if nil != err {
		return err
	}
	defer store.Close()

	// without a password only the public part is shown
	var identity *keypair.Identity
	if "" == password {
		address, err := store.Address(name)
		if nil != err {
			return err
		}
		identity, err = keypair.ParseAddress(address)
		if nil != err {
			return err
		}
	} else {
		identity, err = store.Unlock(name, password)
		if nil != err {
			return err
		}
	}

	info, err := describe(identity, true)
	if nil != err {
		return err
	}

	result := struct {
		Name string `json:"name"`
		*accountInfo
	}{
		Name:        name,
		accountInfo: info,
	}
	return printJson(m.w, result)
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	store, err := openKeystore(m)
	if nil != err {
		return err
	}
	defer store.Close()

	if err := store.Remove(name); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "removed: %s\n", name)
	}
	return printJson(m.w, struct {
		Removed string `json:"removed"`
	}{
		Removed: name,
	})
}

// unlock a stored identity for signing
func unlockIdentity(m *metadata, name string, password string) (*keypair.Identity, error) {
	password, err := checkPassword(password)
	if nil != err {
		return nil, err
	}

	store, err := openKeystore(m)
	if nil != err {
		return nil, err
	}
	defer store.Close()

	return store.Unlock(name, password)
}
