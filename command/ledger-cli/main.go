// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "ledger key, address and wire format tool"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/ledger-cli/ledger-cli.conf]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a random identity, will not store it",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "account",
			Usage:     "show the address and hint of a seed or public key",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+secret `SEED`",
				},
				cli.StringFlag{
					Name:  "publickey, k",
					Value: "",
					Usage: "+raw public key `HEX`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+account `ADDRESS`",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "encode",
			Usage:     "encode a 32 byte payload as a strkey",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "version, V",
					Value: "account-id",
					Usage: " `KIND` [account-id|seed|pre-auth-tx|sha256-hash]",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "*payload `HEX`",
				},
			},
			Action: runEncode,
		},
		{
			Name:      "decode",
			Usage:     "decode a strkey to its payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "version, V",
					Value: "",
					Usage: " expected `KIND` [account-id|seed|pre-auth-tx|sha256-hash]",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*strkey `STRING`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "memo",
			Usage:     "encode a memo",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "none",
					Usage: " memo `TYPE` [none|text|id|hash|return]",
				},
				cli.StringFlag{
					Name:  "value, m",
					Value: "",
					Usage: " text, decimal id or hash `HEX`",
				},
			},
			Action: runMemo,
		},
		{
			Name:      "decode-memo",
			Usage:     "decode a memo",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "xdr, x",
					Value: "",
					Usage: "*encoded memo `BASE64`",
				},
			},
			Action: runDecodeMemo,
		},
		{
			Name:      "sign",
			Usage:     "sign a message with a seed or a stored identity",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+secret `SEED`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "+stored identity `NAME`",
				},
				cli.StringFlag{
					Name:  "password, p",
					Value: "",
					Usage: " stored identity `PASSWORD`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*message `HEX`",
				},
			},
			Action: runSign,
		},
		{
			Name:      "verify",
			Usage:     "verify a signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*signer `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*message `HEX`",
				},
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*signature `HEX`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "int",
			Usage:     "encode a wide integer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width, w",
					Value: 128,
					Usage: " `BITS` [64|128|256]",
				},
				cli.BoolFlag{
					Name:  "unsigned, u",
					Usage: " unsigned value",
				},
				cli.StringFlag{
					Name:  "value, i",
					Value: "",
					Usage: "*decimal `NUMBER`",
				},
			},
			Action: runInt,
		},
		{
			Name:      "add",
			Usage:     "store an identity under a name",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*identity `NAME`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " existing `SEED` [generate a new one]",
				},
				cli.StringFlag{
					Name:  "password, p",
					Value: "",
					Usage: "*identity `PASSWORD`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "list",
			Usage:     "list stored identities",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runList,
		},
		{
			Name:      "show",
			Usage:     "show a stored identity, with its seed if the password is given",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*identity `NAME`",
				},
				cli.StringFlag{
					Name:  "password, p",
					Value: "",
					Usage: " identity `PASSWORD`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "remove",
			Usage:     "delete a stored identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*identity `NAME`",
				},
			},
			Action: runRemove,
		},
		{
			Name:      "version",
			Usage:     "display ledger-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file, err := configurationFileName(c.GlobalString("config"))
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(configuration.Logging)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		logger.New("main").Infof("command: %q", command)
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
