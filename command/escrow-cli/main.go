// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/chainaim3003/algoTITANV6-sub000/configuration"
	"github.com/chainaim3003/algoTITANV6-sub000/keystore"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

type metadata struct {
	config     *configuration.Configuration
	identities *keystore.File
	save       bool
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "escrow-cli"
	app.Usage = "trade finance escrow settlement client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "config, c",
			Value:  "escrow.conf",
			Usage:  " configuration `FILE`",
			EnvVar: "ESCROW_CONFIG",
		},
		cli.StringSliceFlag{
			Name:  "define, D",
			Usage: " configuration variable `KEY=VALUE` visible as arg[KEY]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " identity `PASSWORD`",
			EnvVar: "ESCROW_PASSWORD",
		},
	}

	documentFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "buyer-credential",
			Usage: " buyer vLEI credential `TEXT` or @file",
		},
		cli.StringFlag{
			Name:  "buyer-pointer",
			Usage: " buyer credential location `URI`",
		},
		cli.StringFlag{
			Name:  "seller-credential",
			Usage: " seller vLEI credential `TEXT` or @file",
		},
		cli.StringFlag{
			Name:  "seller-pointer",
			Usage: " seller credential location `URI`",
		},
		cli.StringFlag{
			Name:  "purchase-order",
			Usage: " purchase order credential `TEXT` or @file",
		},
		cli.StringFlag{
			Name:  "purchase-order-pointer",
			Usage: " purchase order location `URI`",
		},
	}

	tradeFlag := cli.Uint64Flag{
		Name:  "trade, t",
		Usage: "*trade `ID`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "write an initial configuration file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "connect, C",
					Value: &cli.StringSlice{},
					Usage: "*node `HOST:PORT[,FINGERPRINT]` (repeatable)",
				},
				cli.Uint64Flag{
					Name:  "application-id, A",
					Usage: "*escrow application `ID`",
				},
				cli.StringFlag{
					Name:  "application, a",
					Usage: "*application account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "regulator, r",
					Usage: "*regulator account `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "testnet, T",
					Usage: " use the test network",
				},
				cli.Uint64Flag{
					Name:  "call-fee, f",
					Value: defaultCallFee,
					Usage: " minimum application call fee `UNITS`",
				},
				cli.Uint64Flag{
					Name:  "rounds, R",
					Value: defaultRounds,
					Usage: " confirmation wait `COUNT`",
				},
				cli.IntFlag{
					Name:  "decimals, D",
					Value: defaultDecimals,
					Usage: " settlement unit decimal `PLACES`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "generate",
			Usage:     "generate a new seed, optionally storing it as an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "add, a",
					Usage: " store as identity `NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Usage: " use an existing `SEED` instead of a new one",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "cost",
			Usage:     "display escrow, fee, tax and refund for a principal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "amount, a",
					Usage: "*principal `DECIMAL`",
				},
			},
			Action: runCost,
		},
		{
			Name:      "create",
			Usage:     "create a trade as buyer",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "seller, s",
					Usage: "*seller identity name or `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Usage: "*principal `DECIMAL`",
				},
				cli.StringFlag{
					Name:  "product, P",
					Usage: " product type `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Usage: " trade description `STRING`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Usage: " supporting document hash `STRING`",
				},
				cli.Uint64Flag{
					Name:  "instrument, I",
					Usage: " opt in to instrument asset `ID`",
				},
			}, documentFlags...),
			Action: runCreate,
		},
		{
			Name:      "fund",
			Usage:     "fund the escrow of a trade as buyer or financier",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{tradeFlag},
			Action:    runFund,
		},
		{
			Name:      "execute",
			Usage:     "execute an escrowed trade as seller",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				tradeFlag,
				cli.Uint64Flag{
					Name:  "instrument, I",
					Usage: "*instrument asset `ID`",
				},
			}, documentFlags...),
			Action: runExecute,
		},
		{
			Name:      "cancel",
			Usage:     "cancel a trade as buyer",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{tradeFlag},
			Action:    runCancel,
		},
		{
			Name:      "trade",
			Usage:     "display a trade",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tradeFlag,
				cli.BoolFlag{
					Name:  "details, d",
					Usage: " include metadata, documents and cost",
				},
			},
			Action: runTrade,
		},
		{
			Name:      "documents",
			Usage:     "display compliance documents of a trade",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tradeFlag,
				cli.StringFlag{
					Name:  "phase, P",
					Value: "creation",
					Usage: " document `PHASE` [creation|execution]",
				},
			},
			Action: runDocuments,
		},
		{
			Name:      "trades",
			Usage:     "list trades of an account",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Usage: "+buyer identity name or `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "seller, s",
					Usage: "+seller identity name or `ACCOUNT`",
				},
			},
			Action: runTrades,
		},
		{
			Name:      "journal",
			Usage:     "list submitted groups or resolve an open one",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "open, o",
					Usage: " only groups without an outcome",
				},
				cli.StringFlag{
					Name:  "resolve, r",
					Usage: " check the ledger for group `ID`",
				},
				cli.BoolFlag{
					Name:  "abandon",
					Usage: " with resolve: close the group even if still unconfirmed",
				},
			},
			Action: runJournal,
		},
		{
			Name:  "version",
			Usage: "display escrow-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h", "setup":
			return nil
		}

		variables := make(map[string]string)
		for _, d := range c.GlobalStringSlice("define") {
			kv := strings.SplitN(d, "=", 2)
			if 2 != len(kv) {
				return fmt.Errorf("define: %q is not KEY=VALUE", d)
			}
			variables[kv[0]] = kv[1]
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		config, err := configuration.Get(file, variables)
		if nil != err {
			return err
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}

		identities := keystore.New()
		exists, err := util.RegularFile(config.IdentitiesFile)
		if nil != err {
			return err
		}
		if exists {
			identities, err = keystore.Load(config.IdentitiesFile)
			if nil != err {
				return err
			}
		}

		c.App.Metadata["config"] = &metadata{
			config:     config,
			identities: identities,
			verbose:    verbose,
			e:          e,
			w:          w,
		}
		return nil
	}

	// update the identities if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		defer logger.Finalise()

		if m.save {
			if m.verbose {
				fmt.Fprintf(m.e, "updating identities file: %s\n", m.config.IdentitiesFile)
			}
			return m.identities.Save(m.config.IdentitiesFile)
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s\n", app.Name, err)
	}
}
