// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/group"
	"github.com/chainaim3003/algoTITANV6-sub000/ledger"
	"github.com/chainaim3003/algoTITANV6-sub000/publish"
	"github.com/chainaim3003/algoTITANV6-sub000/settlement"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

// basic defaults (files and directories are relative to the
// directory holding the configuration file)
const (
	defaultIdentitiesFile   = "identities.json"
	defaultJournalDirectory = "journal"

	defaultLogDirectory = "log"
	defaultLogFile      = "escrow.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultDecimals      = 6
	defaultRateLimit     = 10 // requests per second
	defaultRateBurst     = 20
	defaultMaximumRounds = 1000
)

// Connection - one ledger RPC endpoint
type Connection struct {
	Address     string `gluamapper:"address" json:"address"`
	Certificate string `gluamapper:"certificate" json:"certificate"` // optional fingerprint pin
}

// RateLimit - client side request throttle
type RateLimit struct {
	PerSecond float64 `gluamapper:"per_second" json:"per_second"`
	Burst     int     `gluamapper:"burst" json:"burst"`
}

// Rates - settlement fractions
type Rates struct {
	PlatformFee     settlement.Rate `gluamapper:"platform_fee" json:"platform_fee"`
	RegulatorTax    settlement.Rate `gluamapper:"regulator_tax" json:"regulator_tax"`
	RegulatorRefund settlement.Rate `gluamapper:"regulator_refund" json:"regulator_refund"`
}

// Configuration - everything the client needs
type Configuration struct {
	DataDirectory string `gluamapper:"data_directory" json:"data_directory"`

	Testnet     bool         `gluamapper:"testnet" json:"testnet"`
	Connections []Connection `gluamapper:"connections" json:"connections"`
	RateLimit   RateLimit    `gluamapper:"rate_limit" json:"rate_limit"`

	ApplicationId      uint64 `gluamapper:"application_id" json:"application_id"`
	ApplicationAddress string `gluamapper:"application_address" json:"application_address"`
	Regulator          string `gluamapper:"regulator" json:"regulator"`

	CallFee            uint64 `gluamapper:"call_fee" json:"call_fee"`
	ConfirmationRounds uint64 `gluamapper:"confirmation_rounds" json:"confirmation_rounds"`
	Decimals           int32  `gluamapper:"decimals" json:"decimals"`
	Rates              Rates  `gluamapper:"rates" json:"rates"`

	IdentitiesFile   string                `gluamapper:"identities" json:"identities"`
	JournalDirectory string                `gluamapper:"journal" json:"journal"`
	Publishing       publish.Configuration `gluamapper:"publishing" json:"publishing"`
	Logging          logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// Get - read, default and verify the configuration
func Get(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: ".",

		RateLimit: RateLimit{
			PerSecond: defaultRateLimit,
			Burst:     defaultRateBurst,
		},

		ConfirmationRounds: ledger.DefaultConfirmationRounds,
		Decimals:           defaultDecimals,

		Rates: Rates{
			PlatformFee:     settlement.DefaultPlatformFee,
			RegulatorTax:    settlement.DefaultRegulatorTax,
			RegulatorRefund: settlement.DefaultRegulatorRefund,
		},

		IdentitiesFile:   defaultIdentitiesFile,
		JournalDirectory: defaultJournalDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	if err := options.Validate(); nil != err {
		return nil, err
	}

	err = util.ResolvePaths(
		options.DataDirectory,
		&options.IdentitiesFile,
		&options.JournalDirectory,
		&options.Logging.Directory,
	)
	if nil != err {
		return nil, err
	}

	err = util.CreateDirectories(options.JournalDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	return options, nil
}

// Validate - check values that cannot be defaulted
func (c *Configuration) Validate() error {
	if 0 == len(c.Connections) {
		return fmt.Errorf("connections: at least one is required")
	}
	for i, conn := range c.Connections {
		if "" == conn.Address {
			return fmt.Errorf("connections[%d]: missing address", i)
		}
	}
	if 0 == c.ApplicationId {
		return fault.ErrMissingApplication
	}
	if _, err := c.applicationAddress(); nil != err {
		return fmt.Errorf("application_address: %w", err)
	}
	if _, err := c.regulator(); nil != err {
		return fmt.Errorf("regulator: %w", err)
	}
	if 0 == c.ConfirmationRounds || c.ConfirmationRounds > defaultMaximumRounds {
		return fmt.Errorf("confirmation_rounds: %d out of range", c.ConfirmationRounds)
	}
	if c.Decimals < 0 || c.Decimals > 19 {
		return fmt.Errorf("decimals: %d out of range", c.Decimals)
	}
	if c.RateLimit.PerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit: must be positive")
	}
	return c.Calculator().Validate()
}

// Calculator - settlement calculator for the configured rates
func (c *Configuration) Calculator() settlement.Calculator {
	return settlement.Calculator{
		PlatformFee:     c.Rates.PlatformFee,
		RegulatorTax:    c.Rates.RegulatorTax,
		RegulatorRefund: c.Rates.RegulatorRefund,
	}
}

// BuilderConfig - group builder settings
func (c *Configuration) BuilderConfig() (group.Config, error) {
	applicationAddress, err := c.applicationAddress()
	if nil != err {
		return group.Config{}, err
	}
	regulator, err := c.regulator()
	if nil != err {
		return group.Config{}, err
	}
	return group.Config{
		ApplicationId:      c.ApplicationId,
		ApplicationAddress: applicationAddress,
		Regulator:          regulator,
		CallFee:            c.CallFee,
	}, nil
}

func (c *Configuration) applicationAddress() (account.Address, error) {
	return account.AddressFromBase58(c.ApplicationAddress)
}

func (c *Configuration) regulator() (account.Address, error) {
	return account.AddressFromBase58(c.Regulator)
}
