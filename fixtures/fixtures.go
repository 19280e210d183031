// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for package tests
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
)

// LogCategory - tag used by tests that need their own channel
const LogCategory = "testing"

var dir string

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	var err error
	dir, err = os.MkdirTemp("", "escrow-test-")
	if nil != err {
		panic(fmt.Sprintf("cannot create log directory: %s", err))
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// TempDir - a directory below the log directory
func TempDir(name string) string {
	d := filepath.Join(dir, name)
	_ = os.MkdirAll(d, 0700)
	return d
}

func removeFiles() {
	if "" == dir {
		return
	}
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Party - deterministic key for a test participant
type Party struct {
	Address    account.Address
	PrivateKey ed25519.PrivateKey
}

// NewParty - key derived from a repeated byte
func NewParty(b byte) Party {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	var a account.Address
	copy(a[:], privateKey.Public().(ed25519.PublicKey))
	return Party{Address: a, PrivateKey: privateKey}
}
