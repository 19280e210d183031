// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

const minimumPasswordLength = 8

// common errors - keep in alphabetic order
const (
	ErrNoConsole        = fault.ProcessError("no console for password entry")
	ErrPasswordMismatch = fault.InvalidError("passwords do not match")
	ErrPasswordTooShort = fault.InvalidError("password too short")
)

func getTerminal() (*terminal.Terminal, func(), error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return nil, nil, ErrNoConsole
	}
	fd := int(tty.Fd())
	oldState, err := terminal.MakeRaw(fd)
	if nil != err {
		tty.Close()
		return nil, nil, ErrNoConsole
	}
	restore := func() {
		terminal.Restore(fd, oldState)
		tty.Close()
	}
	return terminal.NewTerminal(tty, "escrow-cli: "), restore, nil
}

func promptPassword() (string, error) {
	console, restore, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer restore()
	return console.ReadPassword("password: ")
}

func promptNewPassword() (string, error) {
	console, restore, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer restore()

	password, err := console.ReadPassword("Set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", ErrPasswordTooShort
	}
	verify, err := console.ReadPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", ErrPasswordMismatch
	}
	return password, nil
}
