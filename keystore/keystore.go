// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keystore - password protected signing identities
//
// each identity holds a seed encrypted with a key derived from its
// password; the address is kept in clear so that identities can be
// listed without unlocking them
package keystore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/chainaim3003/algoTITANV6-sub000/account"
	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/keypair"
)

// File - identities file data format
type File struct {
	DefaultIdentity string              `json:"default_identity"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string          `json:"description"`
	Address     account.Address `json:"address"`
	Data        string          `json:"data"`
	Salt        string          `json:"salt"`
}

// New - empty identities file
func New() *File {
	return &File{
		Identities: make(map[string]Identity),
	}
}

// Load - read an identities file
func Load(filename string) (*File, error) {
	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	file := New()
	if err := json.NewDecoder(f).Decode(file); nil != err {
		return nil, err
	}
	if nil == file.Identities {
		file.Identities = make(map[string]Identity)
	}
	return file, nil
}

// Save - write through a temporary file so a failure leaves the old one
func (file *File) Save(filename string) error {
	buffer, err := json.MarshalIndent(file, "", "  ")
	if nil != err {
		return err
	}

	tempFile := filename + ".new"
	if err := os.WriteFile(tempFile, buffer, 0600); nil != err {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (file *File) Identity(name string) (*Identity, error) {
	if "" == name {
		name = file.DefaultIdentity
	}
	id, ok := file.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNotFound
	}
	return &id, nil
}

// Address - address of a named identity
func (file *File) Address(name string) (account.Address, error) {
	id, err := file.Identity(name)
	if nil != err {
		return account.Address{}, err
	}
	return id.Address, nil
}

// Add - store an encrypted identity
//
// the first identity added becomes the default
func (file *File) Add(name string, description string, seed string, password string) error {
	if _, ok := file.Identities[name]; ok {
		return fault.ErrAlreadyInitialised
	}

	pair, err := keypair.FromSeed(seed)
	if nil != err {
		return err
	}

	salt, err := MakeSalt()
	if nil != err {
		return err
	}
	secretKey, err := generateKey(password, salt)
	if nil != err {
		return err
	}
	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	file.Identities[name] = Identity{
		Description: description,
		Address:     pair.Address(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	if "" == file.DefaultIdentity {
		file.DefaultIdentity = name
	}
	return nil
}

// Unlock - decrypt the key pair of a named identity
func (file *File) Unlock(name string, password string) (*keypair.KeyPair, error) {
	id, err := file.Identity(name)
	if nil != err {
		return nil, err
	}

	salt := new(Salt)
	if err := salt.UnmarshalText([]byte(id.Salt)); nil != err || "" == id.Data {
		return nil, fault.ErrIdentityNotFound
	}

	secretKey, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}
	seed, err := decryptData(id.Data, secretKey)
	if nil != err {
		return nil, err
	}

	pair, err := keypair.FromSeed(seed)
	if nil != err {
		return nil, err
	}
	if pair.Address() != id.Address {
		return nil, fault.ErrChecksumMismatch
	}
	return pair, nil
}
