// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32

	// seeds are base58 text so always within these bounds
	minPlaintext = 32
	maxPlaintext = 16384
)

// Salt - random input to the password hash
type Salt [saltSize]byte

// MakeSalt - fresh random salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); nil != err {
		return nil, err
	}
	return salt, nil
}

// String - hex form
func (salt Salt) String() string {
	return hex.EncodeToString(salt[:])
}

// UnmarshalText - from hex
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if saltSize != byteCount {
		return fault.ErrInvalidKeyLength
	}
	copy(salt[:], buffer)
	return nil
}

func generateKey(password string, salt *Salt) (*[keySize]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     keySize,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt[:])
	if nil != err {
		return nil, err
	}

	var secretKey [keySize]byte
	copy(secretKey[:], hash)
	return &secretKey, nil
}

// encrypt a string and convert to hex; the nonce is stored in front
func encryptData(data string, secretKey *[keySize]byte) (string, error) {
	l := len(data)
	if l < minPlaintext || l >= maxPlaintext {
		return "", fault.ErrCryptoFailed
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)
	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[keySize]byte) (string, error) {
	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err || len(encrypted) <= nonceSize {
		return "", fault.ErrCryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, secretKey)
	if !ok {
		return "", fault.ErrWrongPassword
	}
	return string(decrypted), nil
}
