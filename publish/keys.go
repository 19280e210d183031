// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/hex"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	keyLength     = 32
)

// MakeKeyPair - new curve key pair in tagged hex text form
func MakeKeyPair() (string, string, error) {
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return "", "", err
	}
	public := taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey)))
	private := taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey)))
	return public, private, nil
}

// ReadPrivateKey - key text, or the name of a file holding it
func ReadPrivateKey(key string) ([]byte, error) {
	if !strings.HasPrefix(strings.TrimSpace(key), taggedPrivate) {
		data, err := os.ReadFile(key)
		if nil != err {
			return nil, err
		}
		key = string(data)
	}
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.ErrInvalidKeyLength
	}
	return data, nil
}

// ParseKey - decode tagged hex text, also reporting if it is private
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	private := false
	switch {
	case strings.HasPrefix(s, taggedPrivate):
		private = true
		s = s[len(taggedPrivate):]
	case strings.HasPrefix(s, taggedPublic):
		s = s[len(taggedPublic):]
	default:
		return nil, false, fault.ErrInvalidKeyLength
	}

	h, err := hex.DecodeString(s)
	if nil != err {
		return nil, false, err
	}
	if keyLength != len(h) {
		return nil, false, fault.ErrInvalidKeyLength
	}
	return h, private, nil
}
