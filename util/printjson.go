// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrintJson - indented JSON of message, under title when one is given
//
// marshal and write errors are both returned
func PrintJson(handle io.Writer, title string, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return fmt.Errorf("print %T: %w", message, err)
	}

	if "" == title {
		_, err = fmt.Fprintf(handle, "%s\n", b)
	} else {
		_, err = fmt.Fprintf(handle, "%s:\n%s\n", title, b)
	}
	return err
}
