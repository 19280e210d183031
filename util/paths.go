// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const homePrefix = "~" + string(filepath.Separator)

// ResolvePaths - rewrite each path in place as a clean absolute path
//
// a leading "~/" is the user's home directory and any other relative
// path is taken from directory; an empty path is an error
func ResolvePaths(directory string, paths ...*string) error {
	for _, p := range paths {
		name := *p
		switch {
		case "" == name:
			return fmt.Errorf("empty path under: %q", directory)
		case strings.HasPrefix(name, homePrefix):
			home, err := os.UserHomeDir()
			if nil != err {
				return err
			}
			name = filepath.Join(home, name[len(homePrefix):])
		case !filepath.IsAbs(name):
			name = filepath.Join(directory, name)
		}
		*p = filepath.Clean(name)
	}
	return nil
}

// CreateDirectories - make each directory, owner access only
func CreateDirectories(directories ...string) error {
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}

// RegularFile - whether a regular file exists at name
//
// nothing at name is false; something that is not a regular file is an error
func RegularFile(name string) (bool, error) {
	info, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if nil != err {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("not a regular file: %q", name)
	}
	return true, nil
}
