// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for locating
// config files on search paths.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/lyra/base/errors"
)

// FileExists checks whether given regular file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// An absolute file name is checked directly.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, fn := range files {
		if filepath.IsAbs(fn) {
			if ok, _ := FileExists(fn); ok {
				res = append(res, fn)
			}
			continue
		}
		for _, path := range paths {
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if !ok {
				continue
			}
			if fa, err := filepath.Abs(fp); err == nil {
				fp = fa
			}
			res = append(res, fp)
			break
		}
	}
	return res
}
