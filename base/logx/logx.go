// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup:
// a level that depends on build tags (debug, release), and a
// slog handler that colors the level of each record.
package logx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity level of the default logger.
// It starts at the build-tag default: Debug with the debug tag,
// Warn with the release tag, and Info otherwise.
var UserLevel = newLevelVar(defaultUserLevel)

func newLevelVar(lv slog.Level) *slog.LevelVar {
	v := &slog.LevelVar{}
	v.Set(lv)
	return v
}

// ParseLevel parses a level name (debug, info, warn, error),
// case insensitive. The empty string returns the build default.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return defaultUserLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return defaultUserLevel, fmt.Errorf("logx: unknown log level %q", s)
}

// SetDefault installs a [Handler] writing to os.Stderr as the
// [slog] default logger, at the given level name.
func SetDefault(level string) error {
	lv, err := ParseLevel(level)
	UserLevel.Set(lv)
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
	return err
}
