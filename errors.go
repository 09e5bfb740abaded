// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzs

package lzs

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrNilHistory      = errors.New("history buffer is nil")
	ErrHistoryTooSmall = errors.New("history buffer smaller than minimum window")
	ErrNilReader       = errors.New("reader is nil")
)
