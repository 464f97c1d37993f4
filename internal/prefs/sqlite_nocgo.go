//go:build !cgo
// +build !cgo

package prefs

import (
	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"
