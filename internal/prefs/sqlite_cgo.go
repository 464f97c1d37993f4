//go:build cgo
// +build cgo

package prefs

import (
	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriver = "sqlite3"
