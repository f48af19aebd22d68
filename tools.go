//go:build tools
// +build tools

// Package tools pins the Go-based tools invoked through go generate,
// so that mockgen stays tracked in go.mod.
package chat_relay

import (
	_ "go.uber.org/mock/mockgen"
)
