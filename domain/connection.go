// Package domain contains core concepts of the relay.
// This file defines connection and group identifiers.
// No runtime, network, or storage logic should be added here.
package domain

// ConnectionID is the opaque handle of a live client connection.
type ConnectionID string

// GroupID identifies a chat group. Groups only exist while they have members.
type GroupID string
