// Package provider exposes the active-connection capability the
// ecosystem consults for network defaults.
package provider

import (
	"github.com/dtdang/polygonzkevm/types"
)

// Connection describes an established connection to a zkEVM network.
type Connection interface {
	// NetworkName is the configured name of the connected network.
	NetworkName() types.Network

	// RequiredConfirmations is the confirmation count configured for
	// the connected network.
	RequiredConfirmations() uint64
}

// Registry reports the currently active connection, if any. The host
// framework owns connection lifecycle; the ecosystem only reads it.
type Registry interface {
	// ActiveConnection returns nil when no connection is established.
	ActiveConnection() Connection
}

// StaticRegistry is a Registry with a fixed active connection. Useful
// for tests and for hosts that manage a single connection.
type StaticRegistry struct {
	Conn Connection
}

func (r StaticRegistry) ActiveConnection() Connection {
	return r.Conn
}
