// Package signal implements named lifecycle hooks that elements emit and
// other code connects to.
package signal

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownSignal is returned when connecting to a signal that was never declared.
var ErrUnknownSignal = errors.New("unknown signal")

// Slot receives the arguments of an emitted signal.
type Slot func(args ...any)

// Connection is a handle returned by Connect and accepted by Disconnect.
type Connection struct {
	signal    string
	slot      Slot
	condition any
	hasCond   bool
	args      []any
	hasArgs   bool
}

// Signal returns the name of the signal the connection listens to.
func (c *Connection) Signal() string { return c.signal }

// Option tunes a connection.
type Option func(*Connection)

// When restricts the connection to emissions whose first argument equals value.
func When(value any) Option {
	return func(c *Connection) {
		c.condition = value
		c.hasCond = true
	}
}

// With replaces the emitted arguments with fixed ones.
func With(args ...any) Option {
	return func(c *Connection) {
		c.args = args
		c.hasArgs = true
	}
}

// Connectable holds declared signals and their connections.
// The zero value is ready to use and allocates nothing until first written.
type Connectable struct {
	declared    map[string]bool
	connections map[string][]*Connection
}

// Declare registers signal names. Once any signal is declared, Connect rejects
// undeclared names.
func (c *Connectable) Declare(signals ...string) {
	if c.declared == nil {
		c.declared = make(map[string]bool, len(signals))
	}
	for _, s := range signals {
		c.declared[s] = true
	}
}

// Declared reports whether a signal name was declared.
func (c *Connectable) Declared(signal string) bool {
	return c.declared[signal]
}

// Connect attaches slot to signal.
func (c *Connectable) Connect(signal string, slot Slot, opts ...Option) (*Connection, error) {
	if c.declared != nil && !c.declared[signal] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSignal, signal)
	}
	conn := &Connection{signal: signal, slot: slot}
	for _, opt := range opts {
		opt(conn)
	}
	if c.connections == nil {
		c.connections = make(map[string][]*Connection)
	}
	c.connections[signal] = append(c.connections[signal], conn)
	return conn, nil
}

// Disconnect removes a single connection. It reports whether it was found.
func (c *Connectable) Disconnect(conn *Connection) bool {
	if conn == nil {
		return false
	}
	list := c.connections[conn.signal]
	for i, existing := range list {
		if existing == conn {
			c.connections[conn.signal] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// DisconnectAll removes every connection to signal.
func (c *Connectable) DisconnectAll(signal string) {
	delete(c.connections, signal)
}

// Connected returns the number of connections to signal.
func (c *Connectable) Connected(signal string) int {
	return len(c.connections[signal])
}

// Emit calls every slot connected to signal in connection order.
func (c *Connectable) Emit(signal string, args ...any) {
	list := c.connections[signal]
	if len(list) == 0 {
		return
	}
	// slots may connect or disconnect while running
	snapshot := append([]*Connection(nil), list...)
	for _, conn := range snapshot {
		if conn.hasCond {
			if len(args) == 0 || !reflect.DeepEqual(args[0], conn.condition) {
				continue
			}
		}
		if conn.hasArgs {
			conn.slot(conn.args...)
			continue
		}
		conn.slot(args...)
	}
}
