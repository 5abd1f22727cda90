// Package onewire enumerates the temperature probes attached to the node's
// one-wire bus and labels them for record assembly.
package onewire

import "fmt"

// AddressLen is the length of a one-wire ROM code.
const AddressLen = 8

// Address is the 8-byte ROM code identifying a device on the bus. It is a
// plain value type; discovery hands out copies that stay valid after the
// enumeration pass ends.
type Address [AddressLen]byte

// Label renders the last two address bytes as four uppercase hex digits.
// Full 16-digit ROM codes make unwieldy record keys; the 2-byte suffix
// stays short and varies enough across the handful of probes a single bus
// carries. Collisions on large buses are accepted.
func (a Address) Label() string {
	return fmt.Sprintf("%02X%02X", a[AddressLen-2], a[AddressLen-1])
}

// String returns the full ROM code as uppercase hex.
func (a Address) String() string {
	return fmt.Sprintf("%X", a[:])
}
