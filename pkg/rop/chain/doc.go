// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromTry: begin a chain from a Result[T], a value or a (value, error) pair
// - Then/ThenTry/Map: same-type steps, skipped once the chain has failed
// - OrElse: recover from a failure
// - Ensure: run side effects without changing the result
// - To/MapTo: move the chain to another value type
// - Finally: collapse the chain into a final value via handlers
package chain
