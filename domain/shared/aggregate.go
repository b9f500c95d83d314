/*
Package shared holds the contracts and value objects common to all
subdomains: aggregate identity, domain events, error types and the
unit-of-work boundary.
*/
package shared

// AggregateRoot is the entry point of an aggregate. It has a global
// identity and enforces the aggregate's invariants on every mutation.
// Equality between aggregates is by identity, never by structure.
type AggregateRoot interface {
	// ID returns the canonical string form of the aggregate identifier.
	ID() string
}

// Entity has identity but is not an aggregate root on its own.
type Entity interface {
	ID() string
}

// ValueObject is immutable, has no identity and compares by structure.
// Go cannot enforce immutability, so implementations keep fields private
// and return copies of any mutable state.
type ValueObject interface {
	Equals(other interface{}) bool
}
