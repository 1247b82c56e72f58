// Package kernel contains the shared value objects of the domain model:
// identifiers, money, and postal addresses. All types are immutable, validate
// themselves on construction, and are safe for concurrent use. Aggregates in
// the order model build exclusively on these primitives so that monetary
// invariants (exact integer arithmetic, single currency per order) and
// identity rules are enforced in one place.
package kernel
