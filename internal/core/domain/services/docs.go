// Package services contains stateless domain services that operate across
// aggregates or combine domain objects with caller-supplied input.
package services
