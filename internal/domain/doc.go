// Package domain defines the core domain types and interfaces.
//
// This package contains the model capability contracts, the prediction value
// types, and the sentinel errors shared across the service. No implementation
// code - just contracts. Prevents circular imports by keeping interfaces on
// the consumer side.
package domain
