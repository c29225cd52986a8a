// Package kernel contains shared value objects used across the domain model.
//
// Value objects in this package are immutable and validated on construction:
//   - UUID: unique identifier for entities and aggregates
//   - Money: positive decimal payment amount
//
// The zero value of each type is invalid; use the provided constructor
// functions and check Validate before trusting values restored from
// persistence or parsed from external input.
package kernel
