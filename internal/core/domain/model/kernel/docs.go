// Package kernel provides core domain primitives used throughout the
// food-delivery domain model.
//
// The package currently contains a single primitive:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//
// The primitive is immutable and thread-safe, making it suitable for
// concurrent use across aggregates, repositories, and adapters.
package kernel
