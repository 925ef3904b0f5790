// Package tree defines the immutable value model queried by the selector
// engine.
//
// A Value is exactly one of:
//   - Null, the zero Value
//   - Scalar, holding a string, a boolean or a number
//   - List, an ordered sequence of values
//   - Map, string keys in insertion order
//
// Values are never modified after construction. Accessors that expose
// internal slices return copies, so a Value may be shared freely between
// goroutines.
package tree
