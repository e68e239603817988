// Package composite describes the construction protocols an embedded value
// target can follow and provides the reflective helpers hosts use to build
// instances of such targets.
//
// Four categories are supported:
//   - Record: positional composites. A struct declares it by embedding Record
//     and is built from an ordered list of values, one per field.
//   - Open: dynamic-attribute composites. OpenStruct itself or any struct
//     embedding it, built from a keyed map.
//   - Model: structs declared through the attribute framework. A struct
//     declares it by embedding Model and is built from a keyed map.
//   - Constructor: any struct whose pointer implements Constructor.
//
// Category membership is decided by method sets, so embedding a marker plays
// the role of inheriting from it.
package composite
