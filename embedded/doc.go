// Package embedded coerces raw input into composite values declared as the
// type of an attribute.
//
// Setup happens once per declared attribute:
//  1. IsEligible decides whether the declared type is an embedded value target.
//  2. BuildType wraps the type into a Type descriptor.
//  3. BuildCoercer selects the construction strategy for the descriptor.
//
// The resulting Coercer is then applied to every raw value of the attribute:
// nil stays nil, instances of the target pass through untouched, sequences
// feed positional construction and keyed maps feed keyed construction.
// Construction itself is delegated to a Host.
package embedded
