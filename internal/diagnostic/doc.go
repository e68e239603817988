// Package diagnostic collects setup-time findings produced while attribute
// sets are declared.
//
// Key capabilities:
//   - Errors for attributes whose type has no coercer
//   - Errors for embedded value targets without a construction strategy
//   - Warnings for tags on fields that can never be assigned
//   - A combined error that keeps the underlying causes for errors.Is
package diagnostic
