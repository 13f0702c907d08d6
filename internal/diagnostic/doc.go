// Package diagnostic records what happened to every member during a build.
//
// The engine never fails a build because one member could not be produced.
// Instead each member yields an Outcome:
//   - Populated: a value was generated and written back
//   - Skipped: the member was left at its current value, with a code and reason
//   - Exhausted: the depth budget was spent; silent and never recorded
//
// Outcomes are collected into a Report owned by the caller of the build.
package diagnostic
