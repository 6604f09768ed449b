// Package sorted defines the comparison rule type shared by all
// search and insertion entry points.
package sorted

// Comparator is a three-way comparison rule over T.
//
// It must return a negative value when a orders before b, zero when the two
// are equal under the rule, and a positive value when a orders after b —
// the same convention as cmp.Compare and strings.Compare.
//
// A Comparator passed to SearchFunc/InsertFunc must be consistent with the
// order the slice was sorted under; mixing rules is a caller-side contract
// violation with an undefined (memory-safe) result.
type Comparator[T any] func(a, b T) int
