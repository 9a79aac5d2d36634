// Package datastructures provides small container types used around request
// handling: an insertion-ordered set, a map holding several values per key
// (query strings, form data), an immutable list, a prefix-transforming map
// and a case-insensitive map (HTTP header style lookups).
//
// None of the types are safe for concurrent mutation.
package datastructures
