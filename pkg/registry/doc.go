// Package registry holds the fixed mapping from fixture kind to its
// parameterized template. Templates ship embedded in the binary; the registry
// is constructed once and never mutated.
package registry
