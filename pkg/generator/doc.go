// Package generator renders pytest fixture source text from the template
// registry. A Generator is a pure request → response transformation: the
// registry is read-only, rendering has no side effects, and identical inputs
// always produce identical output.
package generator
