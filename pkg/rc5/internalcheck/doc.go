// Package internalcheck holds source-level policy tests for the rc5 packages.
//
// The tests load the production sources with golang.org/x/tools/go/packages
// and reject constructs that are easy to get wrong in cipher code: direct
// equality on byte slices or arrays, %x formatting that could leak key
// material, and imports of unsafe or math/rand. It has no exported API.
package internalcheck
