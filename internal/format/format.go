// Package format normalizes palette file source into HCL canonical
// style.
package format

import (
	"bytes"
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	repeatedBlankLines  = regexp.MustCompile(`\n{3,}`)
	blankAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
	blankBeforeClose    = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Source formats palette file source: hclwrite handles indentation and
// attribute alignment, and stray blank lines inside and between blocks
// are collapsed. Incomplete or invalid HCL is formatted on a best-effort
// basis rather than rejected, so formatting can run while a file is
// being edited.
func Source(src []byte) []byte {
	out := hclwrite.Format(src)
	out = repeatedBlankLines.ReplaceAll(out, []byte("\n\n"))
	out = blankAfterOpenBrace.ReplaceAll(out, []byte("{\n"))
	out = blankBeforeClose.ReplaceAll(out, []byte("\n$1"))
	return out
}

// Check reports whether src is already in canonical form.
func Check(src []byte) bool {
	return bytes.Equal(src, Source(src))
}
