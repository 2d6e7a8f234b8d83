// Package serialize implements the WKT emitter framework: the options
// bitmask, a small append-only text buffer with the bracket/quoting
// helpers every variant's emitter needs, and the expansion pass that
// re-indents compact output into a multi-line hierarchical form. The
// buffer helpers are grounded on the teacher corpus's own WKT encoder
// (see the SAP HANA driver's wktBuffer in the example pack:
// writeList/withBrackets/writeStrings), adapted from geometry WKT to
// CRS WKT.
package serialize

// Options is the bitmask controlling how a variant's WKT is emitted.
type Options uint16

const (
	// ExpandSP indents children using spaces.
	ExpandSP Options = 1 << iota
	// ExpandTab indents children using tabs.
	ExpandTab
	// TopIDOnly emits the root object's identifier only, suppressing
	// every descendant's.
	TopIDOnly
	// NoIDs suppresses every identifier.
	NoIDs
	// Parens emits '(' ')' instead of '[' ']'.
	Parens
	// OldSyntax uses each variant's legacy keyword alias and layout.
	OldSyntax

	// internalRecursion marks a recursive call so the expansion pass
	// only ever runs once, at the outermost call.
	internalRecursion
)

// Expand reports whether either expansion flag is set.
func (o Options) Expand() bool {
	return o&(ExpandSP|ExpandTab) != 0
}

// Has reports whether every bit in want is set in o.
func (o Options) Has(want Options) bool {
	return o&want == want
}

// forChild clears TopIDOnly for descendants once the root has consumed
// it, matching "suppress all descendants'".
func (o Options) forChild() Options {
	out := o &^ TopIDOnly
	return out | internalRecursion
}

// OpenClose returns the bracket pair this options value selects.
func (o Options) OpenClose() (open, close byte) {
	if o.Has(Parens) {
		return '(', ')'
	}
	return '[', ']'
}

func (o Options) isRecursive() bool {
	return o.Has(internalRecursion)
}
