// Package leaf implements the leaf object variants: citation, URI,
// identifier, remark, scope, anchor, time-origin, bearing, meridian,
// order, parameter, parameter-file, area/bbox/vertical/time extents,
// the six unit kinds, axis, coordinate system, method, conversion,
// deriving-conversion, operation-accuracy, ellipsoid and prime
// meridian. These have no dependency on the datum or CRS families.
package leaf

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// textLeaf is the shared shape of every leaf variant that is nothing but
// a single quoted string: Citation, URI, Remark, Scope, Anchor,
// TimeOrigin and AreaExtent.
type textLeaf struct {
	model.Base
	text string
}

func newTextLeaf(tag model.Tag, text string, maxLen int) (textLeaf, *wkterror.Error) {
	if len(text) > maxLen {
		return textLeaf{}, wkterror.NewWithInt(tag.String(), wkterror.ErrTextTooLong, len(text))
	}
	return textLeaf{Base: model.NewBase(tag), text: text}, nil
}

func fromTokensTextLeaf(tag model.Tag, kws parsekit.Keywords, maxLen int, tokens []token.Token, start int) (textLeaf, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, kws)
	if werr != nil {
		return textLeaf{}, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(kws.Primary, len(atoms), 1, 1); werr != nil {
		return textLeaf{}, end, werr
	}
	tok, ok := parsekit.IndexOf(atoms, 0)
	if !ok {
		return textLeaf{}, end, wkterror.New(kws.Primary, wkterror.ErrInsufficientTokens)
	}
	tl, werr := newTextLeaf(tag, tok.Text, maxLen)
	if werr != nil {
		return textLeaf{}, end, werr
	}
	return tl, end, nil
}

func (t *textLeaf) toWKT(keyword string, buf *serialize.Buffer) {
	buf.WriteKeyword(keyword)
	buf.Open()
	buf.WriteQuoted(t.text)
	buf.Close()
}

func (t *textLeaf) Text() string { return t.text }

// --- Citation ---------------------------------------------------------

// MaxCitationLength is the cap on a citation's text.
const MaxCitationLength = 255

// Citation carries the text of a CITATION[...] object.
type Citation struct{ textLeaf }

var citationKeywords = parsekit.Keywords{Primary: "CITATION"}

// NewCitation validates and constructs a Citation.
func NewCitation(text string) (*Citation, *wkterror.Error) {
	tl, werr := newTextLeaf(model.TagCitation, text, MaxCitationLength)
	if werr != nil {
		return nil, werr
	}
	return &Citation{tl}, nil
}

// CitationFromTokens parses a CITATION[...] object starting at tokens[start].
func CitationFromTokens(tokens []token.Token, start int) (*Citation, int, *wkterror.Error) {
	tl, end, werr := fromTokensTextLeaf(model.TagCitation, citationKeywords, MaxCitationLength, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &Citation{tl}, end, nil
}

// ToWKT appends this citation's WKT representation to buf.
func (c *Citation) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !c.Visible() {
		return
	}
	c.toWKT(citationKeywords.Primary, buf)
}

// Clone returns a deep copy.
func (c *Citation) Clone() *Citation {
	clone := *c
	return &clone
}

// ComputeEqual reports value-level equality.
func (c *Citation) ComputeEqual(other *Citation) bool {
	return other != nil && c.text == other.text
}

// StructuralEqual reports full field-for-field equality.
func (c *Citation) StructuralEqual(other *Citation) bool {
	return c.ComputeEqual(other) && c.Visible() == other.Visible()
}

// Destroy releases c's state. Idempotent on nil.
func (c *Citation) Destroy() {
	if c == nil {
		return
	}
	c.text = ""
}

// --- URI ----------------------------------------------------------------

// MaxURILength is the cap on a URI's text.
const MaxURILength = 255

// URI carries the text of a URI[...] object.
type URI struct{ textLeaf }

var uriKeywords = parsekit.Keywords{Primary: "URI"}

func NewURI(text string) (*URI, *wkterror.Error) {
	tl, werr := newTextLeaf(model.TagURI, text, MaxURILength)
	if werr != nil {
		return nil, werr
	}
	return &URI{tl}, nil
}

func URIFromTokens(tokens []token.Token, start int) (*URI, int, *wkterror.Error) {
	tl, end, werr := fromTokensTextLeaf(model.TagURI, uriKeywords, MaxURILength, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &URI{tl}, end, nil
}

func (u *URI) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !u.Visible() {
		return
	}
	u.toWKT(uriKeywords.Primary, buf)
}

func (u *URI) Clone() *URI {
	clone := *u
	return &clone
}

func (u *URI) ComputeEqual(other *URI) bool {
	return other != nil && u.text == other.text
}

func (u *URI) StructuralEqual(other *URI) bool {
	return u.ComputeEqual(other) && u.Visible() == other.Visible()
}

func (u *URI) Destroy() {
	if u == nil {
		return
	}
	u.text = ""
}

// --- Remark ---------------------------------------------------------------

// MaxRemarkLength is the cap on a remark's UTF-8 text.
const MaxRemarkLength = 767

// Remark carries the text of a REMARK[...] object.
type Remark struct{ textLeaf }

var remarkKeywords = parsekit.Keywords{Primary: "REMARK"}

func NewRemark(text string) (*Remark, *wkterror.Error) {
	tl, werr := newTextLeaf(model.TagRemark, text, MaxRemarkLength)
	if werr != nil {
		return nil, werr
	}
	return &Remark{tl}, nil
}

func RemarkFromTokens(tokens []token.Token, start int) (*Remark, int, *wkterror.Error) {
	tl, end, werr := fromTokensTextLeaf(model.TagRemark, remarkKeywords, MaxRemarkLength, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &Remark{tl}, end, nil
}

func (r *Remark) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !r.Visible() {
		return
	}
	r.toWKT(remarkKeywords.Primary, buf)
}

func (r *Remark) Clone() *Remark {
	clone := *r
	return &clone
}

func (r *Remark) ComputeEqual(other *Remark) bool {
	return other != nil && r.text == other.text
}

func (r *Remark) StructuralEqual(other *Remark) bool {
	return r.ComputeEqual(other) && r.Visible() == other.Visible()
}

func (r *Remark) Destroy() {
	if r == nil {
		return
	}
	r.text = ""
}

// --- Scope ------------------------------------------------------------

// MaxScopeLength is the cap on a scope's text.
const MaxScopeLength = 255

// Scope carries the text of a SCOPE[...] object.
type Scope struct{ textLeaf }

var scopeKeywords = parsekit.Keywords{Primary: "SCOPE"}

func NewScope(text string) (*Scope, *wkterror.Error) {
	tl, werr := newTextLeaf(model.TagScope, text, MaxScopeLength)
	if werr != nil {
		return nil, werr
	}
	return &Scope{tl}, nil
}

func ScopeFromTokens(tokens []token.Token, start int) (*Scope, int, *wkterror.Error) {
	tl, end, werr := fromTokensTextLeaf(model.TagScope, scopeKeywords, MaxScopeLength, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &Scope{tl}, end, nil
}

func (s *Scope) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !s.Visible() {
		return
	}
	s.toWKT(scopeKeywords.Primary, buf)
}

func (s *Scope) Clone() *Scope {
	clone := *s
	return &clone
}

func (s *Scope) ComputeEqual(other *Scope) bool {
	return other != nil && s.text == other.text
}

func (s *Scope) StructuralEqual(other *Scope) bool {
	return s.ComputeEqual(other) && s.Visible() == other.Visible()
}

func (s *Scope) Destroy() {
	if s == nil {
		return
	}
	s.text = ""
}

// --- Anchor -------------------------------------------------------------

// MaxAnchorLength is the cap on an anchor's text.
const MaxAnchorLength = 255

// Anchor carries the text of an ANCHOR[...] object.
type Anchor struct{ textLeaf }

var anchorKeywords = parsekit.Keywords{Primary: "ANCHOR"}

func NewAnchor(text string) (*Anchor, *wkterror.Error) {
	tl, werr := newTextLeaf(model.TagAnchor, text, MaxAnchorLength)
	if werr != nil {
		return nil, werr
	}
	return &Anchor{tl}, nil
}

func AnchorFromTokens(tokens []token.Token, start int) (*Anchor, int, *wkterror.Error) {
	tl, end, werr := fromTokensTextLeaf(model.TagAnchor, anchorKeywords, MaxAnchorLength, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &Anchor{tl}, end, nil
}

func (a *Anchor) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !a.Visible() {
		return
	}
	a.toWKT(anchorKeywords.Primary, buf)
}

func (a *Anchor) Clone() *Anchor {
	clone := *a
	return &clone
}

func (a *Anchor) ComputeEqual(other *Anchor) bool {
	return other != nil && a.text == other.text
}

func (a *Anchor) StructuralEqual(other *Anchor) bool {
	return a.ComputeEqual(other) && a.Visible() == other.Visible()
}

func (a *Anchor) Destroy() {
	if a == nil {
		return
	}
	a.text = ""
}
