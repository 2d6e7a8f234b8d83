package leaf

import (
	"strings"

	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// MaxIdentifierNameLength and MaxIdentifierCodeLength cap an
// Identifier's name and code.
const (
	MaxIdentifierNameLength    = 79
	MaxIdentifierVersionLength = 255
	MaxIdentifierCodeLength    = 255
)

// Identifier carries an ID[...] / AUTHORITY[...] object: an authority
// name, a code (canonicalized to string), an optional version, and
// optional citation/URI children.
type Identifier struct {
	model.Base
	name     string
	code     string
	version  string
	citation *Citation
	uri      *URI
}

var idKeywords = parsekit.Keywords{Primary: "ID", Legacy: "AUTHORITY"}

// NewIdentifier validates and constructs an Identifier; name and code are
// required.
func NewIdentifier(name, code string) (*Identifier, *wkterror.Error) {
	if name == "" || code == "" {
		return nil, wkterror.New(idKeywords.Primary, wkterror.ErrInsufficientTokens)
	}
	if len(name) > MaxIdentifierNameLength {
		return nil, wkterror.NewWithInt(idKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	if len(code) > MaxIdentifierCodeLength {
		return nil, wkterror.NewWithInt(idKeywords.Primary, wkterror.ErrIdentifierTooLong, len(code))
	}
	return &Identifier{Base: model.NewBase(model.TagIdentifier), name: name, code: code}, nil
}

// SetVersion attaches an optional version string.
func (id *Identifier) SetVersion(v string) *wkterror.Error {
	if len(v) > MaxIdentifierVersionLength {
		return wkterror.NewWithInt(idKeywords.Primary, wkterror.ErrVersionTooLong, len(v))
	}
	id.version = v
	return nil
}

// SetCitation attaches an optional citation child.
func (id *Identifier) SetCitation(c *Citation) { id.citation = c }

// SetURI attaches an optional URI child.
func (id *Identifier) SetURI(u *URI) { id.uri = u }

// Name, Code, Version return the identifier's scalar fields.
func (id *Identifier) Name() string    { return id.name }
func (id *Identifier) Code() string    { return id.code }
func (id *Identifier) Version() string { return id.version }

// Key implements container.Keyed: identifiers are deduplicated by
// case-insensitive name.
func (id *Identifier) Key() string { return strings.ToLower(id.name) }

// IdentifierFromTokens parses an ID[...] or (legacy) AUTHORITY[...]
// object starting at tokens[start].
func IdentifierFromTokens(tokens []token.Token, start int) (*Identifier, int, *wkterror.Error) {
	legacy, werr := parsekit.CheckKeyword(tokens, start, idKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(idKeywords.Primary, len(atoms), 2, 3); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	codeTok, _ := parsekit.IndexOf(atoms, 1)
	id, werr := NewIdentifier(nameTok.Text, codeTok.Text)
	if werr != nil {
		return nil, end, werr
	}
	if verTok, ok := parsekit.IndexOf(atoms, 2); ok {
		if werr = id.SetVersion(verTok.Text); werr != nil {
			return nil, end, werr
		}
	}
	_ = legacy
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case citationKeywords.Match1(sub.Text):
			c, _, werr := CitationFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if id.citation != nil {
				return nil, end, wkterror.New(idKeywords.Primary, wkterror.ErrDuplicateCitation)
			}
			id.citation = c
		case uriKeywords.Match1(sub.Text):
			u, _, werr := URIFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if id.uri != nil {
				return nil, end, wkterror.New(idKeywords.Primary, wkterror.ErrDuplicateURI)
			}
			id.uri = u
		}
		// Unknown sub-objects at this level are skipped.
	}
	return id, end, nil
}

// ToWKT appends this identifier's WKT. Under OldSyntax it emits the
// legacy AUTHORITY[...] layout (name, bare integer code, no version or
// citation/uri children).
func (id *Identifier) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !id.Visible() {
		return
	}
	if opts.Has(serialize.OldSyntax) {
		buf.WriteKeyword(idKeywords.Legacy)
		buf.Open()
		f := serialize.Fields(buf)
		f.WriteQuoted(id.name)
		f.Write(id.code)
		buf.Close()
		return
	}
	buf.WriteKeyword(idKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(id.name)
	f.WriteQuoted(id.code)
	if id.version != "" {
		f.WriteQuoted(id.version)
	}
	if id.citation != nil && id.citation.Visible() {
		cbuf := serialize.NewBuffer(opts)
		id.citation.ToWKT(cbuf, opts)
		f.WriteRaw(cbuf.String())
	}
	if id.uri != nil && id.uri.Visible() {
		ubuf := serialize.NewBuffer(opts)
		id.uri.ToWKT(ubuf, opts)
		f.WriteRaw(ubuf.String())
	}
	buf.Close()
}

func (id *Identifier) Clone() *Identifier {
	clone := *id
	if id.citation != nil {
		clone.citation = id.citation.Clone()
	}
	if id.uri != nil {
		clone.uri = id.uri.Clone()
	}
	return &clone
}

func (id *Identifier) ComputeEqual(other *Identifier) bool {
	if other == nil {
		return false
	}
	return id.name == other.name && id.code == other.code
}

func (id *Identifier) StructuralEqual(other *Identifier) bool {
	if other == nil || !id.ComputeEqual(other) {
		return false
	}
	if id.version != other.version || id.Visible() != other.Visible() {
		return false
	}
	return true
}

func (id *Identifier) Destroy() {
	if id == nil {
		return
	}
	id.citation.Destroy()
	id.uri.Destroy()
	id.name, id.code, id.version = "", "", ""
}
