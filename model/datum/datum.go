// Package datum implements the six datum variants: geodetic,
// engineering, image, parametric, temporal and vertical. Each depends
// only on model/leaf (an ellipsoid, prime meridian, anchor, time
// origin, or identifiers).
package datum

import (
	"strings"

	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// MaxDatumNameLength caps every datum variant's name.
const MaxDatumNameLength = 79

// datumCore is the shared shape every datum variant builds on: a name,
// an optional anchor description, and owned identifiers.
type datumCore struct {
	model.Base
	name   string
	anchor *leaf.Anchor
	ids    *identifierSet
}

// identifierSet mirrors model/leaf's private helper of the same name;
// duplicated rather than exported from leaf because leaf's is built on
// leaf.Identifier specifically and datum has no other reason to import
// container directly.
type identifierSet struct {
	items []*leaf.Identifier
	seen  map[string]bool
}

func newIdentifierSet() *identifierSet {
	return &identifierSet{seen: make(map[string]bool)}
}

func (s *identifierSet) add(keyword string, id *leaf.Identifier) *wkterror.Error {
	if s == nil || id == nil {
		return nil
	}
	k := strings.ToLower(id.Name())
	if s.seen[k] {
		return wkterror.New(keyword, wkterror.ErrDuplicateID)
	}
	s.seen[k] = true
	s.items = append(s.items, id)
	return nil
}

func (s *identifierSet) writeAll(f *serialize.FieldWriter, opts serialize.Options) {
	if s == nil {
		return
	}
	for _, id := range s.items {
		if !id.Visible() || opts.Has(serialize.NoIDs) {
			continue
		}
		idbuf := serialize.NewBuffer(opts)
		id.ToWKT(idbuf, opts)
		f.WriteRaw(idbuf.String())
		if opts.Has(serialize.TopIDOnly) {
			break
		}
	}
}

func (s *identifierSet) clone() *identifierSet {
	if s == nil {
		return nil
	}
	out := newIdentifierSet()
	for _, id := range s.items {
		out.items = append(out.items, id.Clone())
		out.seen[strings.ToLower(id.Name())] = true
	}
	return out
}

func (s *identifierSet) destroyAll() {
	if s == nil {
		return
	}
	for _, id := range s.items {
		id.Destroy()
	}
}

func newDatumCore(tag model.Tag, keyword, name string) (datumCore, *wkterror.Error) {
	if name == "" {
		return datumCore{}, wkterror.New(keyword, wkterror.ErrInsufficientTokens)
	}
	if len(name) > MaxDatumNameLength {
		return datumCore{}, wkterror.NewWithInt(keyword, wkterror.ErrNameTooLong, len(name))
	}
	return datumCore{Base: model.NewBase(tag), name: name}, nil
}

func (d *datumCore) Name() string { return d.name }
func (d *datumCore) Key() string  { return strnum.FoldKey(d.name) }

func (d *datumCore) SetAnchor(a *leaf.Anchor) { d.anchor = a }
func (d *datumCore) Anchor() *leaf.Anchor     { return d.anchor }

func (d *datumCore) AddIdentifier(keyword string, id *leaf.Identifier) *wkterror.Error {
	if d.ids == nil {
		d.ids = newIdentifierSet()
	}
	return d.ids.add(keyword, id)
}

// parseCommonChildren dispatches ANCHOR and ID sub-objects shared by
// every datum variant, reporting handled=false for anything else so the
// caller's own switch can take the remaining kind-specific children.
func (d *datumCore) parseCommonChildren(keyword string, tokens []token.Token, sub token.Token) (handled bool, werr *wkterror.Error) {
	idx := parsekit.IndexInTokens(tokens, sub)
	switch {
	case anchorKeywordsMatch(sub.Text):
		a, _, werr := leaf.AnchorFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		d.anchor = a
		return true, nil
	case idKeywordsMatch(sub.Text):
		id, _, werr := leaf.IdentifierFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		if werr = d.AddIdentifier(keyword, id); werr != nil {
			return true, werr
		}
		return true, nil
	}
	return false, nil
}

func anchorKeywordsMatch(text string) bool { return strings.EqualFold(text, "ANCHOR") }
func idKeywordsMatch(text string) bool {
	return strings.EqualFold(text, "ID") || strings.EqualFold(text, "AUTHORITY")
}

func (d *datumCore) writeCommon(f *serialize.FieldWriter, opts serialize.Options) {
	if d.anchor != nil && d.anchor.Visible() {
		abuf := serialize.NewBuffer(opts)
		d.anchor.ToWKT(abuf, opts)
		f.WriteRaw(abuf.String())
	}
	d.ids.writeAll(f, opts)
}

func (d *datumCore) cloneCommon() (anchor *leaf.Anchor, ids *identifierSet) {
	if d.anchor != nil {
		anchor = d.anchor.Clone()
	}
	ids = d.ids.clone()
	return
}

func (d *datumCore) destroyCommon() {
	d.anchor.Destroy()
	d.ids.destroyAll()
	d.name = ""
}
