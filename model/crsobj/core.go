// Package crsobj implements the coordinate reference system variants:
// geodetic, projected, vertical, engineering, image, parametric,
// temporal and compound. Each depends on model/leaf and model/datum.
package crsobj

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

// MaxCRSNameLength caps every CRS variant's name.
const MaxCRSNameLength = 79

// crsCore is the metadata every CRS variant carries regardless of kind:
// a name, an optional scope/extent set, a remark, and identifiers.
type crsCore struct {
	model.Base
	name    string
	scope   *leaf.Scope
	extents *leaf.Extents
	remark  *leaf.Remark
	ids     *idSet
}

// idSet is a small nil-tolerant identifier collection, mirroring
// model/leaf's own private helper; kept local rather than exported from
// leaf since every family (leaf, datum, crsobj, coordop) needs the same
// handful of lines and exporting a single shared type across all four
// would couple them more tightly than the duplication costs.
type idSet struct {
	items []*leaf.Identifier
	seen  map[string]bool
}

func newIDSet() *idSet { return &idSet{seen: make(map[string]bool)} }

func (s *idSet) add(keyword string, id *leaf.Identifier) *wkterror.Error {
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

func (s *idSet) writeAll(f *serialize.FieldWriter, opts serialize.Options) {
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

func (s *idSet) clone() *idSet {
	if s == nil {
		return nil
	}
	out := newIDSet()
	for _, id := range s.items {
		out.items = append(out.items, id.Clone())
		out.seen[strings.ToLower(id.Name())] = true
	}
	return out
}

func (s *idSet) destroyAll() {
	if s == nil {
		return
	}
	for _, id := range s.items {
		id.Destroy()
	}
}

func newCRSCore(tag model.Tag, keyword, name string) (crsCore, *wkterror.Error) {
	if name == "" {
		return crsCore{}, wkterror.New(keyword, wkterror.ErrInsufficientTokens)
	}
	if len(name) > MaxCRSNameLength {
		return crsCore{}, wkterror.NewWithInt(keyword, wkterror.ErrNameTooLong, len(name))
	}
	return crsCore{Base: model.NewBase(tag), name: name}, nil
}

func (c *crsCore) Name() string          { return c.name }
func (c *crsCore) Key() string           { return strnum.FoldKey(c.name) }
func (c *crsCore) Scope() *leaf.Scope    { return c.scope }
func (c *crsCore) Remark() *leaf.Remark  { return c.remark }
func (c *crsCore) Extents() *leaf.Extents { return c.extents }

func (c *crsCore) SetScope(s *leaf.Scope)   { c.scope = s }
func (c *crsCore) SetRemark(r *leaf.Remark) { c.remark = r }

func (c *crsCore) AddIdentifier(keyword string, id *leaf.Identifier) *wkterror.Error {
	if c.ids == nil {
		c.ids = newIDSet()
	}
	return c.ids.add(keyword, id)
}

// parseCommonChild recognizes SCOPE/AREA/BBOX/VERTICALEXTENT/
// TIMEEXTENT/REMARK/ID, the metadata children every CRS variant shares.
func (c *crsCore) parseCommonChild(keyword string, tokens []token.Token, sub token.Token) (handled bool, werr *wkterror.Error) {
	idx := parsekit.IndexInTokens(tokens, sub)
	switch {
	case strnum.EqualFold(sub.Text, "SCOPE"):
		s, _, werr := leaf.ScopeFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		c.scope = s
		return true, nil
	case strnum.EqualFold(sub.Text, "REMARK"):
		r, _, werr := leaf.RemarkFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		c.remark = r
		return true, nil
	case strnum.EqualFold(sub.Text, "ID") || strnum.EqualFold(sub.Text, "AUTHORITY"):
		id, _, werr := leaf.IdentifierFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		if werr = c.AddIdentifier(keyword, id); werr != nil {
			return true, werr
		}
		return true, nil
	case strnum.EqualFold(sub.Text, "AREA") || strnum.EqualFold(sub.Text, "BBOX") ||
		strnum.EqualFold(sub.Text, "VERTICALEXTENT") || strnum.EqualFold(sub.Text, "TIMEEXTENT"):
		if c.extents == nil {
			c.extents = &leaf.Extents{}
		}
		return c.extents.AddSubObject(tokens, sub)
	}
	return false, nil
}

func (c *crsCore) writeCommon(f *serialize.FieldWriter, opts serialize.Options) {
	if c.scope != nil && c.scope.Visible() {
		sbuf := serialize.NewBuffer(opts)
		c.scope.ToWKT(sbuf, opts)
		f.WriteRaw(sbuf.String())
	}
	c.extents.ToWKT(f, opts)
	if c.remark != nil && c.remark.Visible() {
		rbuf := serialize.NewBuffer(opts)
		c.remark.ToWKT(rbuf, opts)
		f.WriteRaw(rbuf.String())
	}
	c.ids.writeAll(f, opts)
}

func (c *crsCore) cloneCommon() (scope *leaf.Scope, extents *leaf.Extents, remark *leaf.Remark, ids *idSet) {
	if c.scope != nil {
		scope = c.scope.Clone()
	}
	extents = c.extents.Clone()
	if c.remark != nil {
		remark = c.remark.Clone()
	}
	ids = c.ids.clone()
	return
}

func (c *crsCore) destroyCommon() {
	c.scope.Destroy()
	c.remark.Destroy()
	c.ids.destroyAll()
	c.name = ""
}
