package leaf

import (
	"github.com/goblimey/go-wktcrs/container"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// identifierSet is the "zero or more ID[...] children, deduplicated by
// name" shape that recurs across Parameter, ParameterFile, Ellipsoid,
// Axis, CS, Method and every datum/CRS variant.
// Wrapping container.Set here once avoids repeating the nil-tolerant
// add/clone/destroy/emit boilerplate in every owning type.
type identifierSet struct {
	set *container.Set[*Identifier]
}

func newIdentifierSet() *identifierSet {
	return &identifierSet{set: container.NewSet[*Identifier]()}
}

// add inserts id, reporting wkterror.ErrDuplicateID under keyword if an
// identifier with the same (case-insensitive) name is already present.
func (s *identifierSet) add(keyword string, id *Identifier) *wkterror.Error {
	if s == nil || id == nil {
		return nil
	}
	if !s.set.Add(id) {
		return wkterror.New(keyword, wkterror.ErrDuplicateID)
	}
	return nil
}

// writeAll appends every visible identifier as a field of f, in
// insertion order.
func (s *identifierSet) writeAll(f *serialize.FieldWriter, opts serialize.Options) {
	if s == nil || s.set == nil {
		return
	}
	for _, id := range s.set.Items() {
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
	if s == nil || s.set == nil {
		return nil
	}
	out := newIdentifierSet()
	for _, id := range s.set.Items() {
		out.set.Add(id.Clone())
	}
	return out
}

func (s *identifierSet) destroyAll() {
	if s == nil || s.set == nil {
		return
	}
	for _, id := range s.set.Items() {
		id.Destroy()
	}
}

func (s *identifierSet) items() []*Identifier {
	if s == nil || s.set == nil {
		return nil
	}
	return s.set.Items()
}
