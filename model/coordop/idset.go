package coordop

import (
	"strings"

	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// idSet is the coordop family's own copy of the small nil-tolerant
// identifier collection used by leaf, datum and crsobj: each family
// needs the same handful of lines and a single shared type would couple
// all four more tightly than the duplication costs.
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
