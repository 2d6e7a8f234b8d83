package crsobj

import (
	"github.com/goblimey/go-wktcrs/container"
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// Component is the interface every single CRS variant satisfies, used
// to hold CompoundCRS's heterogeneous member list without a type
// hierarchy: callers switch on model.Object.Tag to recover the
// concrete type.
type Component interface {
	model.Object
	ToWKT(buf *serialize.Buffer, opts serialize.Options)
	Key() string
}

// MinCompoundMembers is the minimum number of component CRSes a
// CompoundCRS must own: a compound of one member would just be that
// member.
const MinCompoundMembers = 2

// CompoundCRS carries a COMPOUNDCRS["name",<crs>,<crs>,...,scope?,
// extents?,id*] object: two or more single CRSes combined (typically a
// horizontal CRS plus a vertical or temporal one).
type CompoundCRS struct {
	crsCore
	components *container.Set[Component]
}

var compoundCRSKeywords = parsekit.Keywords{Primary: "COMPOUNDCRS", Legacy: "COMPD_CS"}

func NewCompoundCRS(name string, components []Component) (*CompoundCRS, *wkterror.Error) {
	core, werr := newCRSCore(model.TagCompoundCRS, compoundCRSKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if len(components) < MinCompoundMembers {
		return nil, wkterror.NewWithInt(compoundCRSKeywords.Primary, wkterror.ErrInsufficientTokens, len(components))
	}
	set := container.NewSet[Component]()
	for _, c := range components {
		if !set.Add(c) {
			return nil, wkterror.New(compoundCRSKeywords.Primary, wkterror.ErrDuplicateID)
		}
	}
	return &CompoundCRS{crsCore: core, components: set}, nil
}

func (c *CompoundCRS) Components() []Component { return c.components.Items() }

// parseMemberCRS dispatches a direct child sub-object to the
// appropriate single-CRS *FromTokens constructor by its keyword.
func parseMemberCRS(tokens []token.Token, idx int) (Component, *wkterror.Error) {
	text := tokens[idx].Text
	switch {
	case geodeticCRSKeywords.Match1(text):
		c, _, werr := GeodeticCRSFromTokens(tokens, idx)
		return component(c, werr)
	case projectedCRSKeywords.Match1(text):
		c, _, werr := ProjectedCRSFromTokens(tokens, idx)
		return component(c, werr)
	case verticalCRSKeywords.Match1(text):
		c, _, werr := VerticalCRSFromTokens(tokens, idx)
		return component(c, werr)
	case engineeringCRSKeywords.Match1(text):
		c, _, werr := EngineeringCRSFromTokens(tokens, idx)
		return component(c, werr)
	case imageCRSKeywords.Match1(text):
		c, _, werr := ImageCRSFromTokens(tokens, idx)
		return component(c, werr)
	case parametricCRSKeywords.Match1(text):
		c, _, werr := ParametricCRSFromTokens(tokens, idx)
		return component(c, werr)
	case temporalCRSKeywords.Match1(text):
		c, _, werr := TemporalCRSFromTokens(tokens, idx)
		return component(c, werr)
	default:
		return nil, wkterror.NewWithString(compoundCRSKeywords.Primary, wkterror.ErrUnknownKeyword, text)
	}
}

// component adapts a *FromTokens result (concrete *T, error) pair to
// the (Component, error) shape generics can't express directly here
// since each concrete type's nil is not assignable to a nil Component
// without this explicit check.
func component[T Component](v T, werr *wkterror.Error) (Component, *wkterror.Error) {
	if werr != nil {
		return nil, werr
	}
	return v, nil
}

func CompoundCRSFromTokens(tokens []token.Token, start int) (*CompoundCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, compoundCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(compoundCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core crsCore
	var members []Component
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if isCRSKeyword(sub.Text) {
			m, werr := parseMemberCRS(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			members = append(members, m)
			continue
		}
		if handled, werr := core.parseCommonChild(compoundCRSKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	c, werr := NewCompoundCRS(nameTok.Text, members)
	if werr != nil {
		return nil, end, werr
	}
	c.scope, c.extents, c.remark, c.ids = core.scope, core.extents, core.remark, core.ids
	return c, end, nil
}

func isCRSKeyword(text string) bool {
	for _, kws := range []parsekit.Keywords{
		geodeticCRSKeywords, projectedCRSKeywords, verticalCRSKeywords,
		engineeringCRSKeywords, imageCRSKeywords, parametricCRSKeywords, temporalCRSKeywords,
	} {
		if kws.Match1(text) {
			return true
		}
	}
	return false
}

// ParseCRS parses any single CRS or CompoundCRS starting at start,
// dispatching on its keyword. Used by model/coordop to parse the
// SOURCECRS/TARGETCRS/INTERPOLATIONCRS wrapper objects, which may wrap
// any CRS variant.
func ParseCRS(tokens []token.Token, start int) (Component, int, *wkterror.Error) {
	if compoundCRSKeywords.Match1(tokens[start].Text) {
		return CompoundCRSFromTokens(tokens, start)
	}
	if isCRSKeyword(tokens[start].Text) {
		c, werr := parseMemberCRS(tokens, start)
		_, end := parsekit.Span(tokens, start)
		return c, end, werr
	}
	return nil, start, wkterror.NewWithString(compoundCRSKeywords.Primary, wkterror.ErrUnknownKeyword, tokens[start].Text)
}

func (c *CompoundCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !c.Visible() {
		return
	}
	buf.WriteKeyword(compoundCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(c.name)
	for _, m := range c.components.Items() {
		if !m.Visible() {
			continue
		}
		mbuf := serialize.NewBuffer(opts)
		m.ToWKT(mbuf, opts)
		f.WriteRaw(mbuf.String())
	}
	c.writeCommon(f, opts)
	buf.Close()
}

// Clone deep-copies every member by dispatching on its Tag, since
// Component has no Clone method of its own (each concrete type's Clone
// returns its own concrete type, not Component).
func (c *CompoundCRS) Clone() *CompoundCRS {
	clone := *c
	clone.components = container.NewSet[Component]()
	for _, m := range c.components.Items() {
		clone.components.Add(cloneComponent(m))
	}
	clone.scope, clone.extents, clone.remark, clone.ids = c.cloneCommon()
	return &clone
}

func cloneComponent(m Component) Component {
	switch v := m.(type) {
	case *GeodeticCRS:
		return v.Clone()
	case *ProjectedCRS:
		return v.Clone()
	case *VerticalCRS:
		return v.Clone()
	case *EngineeringCRS:
		return v.Clone()
	case *ImageCRS:
		return v.Clone()
	case *ParametricCRS:
		return v.Clone()
	case *TemporalCRS:
		return v.Clone()
	default:
		return m
	}
}

func (c *CompoundCRS) Destroy() {
	if c == nil {
		return
	}
	for _, m := range c.components.Items() {
		destroyComponent(m)
	}
	c.destroyCommon()
}

func destroyComponent(m Component) {
	switch v := m.(type) {
	case *GeodeticCRS:
		v.Destroy()
	case *ProjectedCRS:
		v.Destroy()
	case *VerticalCRS:
		v.Destroy()
	case *EngineeringCRS:
		v.Destroy()
	case *ImageCRS:
		v.Destroy()
	case *ParametricCRS:
		v.Destroy()
	case *TemporalCRS:
		v.Destroy()
	}
}
