package leaf

import (
	"strings"

	"github.com/goblimey/go-wktcrs/container"
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// CSKind enumerates the recognized coordinate system types.
type CSKind string

const (
	CSKindAffine           CSKind = "affine"
	CSKindCartesian        CSKind = "Cartesian"
	CSKindCylindrical      CSKind = "cylindrical"
	CSKindEllipsoidal      CSKind = "ellipsoidal"
	CSKindLinear           CSKind = "linear"
	CSKindParametric       CSKind = "parametric"
	CSKindPolar            CSKind = "polar"
	CSKindSpherical        CSKind = "spherical"
	CSKindVertical         CSKind = "vertical"
	CSKindOrdinal          CSKind = "ordinal"
	CSKindTemporalCount    CSKind = "TemporalCount"
	CSKindTemporalMeasure  CSKind = "TemporalMeasure"
	CSKindTemporalDateTime CSKind = "TemporalDateTime"
)

var validCSKinds = map[string]CSKind{}

func init() {
	for _, k := range []CSKind{
		CSKindAffine, CSKindCartesian, CSKindCylindrical, CSKindEllipsoidal,
		CSKindLinear, CSKindParametric, CSKindPolar, CSKindSpherical,
		CSKindVertical, CSKindOrdinal, CSKindTemporalCount, CSKindTemporalMeasure,
		CSKindTemporalDateTime,
	} {
		validCSKinds[strings.ToLower(string(k))] = k
	}
}

// ParseCSKind canonicalizes text to a recognized CSKind.
func ParseCSKind(text string) (CSKind, bool) {
	k, ok := validCSKinds[strings.ToLower(text)]
	return k, ok
}

// MinCSAxisCount and MaxCSAxisCount bound a coordinate system's
// dimension: 1 for a vertical/temporal/parametric line,
// up to 3 for a 3-D Cartesian/spherical/ellipsoidal system.
const (
	MinCSAxisCount = 1
	MaxCSAxisCount = 3
)

// CS carries a CS[type,dimension],<AXIS...>,<unit>? object: a
// coordinate system's type, dimensionality, owned ordered axes and an
// optional system-wide default unit.
type CS struct {
	model.Base
	kind      CSKind
	dimension int
	axes      *container.Set[*Axis]
	unit      *Unit
	ids       *identifierSet
}

var csKeywords = parsekit.Keywords{Primary: "CS"}

// NewCS validates the kind/dimension pair: ellipsoidal, Cartesian,
// spherical, affine, cylindrical, polar, linear and ordinal CSes allow
// 1 to MaxCSAxisCount dimensions; every other kind is fixed at 1.
func NewCS(kind CSKind, dimension int) (*CS, *wkterror.Error) {
	if _, ok := validCSKinds[strings.ToLower(string(kind))]; !ok {
		return nil, wkterror.NewWithString(csKeywords.Primary, wkterror.ErrInvalidCSType, string(kind))
	}
	min, max := csDimensionRange(kind)
	if dimension < min || dimension > max {
		return nil, wkterror.NewWithInt(csKeywords.Primary, wkterror.ErrInvalidDimension, dimension)
	}
	return &CS{
		Base:      model.NewBase(model.TagCS),
		kind:      kind,
		dimension: dimension,
		axes:      container.NewSet[*Axis](),
	}, nil
}

func csDimensionRange(kind CSKind) (min, max int) {
	switch kind {
	case CSKindEllipsoidal, CSKindCartesian, CSKindSpherical, CSKindAffine,
		CSKindCylindrical, CSKindPolar, CSKindLinear, CSKindOrdinal:
		return 1, MaxCSAxisCount
	default:
		return 1, 1
	}
}

func (c *CS) Kind() CSKind     { return c.kind }
func (c *CS) Dimension() int   { return c.dimension }
func (c *CS) SetUnit(u *Unit)  { c.unit = u }
func (c *CS) Axes() []*Axis    { return c.axes.Items() }

// AddAxis appends an axis, enforcing "at most dimension
// axes, each used once" invariant.
func (c *CS) AddAxis(a *Axis) *wkterror.Error {
	if c.axes.Len() >= c.dimension {
		return wkterror.New(csKeywords.Primary, wkterror.ErrTooManyAxes)
	}
	if !c.axes.Add(a) {
		return wkterror.New(csKeywords.Primary, wkterror.ErrAxisAlreadyUsed)
	}
	return nil
}

func (c *CS) AddIdentifier(id *Identifier) *wkterror.Error {
	if c.ids == nil {
		c.ids = newIdentifierSet()
	}
	return c.ids.add(csKeywords.Primary, id)
}

func (c *CS) Key() string { return "cs" }

// CSFromTokens parses the CS[type,dimension] header and any identifiers
// nested inside it. AXIS entries, which in canonical WKT are further
// direct children of the CS's owning object rather than of CS[...]
// itself, are not read here: callers (model/crsobj) parse them and
// attach each one with AddAxis.
func CSFromTokens(tokens []token.Token, start int) (*CS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, csKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(csKeywords.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	kindTok, _ := parsekit.IndexOf(atoms, 0)
	dimTok, _ := parsekit.IndexOf(atoms, 1)
	kind, ok := ParseCSKind(kindTok.Text)
	if !ok {
		return nil, end, wkterror.NewWithString(csKeywords.Primary, wkterror.ErrInvalidCSType, kindTok.Text)
	}
	dim, ok := strnum.ParseInt(dimTok.Text)
	if !ok {
		return nil, end, wkterror.New(csKeywords.Primary, wkterror.ErrInvalidDimension)
	}
	cs, werr := NewCS(kind, dim)
	if werr != nil {
		return nil, end, werr
	}
	for _, sub := range parsekit.SubObjects(children) {
		if idKeywords.Match1(sub.Text) {
			idx := parsekit.IndexInTokens(tokens, sub)
			id, _, werr := IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if werr = cs.AddIdentifier(id); werr != nil {
				return nil, end, werr
			}
		}
	}
	return cs, end, nil
}

func (c *CS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !c.Visible() {
		return
	}
	buf.WriteKeyword(csKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.Write(string(c.kind))
	f.WriteInt(c.dimension)
	c.ids.writeAll(f, opts)
	buf.Close()
	for _, a := range c.axes.Items() {
		if !a.Visible() {
			continue
		}
		abuf := serialize.NewBuffer(opts)
		a.ToWKT(abuf, opts)
		buf.WriteString(",")
		buf.WriteString(abuf.String())
	}
	if c.unit != nil && c.unit.Visible() {
		ubuf := serialize.NewBuffer(opts)
		c.unit.ToWKT(ubuf, opts)
		buf.WriteString(",")
		buf.WriteString(ubuf.String())
	}
}

func (c *CS) Clone() *CS {
	clone := *c
	clone.axes = container.CloneSet[*Axis](c.axes)
	if c.unit != nil {
		clone.unit = c.unit.Clone()
	}
	clone.ids = c.ids.clone()
	return &clone
}

func (c *CS) Destroy() {
	if c == nil {
		return
	}
	for _, a := range c.axes.Items() {
		a.Destroy()
	}
	c.unit.Destroy()
	c.ids.destroyAll()
}
