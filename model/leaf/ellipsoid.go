package leaf

import (
	"math"

	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// MaxEllipsoidNameLength caps an ellipsoid's name.
const MaxEllipsoidNameLength = 79

// sphereFlatteningSentinel is the inverse-flattening value that denotes
// a sphere (semi-minor axis equal to semi-major), per
// original_source/ogc_ellipsoid.cpp which tests for exactly 0 rather
// than requiring callers to pass +Inf.
const sphereFlatteningSentinel = 0

// Ellipsoid carries an ELLIPSOID["name",<semi-major>,<inverse
// flattening>,<unit>?,<id>*] object. The semi-minor axis and
// eccentricity-squared are derived, not stored independently, matching
// original_source/ogc_ellipsoid.cpp's computed-on-construction approach
// rather than carrying three numbers that could go out of sync.
type Ellipsoid struct {
	model.Base
	name              string
	semiMajorAxis     float64
	inverseFlattening float64
	unit              *Unit
	ids               *identifierSet
}

var ellipsoidKeywords = parsekit.Keywords{Primary: "ELLIPSOID", Legacy: "SPHEROID"}

// NewEllipsoid validates and constructs an Ellipsoid. inverseFlattening
// of 0 denotes a sphere.
func NewEllipsoid(name string, semiMajorAxis, inverseFlattening float64) (*Ellipsoid, *wkterror.Error) {
	if len(name) > MaxEllipsoidNameLength {
		return nil, wkterror.NewWithInt(ellipsoidKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	if semiMajorAxis <= 0 {
		return nil, wkterror.NewWithFloat(ellipsoidKeywords.Primary, wkterror.ErrInvalidSemiMajorAxis, semiMajorAxis)
	}
	if inverseFlattening < 0 {
		return nil, wkterror.NewWithFloat(ellipsoidKeywords.Primary, wkterror.ErrInvalidFlattening, inverseFlattening)
	}
	return &Ellipsoid{
		Base:              model.NewBase(model.TagEllipsoid),
		name:              name,
		semiMajorAxis:     semiMajorAxis,
		inverseFlattening: inverseFlattening,
	}, nil
}

func (e *Ellipsoid) SetUnit(u *Unit) { e.unit = u }

func (e *Ellipsoid) AddIdentifier(id *Identifier) *wkterror.Error {
	if e.ids == nil {
		e.ids = newIdentifierSet()
	}
	return e.ids.add(ellipsoidKeywords.Primary, id)
}

func (e *Ellipsoid) Name() string              { return e.name }
func (e *Ellipsoid) SemiMajorAxis() float64     { return e.semiMajorAxis }
func (e *Ellipsoid) InverseFlattening() float64 { return e.inverseFlattening }
func (e *Ellipsoid) IsSphere() bool             { return e.inverseFlattening == sphereFlatteningSentinel }

// SemiMinorAxis derives b = a * (1 - 1/invF), or a itself for a sphere.
func (e *Ellipsoid) SemiMinorAxis() float64 {
	if e.IsSphere() {
		return e.semiMajorAxis
	}
	return e.semiMajorAxis * (1 - 1/e.inverseFlattening)
}

// EccentricitySquared derives e^2 = 2f - f^2 where f = 1/invF.
func (e *Ellipsoid) EccentricitySquared() float64 {
	if e.IsSphere() {
		return 0
	}
	f := 1 / e.inverseFlattening
	return 2*f - f*f
}

func (e *Ellipsoid) Key() string { return strnum.FoldKey(e.name) }

func EllipsoidFromTokens(tokens []token.Token, start int) (*Ellipsoid, int, *wkterror.Error) {
	legacy, werr := parsekit.CheckKeyword(tokens, start, ellipsoidKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(ellipsoidKeywords.Primary, len(atoms), 3, 3); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	aTok, _ := parsekit.IndexOf(atoms, 1)
	fTok, _ := parsekit.IndexOf(atoms, 2)
	a, ok1 := strnum.ParseFloat(aTok.Text)
	f, ok2 := strnum.ParseFloat(fTok.Text)
	if !ok1 || !ok2 {
		return nil, end, wkterror.New(ellipsoidKeywords.Primary, wkterror.ErrInvalidSyntax)
	}
	el, werr := NewEllipsoid(nameTok.Text, a, f)
	if werr != nil {
		return nil, end, werr
	}
	_ = legacy
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case unitKeywordsAny(sub.Text):
			u, _, werr := UnitFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if el.unit != nil {
				return nil, end, wkterror.New(ellipsoidKeywords.Primary, wkterror.ErrDuplicateUnit)
			}
			el.unit = u
		case idKeywords.Match1(sub.Text):
			id, _, werr := IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if werr = el.AddIdentifier(id); werr != nil {
				return nil, end, werr
			}
		}
	}
	return el, end, nil
}

func (e *Ellipsoid) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !e.Visible() {
		return
	}
	keyword := ellipsoidKeywords.Primary
	if opts.Has(serialize.OldSyntax) {
		keyword = ellipsoidKeywords.Legacy
	}
	buf.WriteKeyword(keyword)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(e.name)
	f.WriteFloat(e.semiMajorAxis)
	f.WriteFloat(e.inverseFlattening)
	if e.unit != nil && e.unit.Visible() && !opts.Has(serialize.OldSyntax) {
		ubuf := serialize.NewBuffer(opts)
		e.unit.ToWKT(ubuf, opts)
		f.WriteRaw(ubuf.String())
	}
	if !opts.Has(serialize.OldSyntax) {
		e.ids.writeAll(f, opts)
	}
	buf.Close()
}

func (e *Ellipsoid) Clone() *Ellipsoid {
	clone := *e
	if e.unit != nil {
		clone.unit = e.unit.Clone()
	}
	clone.ids = e.ids.clone()
	return &clone
}

func (e *Ellipsoid) ComputeEqual(other *Ellipsoid) bool {
	return other != nil && e.name == other.name &&
		math.Abs(e.semiMajorAxis-other.semiMajorAxis) < 1e-9 &&
		math.Abs(e.inverseFlattening-other.inverseFlattening) < 1e-9
}

func (e *Ellipsoid) Destroy() {
	if e == nil {
		return
	}
	e.unit.Destroy()
	e.ids.destroyAll()
	e.name = ""
}

// --- PrimeMeridian --------------------------------------------------------

// MaxPrimeMeridianNameLength caps a prime meridian's name.
const MaxPrimeMeridianNameLength = 79

// PrimeMeridian carries a PRIMEM["name",<longitude>,<unit>?,<id>*]
// object.
type PrimeMeridian struct {
	model.Base
	name      string
	longitude float64
	unit      *Unit
	ids       *identifierSet
}

var primeMeridianKeywords = parsekit.Keywords{Primary: "PRIMEM"}

func NewPrimeMeridian(name string, longitude float64) (*PrimeMeridian, *wkterror.Error) {
	if len(name) > MaxPrimeMeridianNameLength {
		return nil, wkterror.NewWithInt(primeMeridianKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	if longitude < -180 || longitude > 180 {
		return nil, wkterror.NewWithFloat(primeMeridianKeywords.Primary, wkterror.ErrInvalidMeridianValue, longitude)
	}
	return &PrimeMeridian{Base: model.NewBase(model.TagPrimeMeridian), name: name, longitude: longitude}, nil
}

func (p *PrimeMeridian) SetUnit(u *Unit)    { p.unit = u }
func (p *PrimeMeridian) Name() string       { return p.name }
func (p *PrimeMeridian) Longitude() float64 { return p.longitude }
func (p *PrimeMeridian) Key() string        { return strnum.FoldKey(p.name) }

func (p *PrimeMeridian) AddIdentifier(id *Identifier) *wkterror.Error {
	if p.ids == nil {
		p.ids = newIdentifierSet()
	}
	return p.ids.add(primeMeridianKeywords.Primary, id)
}

func PrimeMeridianFromTokens(tokens []token.Token, start int) (*PrimeMeridian, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, primeMeridianKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(primeMeridianKeywords.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	lonTok, _ := parsekit.IndexOf(atoms, 1)
	lon, ok := strnum.ParseFloat(lonTok.Text)
	if !ok {
		return nil, end, wkterror.New(primeMeridianKeywords.Primary, wkterror.ErrInvalidSyntax)
	}
	pm, werr := NewPrimeMeridian(nameTok.Text, lon)
	if werr != nil {
		return nil, end, werr
	}
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case unitKeywordsAny(sub.Text):
			u, _, werr := UnitFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if pm.unit != nil {
				return nil, end, wkterror.New(primeMeridianKeywords.Primary, wkterror.ErrDuplicateUnit)
			}
			pm.unit = u
		case idKeywords.Match1(sub.Text):
			id, _, werr := IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if werr = pm.AddIdentifier(id); werr != nil {
				return nil, end, werr
			}
		}
	}
	return pm, end, nil
}

func (p *PrimeMeridian) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !p.Visible() {
		return
	}
	buf.WriteKeyword(primeMeridianKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(p.name)
	f.WriteFloat(p.longitude)
	if p.unit != nil && p.unit.Visible() {
		ubuf := serialize.NewBuffer(opts)
		p.unit.ToWKT(ubuf, opts)
		f.WriteRaw(ubuf.String())
	}
	p.ids.writeAll(f, opts)
	buf.Close()
}

func (p *PrimeMeridian) Clone() *PrimeMeridian {
	clone := *p
	if p.unit != nil {
		clone.unit = p.unit.Clone()
	}
	clone.ids = p.ids.clone()
	return &clone
}

func (p *PrimeMeridian) Destroy() {
	if p == nil {
		return
	}
	p.unit.Destroy()
	p.ids.destroyAll()
	p.name = ""
}
