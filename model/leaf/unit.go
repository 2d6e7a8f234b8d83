package leaf

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// UnitKind distinguishes the six WKT unit flavors: each
// names a different physical quantity and so uses a different keyword,
// but they otherwise share identical fields and parsing logic.
type UnitKind int

const (
	UnitKindUnknown UnitKind = iota
	UnitKindLength
	UnitKindAngle
	UnitKindScale
	UnitKindTime
	UnitKindParametric
	UnitKindGeneric
)

var unitKindKeywords = map[UnitKind]parsekit.Keywords{
	UnitKindLength:     {Primary: "LENGTHUNIT", Alternates: []string{"UNIT"}},
	UnitKindAngle:      {Primary: "ANGLEUNIT", Alternates: []string{"UNIT"}},
	UnitKindScale:      {Primary: "SCALEUNIT", Alternates: []string{"UNIT"}},
	UnitKindTime:       {Primary: "TIMEUNIT", Alternates: []string{"UNIT"}},
	UnitKindParametric: {Primary: "PARAMETRICUNIT", Alternates: []string{"UNIT"}},
	UnitKindGeneric:    {Primary: "UNIT"},
}

var unitKindNames = map[UnitKind]string{
	UnitKindLength:     "lengthunit",
	UnitKindAngle:      "angleunit",
	UnitKindScale:      "scaleunit",
	UnitKindTime:       "timeunit",
	UnitKindParametric: "parametricunit",
	UnitKindGeneric:    "unit",
}

// MaxUnitNameLength caps a unit's name.
const MaxUnitNameLength = 79

// Unit carries a LENGTHUNIT/ANGLEUNIT/SCALEUNIT/TIMEUNIT/PARAMETRICUNIT/
// UNIT[...] object: a name, a conversion factor to the kind's SI base
// unit, and an optional identifier.
type Unit struct {
	model.Base
	kind   UnitKind
	name   string
	factor float64
	id     *Identifier
}

// unitAnyKeywords recognizes any of the six unit spellings, used when a
// parent's sub-object dispatch needs to decide "is this a unit of some
// kind" before it knows (or cares) which kind.
var unitAnyKeywords = []string{
	"LENGTHUNIT", "ANGLEUNIT", "SCALEUNIT", "TIMEUNIT", "PARAMETRICUNIT", "UNIT",
}

// unitKeywordsAny reports whether text names any recognized unit keyword.
func unitKeywordsAny(text string) bool {
	for _, kw := range unitAnyKeywords {
		if strnum.EqualFold(text, kw) {
			return true
		}
	}
	return false
}

// NewUnit validates and constructs a Unit of the given kind.
func NewUnit(kind UnitKind, name string, factor float64) (*Unit, *wkterror.Error) {
	kws := unitKindKeywords[kind]
	if len(name) > MaxUnitNameLength {
		return nil, wkterror.NewWithInt(kws.Primary, wkterror.ErrNameTooLong, len(name))
	}
	if factor <= 0 {
		return nil, wkterror.NewWithFloat(kws.Primary, wkterror.ErrInvalidUnitFactor, factor)
	}
	return &Unit{Base: model.NewBase(model.TagUnit), kind: kind, name: name, factor: factor}, nil
}

// SetIdentifier attaches the optional identifier child.
func (u *Unit) SetIdentifier(id *Identifier) { u.id = id }

// Kind, Name, Factor return the unit's scalar fields.
func (u *Unit) Kind() UnitKind   { return u.kind }
func (u *Unit) Name() string     { return u.name }
func (u *Unit) Factor() float64  { return u.factor }

// Key implements container.Keyed: units dedup by case-insensitive name
// within whatever container holds them.
func (u *Unit) Key() string { return strnum.FoldKey(u.name) }

// UnitFromTokens parses a unit object of any of the six kinds starting
// at tokens[start], inferring the kind from the keyword actually used.
func UnitFromTokens(tokens []token.Token, start int) (*Unit, int, *wkterror.Error) {
	if start < 0 || start >= len(tokens) {
		return nil, start, wkterror.New("unit", wkterror.ErrIndexOutOfRange)
	}
	kind, ok := unitKindFromKeyword(tokens[start].Text)
	if !ok {
		return nil, start, wkterror.NewWithString("unit", wkterror.ErrUnknownKeyword, tokens[start].Text)
	}
	kws := unitKindKeywords[kind]
	_, werr := parsekit.CheckKeyword(tokens, start, kws)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(kws.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	factorTok, _ := parsekit.IndexOf(atoms, 1)
	factor, ok := strnum.ParseFloat(factorTok.Text)
	if !ok {
		return nil, end, wkterror.NewWithString(kws.Primary, wkterror.ErrInvalidSyntax, factorTok.Text)
	}
	u, werr := NewUnit(kind, nameTok.Text, factor)
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
			if u.id != nil {
				return nil, end, wkterror.New(kws.Primary, wkterror.ErrDuplicateID)
			}
			u.id = id
		}
	}
	return u, end, nil
}

func unitKindFromKeyword(text string) (UnitKind, bool) {
	for kind, kws := range unitKindKeywords {
		if kind == UnitKindGeneric {
			continue // checked last: every other kind also accepts UNIT as an alternate
		}
		if strnum.EqualFold(text, kws.Primary) {
			return kind, true
		}
	}
	if strnum.EqualFold(text, "UNIT") {
		return UnitKindGeneric, true
	}
	return UnitKindUnknown, false
}

// ToWKT appends this unit's WKT representation, using the keyword for
// its own kind (not UNIT) unless OldSyntax requests the WKT1 layout,
// which always uses the bare UNIT keyword.
func (u *Unit) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !u.Visible() {
		return
	}
	keyword := unitKindKeywords[u.kind].Primary
	if opts.Has(serialize.OldSyntax) {
		keyword = "UNIT"
	}
	buf.WriteKeyword(keyword)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(u.name)
	f.WriteFloat(u.factor)
	if u.id != nil && u.id.Visible() && !opts.Has(serialize.OldSyntax) {
		idbuf := serialize.NewBuffer(opts)
		u.id.ToWKT(idbuf, opts)
		f.WriteRaw(idbuf.String())
	}
	buf.Close()
}

func (u *Unit) Clone() *Unit {
	clone := *u
	if u.id != nil {
		clone.id = u.id.Clone()
	}
	return &clone
}

func (u *Unit) ComputeEqual(other *Unit) bool {
	return other != nil && u.kind == other.kind && u.name == other.name && u.factor == other.factor
}

func (u *Unit) StructuralEqual(other *Unit) bool {
	if !u.ComputeEqual(other) || u.Visible() != other.Visible() {
		return false
	}
	return true
}

func (u *Unit) Destroy() {
	if u == nil {
		return
	}
	u.id.Destroy()
	u.name = ""
}
