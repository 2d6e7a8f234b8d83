package leaf

import (
	"strings"

	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// AxisDirection enumerates the recognized axis directions. The full
// ~30-value vocabulary is taken from original_source/include/libogc.h's
// axis-direction constants, grouped by family: compass, geocentric,
// vertical, ship-relative, rotational, raster row/column, display,
// temporal and an explicit "unspecified".
type AxisDirection string

const (
	DirectionNorth            AxisDirection = "north"
	DirectionNorthNorthEast   AxisDirection = "northNorthEast"
	DirectionNorthEast        AxisDirection = "northEast"
	DirectionEastNorthEast    AxisDirection = "eastNorthEast"
	DirectionEast             AxisDirection = "east"
	DirectionEastSouthEast    AxisDirection = "eastSouthEast"
	DirectionSouthEast        AxisDirection = "southEast"
	DirectionSouthSouthEast   AxisDirection = "southSouthEast"
	DirectionSouth            AxisDirection = "south"
	DirectionSouthSouthWest   AxisDirection = "southSouthWest"
	DirectionSouthWest        AxisDirection = "southWest"
	DirectionWestSouthWest    AxisDirection = "westSouthWest"
	DirectionWest             AxisDirection = "west"
	DirectionWestNorthWest    AxisDirection = "westNorthWest"
	DirectionNorthWest        AxisDirection = "northWest"
	DirectionNorthNorthWest   AxisDirection = "northNorthWest"
	DirectionUp               AxisDirection = "up"
	DirectionDown             AxisDirection = "down"
	DirectionGeocentricX      AxisDirection = "geocentricX"
	DirectionGeocentricY      AxisDirection = "geocentricY"
	DirectionGeocentricZ      AxisDirection = "geocentricZ"
	DirectionColumnPositive   AxisDirection = "columnPositive"
	DirectionColumnNegative   AxisDirection = "columnNegative"
	DirectionRowPositive      AxisDirection = "rowPositive"
	DirectionRowNegative      AxisDirection = "rowNegative"
	DirectionDisplayUp        AxisDirection = "displayUp"
	DirectionDisplayDown      AxisDirection = "displayDown"
	DirectionDisplayLeft      AxisDirection = "displayLeft"
	DirectionDisplayRight     AxisDirection = "displayRight"
	DirectionForward          AxisDirection = "forward"
	DirectionAft              AxisDirection = "aft"
	DirectionPort             AxisDirection = "port"
	DirectionStarboard        AxisDirection = "starboard"
	DirectionClockwise        AxisDirection = "clockwise"
	DirectionCounterClockwise AxisDirection = "counterClockwise"
	DirectionTowards          AxisDirection = "towards"
	DirectionAwayFrom         AxisDirection = "awayFrom"
	DirectionFuture           AxisDirection = "future"
	DirectionPast             AxisDirection = "past"
	DirectionUnspecified      AxisDirection = "unspecified"
)

var validDirections = map[string]AxisDirection{}

func init() {
	for _, d := range []AxisDirection{
		DirectionNorth, DirectionNorthNorthEast, DirectionNorthEast, DirectionEastNorthEast,
		DirectionEast, DirectionEastSouthEast, DirectionSouthEast, DirectionSouthSouthEast,
		DirectionSouth, DirectionSouthSouthWest, DirectionSouthWest, DirectionWestSouthWest,
		DirectionWest, DirectionWestNorthWest, DirectionNorthWest, DirectionNorthNorthWest,
		DirectionUp, DirectionDown,
		DirectionGeocentricX, DirectionGeocentricY, DirectionGeocentricZ,
		DirectionColumnPositive, DirectionColumnNegative, DirectionRowPositive, DirectionRowNegative,
		DirectionDisplayUp, DirectionDisplayDown, DirectionDisplayLeft, DirectionDisplayRight,
		DirectionForward, DirectionAft, DirectionPort, DirectionStarboard,
		DirectionClockwise, DirectionCounterClockwise,
		DirectionTowards, DirectionAwayFrom,
		DirectionFuture, DirectionPast,
		DirectionUnspecified,
	} {
		validDirections[strings.ToLower(string(d))] = d
	}
}

// ParseAxisDirection canonicalizes a token's text to a recognized
// AxisDirection, matching case-insensitively.
func ParseAxisDirection(text string) (AxisDirection, bool) {
	d, ok := validDirections[strings.ToLower(text)]
	return d, ok
}

// MaxAxisNameLength caps an axis's name; an empty
// name is allowed (WKT permits an unnamed axis identified only by its
// abbreviation and direction).
const MaxAxisNameLength = 79

// MaxAxisAbbreviationLength caps the optional parenthesized abbreviation
// folded into an axis's name field (e.g. "Easting (E)").
const MaxAxisAbbreviationLength = 15

// Axis carries an AXIS["name",direction,ORDER[n]?,<unit>?,id*] object.
type Axis struct {
	model.Base
	name      string
	direction AxisDirection
	meridian  *Meridian
	bearing   *Bearing
	order     *Order
	unit      *Unit
	ids       *identifierSet
}

var axisKeywords = parsekit.Keywords{Primary: "AXIS"}

func NewAxis(name string, direction AxisDirection) (*Axis, *wkterror.Error) {
	if len(name) > MaxAxisNameLength {
		return nil, wkterror.NewWithInt(axisKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	if _, ok := validDirections[strings.ToLower(string(direction))]; !ok {
		return nil, wkterror.NewWithString(axisKeywords.Primary, wkterror.ErrInvalidAxisDirection, string(direction))
	}
	return &Axis{Base: model.NewBase(model.TagAxis), name: name, direction: direction}, nil
}

func (a *Axis) SetUnit(u *Unit)         { a.unit = u }
func (a *Axis) SetOrder(o *Order)       { a.order = o }
func (a *Axis) SetMeridian(m *Meridian) { a.meridian = m }
func (a *Axis) SetBearing(b *Bearing)   { a.bearing = b }

func (a *Axis) Name() string             { return a.name }
func (a *Axis) Direction() AxisDirection { return a.direction }
func (a *Axis) Order() *Order            { return a.order }
func (a *Axis) Unit() *Unit              { return a.unit }

func (a *Axis) AddIdentifier(id *Identifier) *wkterror.Error {
	if a.ids == nil {
		a.ids = newIdentifierSet()
	}
	return a.ids.add(axisKeywords.Primary, id)
}

// Key dedups a coordinate system's axes by name (falling back to
// direction when unnamed, since two unnamed axes pointing the same way
// would otherwise collide with every other unnamed axis).
func (a *Axis) Key() string {
	if a.name != "" {
		return strnum.FoldKey(a.name)
	}
	return "unnamed:" + strings.ToLower(string(a.direction))
}

func AxisFromTokens(tokens []token.Token, start int) (*Axis, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, axisKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(axisKeywords.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	dirTok, _ := parsekit.IndexOf(atoms, 1)
	dir, ok := ParseAxisDirection(dirTok.Text)
	if !ok {
		return nil, end, wkterror.NewWithString(axisKeywords.Primary, wkterror.ErrInvalidAxisDirection, dirTok.Text)
	}
	ax, werr := NewAxis(nameTok.Text, dir)
	if werr != nil {
		return nil, end, werr
	}
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case orderKeywords.Match1(sub.Text):
			o, _, werr := OrderFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			ax.order = o
		case unitKeywordsAny(sub.Text):
			u, _, werr := UnitFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if ax.unit != nil {
				return nil, end, wkterror.New(axisKeywords.Primary, wkterror.ErrDuplicateUnit)
			}
			ax.unit = u
		case meridianKeywords.Match1(sub.Text):
			m, _, werr := MeridianFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			ax.meridian = m
		case bearingKeywords.Match1(sub.Text):
			b, _, werr := BearingFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			ax.bearing = b
		case idKeywords.Match1(sub.Text):
			id, _, werr := IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if werr = ax.AddIdentifier(id); werr != nil {
				return nil, end, werr
			}
		}
	}
	return ax, end, nil
}

func (a *Axis) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !a.Visible() {
		return
	}
	buf.WriteKeyword(axisKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(a.name)
	f.Write(string(a.direction))
	if a.order != nil && a.order.Visible() {
		obuf := serialize.NewBuffer(opts)
		a.order.ToWKT(obuf, opts)
		f.WriteRaw(obuf.String())
	}
	if a.meridian != nil && a.meridian.Visible() {
		mbuf := serialize.NewBuffer(opts)
		a.meridian.ToWKT(mbuf, opts)
		f.WriteRaw(mbuf.String())
	}
	if a.bearing != nil && a.bearing.Visible() {
		bbuf := serialize.NewBuffer(opts)
		a.bearing.ToWKT(bbuf, opts)
		f.WriteRaw(bbuf.String())
	}
	if a.unit != nil && a.unit.Visible() {
		ubuf := serialize.NewBuffer(opts)
		a.unit.ToWKT(ubuf, opts)
		f.WriteRaw(ubuf.String())
	}
	a.ids.writeAll(f, opts)
	buf.Close()
}

func (a *Axis) Clone() *Axis {
	clone := *a
	if a.order != nil {
		clone.order = a.order.Clone()
	}
	if a.unit != nil {
		clone.unit = a.unit.Clone()
	}
	if a.meridian != nil {
		clone.meridian = a.meridian.Clone()
	}
	if a.bearing != nil {
		clone.bearing = a.bearing.Clone()
	}
	clone.ids = a.ids.clone()
	return &clone
}

func (a *Axis) Destroy() {
	if a == nil {
		return
	}
	a.unit.Destroy()
	a.ids.destroyAll()
	a.name = ""
}
