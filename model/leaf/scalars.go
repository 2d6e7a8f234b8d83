package leaf

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// --- TimeOrigin -----------------------------------------------------------

// MaxTimeOriginLength caps a time origin's text.
const MaxTimeOriginLength = 63

// TimeOrigin carries the text of a TIMEORIGIN[...] object: an ISO-8601
// date or date-time string naming a temporal datum's origin.
type TimeOrigin struct{ textLeaf }

var timeOriginKeywords = parsekit.Keywords{Primary: "TIMEORIGIN"}

func NewTimeOrigin(text string) (*TimeOrigin, *wkterror.Error) {
	tl, werr := newTextLeaf(model.TagTimeOrigin, text, MaxTimeOriginLength)
	if werr != nil {
		return nil, werr
	}
	return &TimeOrigin{tl}, nil
}

func TimeOriginFromTokens(tokens []token.Token, start int) (*TimeOrigin, int, *wkterror.Error) {
	tl, end, werr := fromTokensTextLeaf(model.TagTimeOrigin, timeOriginKeywords, MaxTimeOriginLength, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &TimeOrigin{tl}, end, nil
}

func (t *TimeOrigin) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !t.Visible() {
		return
	}
	t.toWKT(timeOriginKeywords.Primary, buf)
}

func (t *TimeOrigin) Clone() *TimeOrigin {
	clone := *t
	return &clone
}

func (t *TimeOrigin) Key() string { return "timeorigin" }

func (t *TimeOrigin) Destroy() {
	if t == nil {
		return
	}
	t.text = ""
}

// --- Bearing ----------------------------------------------------------

// Bearing carries a BEARING[<number>] object: a clockwise angle from
// true north, in degrees.
type Bearing struct {
	model.Base
	value float64
}

var bearingKeywords = parsekit.Keywords{Primary: "BEARING"}

// NewBearing validates the angle is within [0, 360).
func NewBearing(value float64) (*Bearing, *wkterror.Error) {
	if value < 0 || value >= 360 {
		return nil, wkterror.NewWithFloat(bearingKeywords.Primary, wkterror.ErrInvalidBearingValue, value)
	}
	return &Bearing{Base: model.NewBase(model.TagBearing), value: value}, nil
}

func (b *Bearing) Value() float64 { return b.value }

func BearingFromTokens(tokens []token.Token, start int) (*Bearing, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, bearingKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(bearingKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	tok, _ := parsekit.IndexOf(atoms, 0)
	v, ok := strnum.ParseFloat(tok.Text)
	if !ok {
		return nil, end, wkterror.NewWithString(bearingKeywords.Primary, wkterror.ErrInvalidSyntax, tok.Text)
	}
	b, werr := NewBearing(v)
	if werr != nil {
		return nil, end, werr
	}
	return b, end, nil
}

func (b *Bearing) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !b.Visible() {
		return
	}
	buf.WriteKeyword(bearingKeywords.Primary)
	buf.Open()
	buf.WriteFloat(b.value)
	buf.Close()
}

func (b *Bearing) Clone() *Bearing {
	clone := *b
	return &clone
}

func (b *Bearing) Key() string { return "bearing" }

// --- Meridian -------------------------------------------------------------

// Meridian carries a MERIDIAN[<longitude>,<unit>] object: the longitude
// of a prime meridian relative to Greenwich, with its angle unit.
type Meridian struct {
	model.Base
	longitude float64
	unit      *Unit
}

var meridianKeywords = parsekit.Keywords{Primary: "MERIDIAN"}

func NewMeridian(longitude float64, unit *Unit) (*Meridian, *wkterror.Error) {
	if longitude < -180 || longitude > 180 {
		return nil, wkterror.NewWithFloat(meridianKeywords.Primary, wkterror.ErrInvalidMeridianValue, longitude)
	}
	if unit == nil {
		return nil, wkterror.New(meridianKeywords.Primary, wkterror.ErrMissingUnit)
	}
	return &Meridian{Base: model.NewBase(model.TagMeridian), longitude: longitude, unit: unit}, nil
}

func (m *Meridian) Longitude() float64 { return m.longitude }
func (m *Meridian) Unit() *Unit        { return m.unit }

func MeridianFromTokens(tokens []token.Token, start int) (*Meridian, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, meridianKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(meridianKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	lonTok, _ := parsekit.IndexOf(atoms, 0)
	lon, ok := strnum.ParseFloat(lonTok.Text)
	if !ok {
		return nil, end, wkterror.NewWithString(meridianKeywords.Primary, wkterror.ErrInvalidSyntax, lonTok.Text)
	}
	var unit *Unit
	for _, sub := range parsekit.SubObjects(children) {
		if unitKeywordsAny(sub.Text) {
			idx := parsekit.IndexInTokens(tokens, sub)
			u, _, werr := UnitFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if unit != nil {
				return nil, end, wkterror.New(meridianKeywords.Primary, wkterror.ErrDuplicateUnit)
			}
			unit = u
		}
	}
	m, werr := NewMeridian(lon, unit)
	if werr != nil {
		return nil, end, werr
	}
	return m, end, nil
}

func (m *Meridian) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !m.Visible() {
		return
	}
	buf.WriteKeyword(meridianKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteFloat(m.longitude)
	ubuf := serialize.NewBuffer(opts)
	m.unit.ToWKT(ubuf, opts)
	f.WriteRaw(ubuf.String())
	buf.Close()
}

func (m *Meridian) Clone() *Meridian {
	clone := *m
	clone.unit = m.unit.Clone()
	return &clone
}

func (m *Meridian) Key() string { return "meridian" }

// --- Order ------------------------------------------------------------

// Order carries an ORDER[<integer>] object: the 1-based position of an
// axis within its coordinate system.
type Order struct {
	model.Base
	value int
}

var orderKeywords = parsekit.Keywords{Primary: "ORDER"}

func NewOrder(value int) (*Order, *wkterror.Error) {
	if value < 1 {
		return nil, wkterror.NewWithInt(orderKeywords.Primary, wkterror.ErrInvalidOrderValue, value)
	}
	return &Order{Base: model.NewBase(model.TagOrder), value: value}, nil
}

func (o *Order) Value() int { return o.value }

func OrderFromTokens(tokens []token.Token, start int) (*Order, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, orderKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(orderKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	tok, _ := parsekit.IndexOf(atoms, 0)
	v, ok := strnum.ParseInt(tok.Text)
	if !ok {
		return nil, end, wkterror.NewWithString(orderKeywords.Primary, wkterror.ErrInvalidSyntax, tok.Text)
	}
	o, werr := NewOrder(v)
	if werr != nil {
		return nil, end, werr
	}
	return o, end, nil
}

func (o *Order) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !o.Visible() {
		return
	}
	buf.WriteKeyword(orderKeywords.Primary)
	buf.Open()
	buf.WriteInt(o.value)
	buf.Close()
}

func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}

func (o *Order) Key() string { return "order" }
