package leaf

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// MaxAreaExtentLength and MaxTimeExtentLength cap the corresponding
// extent text fields.
const (
	MaxAreaExtentLength = 255
	MaxTimeExtentLength = 255
)

// AreaExtent carries the text of an AREA[...] object.
type AreaExtent struct{ textLeaf }

var areaExtentKeywords = parsekit.Keywords{Primary: "AREA"}

func NewAreaExtent(text string) (*AreaExtent, *wkterror.Error) {
	tl, werr := newTextLeaf(model.TagAreaExtent, text, MaxAreaExtentLength)
	if werr != nil {
		return nil, werr
	}
	return &AreaExtent{tl}, nil
}

func AreaExtentFromTokens(tokens []token.Token, start int) (*AreaExtent, int, *wkterror.Error) {
	tl, end, werr := fromTokensTextLeaf(model.TagAreaExtent, areaExtentKeywords, MaxAreaExtentLength, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &AreaExtent{tl}, end, nil
}

func (a *AreaExtent) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !a.Visible() {
		return
	}
	a.toWKT(areaExtentKeywords.Primary, buf)
}

func (a *AreaExtent) Clone() *AreaExtent {
	clone := *a
	return &clone
}

func (a *AreaExtent) Key() string { return "area" }

// --- BBoxExtent -----------------------------------------------------------

// BBoxExtent carries a BBOX[...] object: lower-left and upper-right
// corners in degrees.
type BBoxExtent struct {
	model.Base
	llLat, llLon, urLat, urLon float64
}

var bboxKeywords = parsekit.Keywords{Primary: "BBOX"}

// NewBBoxExtent validates latitude/longitude ranges.
func NewBBoxExtent(llLat, llLon, urLat, urLon float64) (*BBoxExtent, *wkterror.Error) {
	for _, lat := range []float64{llLat, urLat} {
		if lat < -90 || lat > 90 {
			return nil, wkterror.NewWithFloat(bboxKeywords.Primary, wkterror.ErrInvalidLatitude, lat)
		}
	}
	for _, lon := range []float64{llLon, urLon} {
		if lon < -180 || lon > 180 {
			return nil, wkterror.NewWithFloat(bboxKeywords.Primary, wkterror.ErrInvalidLongitude, lon)
		}
	}
	return &BBoxExtent{Base: model.NewBase(model.TagBBoxExtent), llLat: llLat, llLon: llLon, urLat: urLat, urLon: urLon}, nil
}

func BBoxExtentFromTokens(tokens []token.Token, start int) (*BBoxExtent, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, bboxKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(bboxKeywords.Primary, len(atoms), 4, 4); werr != nil {
		return nil, end, werr
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		tok, _ := parsekit.IndexOf(atoms, i)
		f, ok := strnum.ParseFloat(tok.Text)
		if !ok {
			return nil, end, wkterror.NewWithString(bboxKeywords.Primary, wkterror.ErrInvalidSyntax, tok.Text)
		}
		vals[i] = f
	}
	b, werr := NewBBoxExtent(vals[0], vals[1], vals[2], vals[3])
	if werr != nil {
		return nil, end, werr
	}
	return b, end, nil
}

func (b *BBoxExtent) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !b.Visible() {
		return
	}
	buf.WriteKeyword(bboxKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteFloat(b.llLat)
	f.WriteFloat(b.llLon)
	f.WriteFloat(b.urLat)
	f.WriteFloat(b.urLon)
	buf.Close()
}

func (b *BBoxExtent) Clone() *BBoxExtent {
	clone := *b
	return &clone
}

func (b *BBoxExtent) Key() string { return "bbox" }

func (b *BBoxExtent) ComputeEqual(other *BBoxExtent) bool {
	return other != nil && b.llLat == other.llLat && b.llLon == other.llLon &&
		b.urLat == other.urLat && b.urLon == other.urLon
}

// --- VerticalExtent ---------------------------------------------------

// VerticalExtent carries a VERTICALEXTENT[...] object: a min/max height
// and an optional length unit.
type VerticalExtent struct {
	model.Base
	minHt, maxHt float64
	unit         *Unit
}

var verticalExtentKeywords = parsekit.Keywords{Primary: "VERTICALEXTENT"}

func NewVerticalExtent(minHt, maxHt float64) *VerticalExtent {
	return &VerticalExtent{Base: model.NewBase(model.TagVerticalExtent), minHt: minHt, maxHt: maxHt}
}

// SetUnit attaches the optional length unit.
func (v *VerticalExtent) SetUnit(u *Unit) { v.unit = u }

func VerticalExtentFromTokens(tokens []token.Token, start int) (*VerticalExtent, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, verticalExtentKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(verticalExtentKeywords.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	minTok, _ := parsekit.IndexOf(atoms, 0)
	maxTok, _ := parsekit.IndexOf(atoms, 1)
	minV, ok1 := strnum.ParseFloat(minTok.Text)
	maxV, ok2 := strnum.ParseFloat(maxTok.Text)
	if !ok1 || !ok2 {
		return nil, end, wkterror.New(verticalExtentKeywords.Primary, wkterror.ErrInvalidSyntax)
	}
	v := NewVerticalExtent(minV, maxV)
	for _, sub := range parsekit.SubObjects(children) {
		if unitKeywordsAny(sub.Text) {
			u, _, werr := UnitFromTokens(tokens, parsekit.IndexInTokens(tokens, sub))
			if werr != nil {
				return nil, end, werr
			}
			if v.unit != nil {
				return nil, end, wkterror.New(verticalExtentKeywords.Primary, wkterror.ErrDuplicateUnit)
			}
			v.unit = u
		}
	}
	return v, end, nil
}

func (v *VerticalExtent) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !v.Visible() {
		return
	}
	buf.WriteKeyword(verticalExtentKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteFloat(v.minHt)
	f.WriteFloat(v.maxHt)
	if v.unit != nil && v.unit.Visible() {
		ubuf := serialize.NewBuffer(opts)
		v.unit.ToWKT(ubuf, opts)
		f.WriteRaw(ubuf.String())
	}
	buf.Close()
}

func (v *VerticalExtent) Clone() *VerticalExtent {
	clone := *v
	if v.unit != nil {
		clone.unit = v.unit.Clone()
	}
	return &clone
}

func (v *VerticalExtent) Key() string { return "verticalextent" }

// --- TimeExtent ---------------------------------------------------------

// TimeExtent carries a TIMEEXTENT[...] object: a start and end time
// string.
type TimeExtent struct {
	model.Base
	start, end string
}

var timeExtentKeywords = parsekit.Keywords{Primary: "TIMEEXTENT"}

func NewTimeExtent(start, end string) (*TimeExtent, *wkterror.Error) {
	if len(start) > MaxTimeExtentLength || len(end) > MaxTimeExtentLength {
		return nil, wkterror.New(timeExtentKeywords.Primary, wkterror.ErrTimeTooLong)
	}
	return &TimeExtent{Base: model.NewBase(model.TagTimeExtent), start: start, end: end}, nil
}

func TimeExtentFromTokens(tokens []token.Token, start int) (*TimeExtent, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, timeExtentKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(timeExtentKeywords.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	startTok, _ := parsekit.IndexOf(atoms, 0)
	endTok, _ := parsekit.IndexOf(atoms, 1)
	te, werr := NewTimeExtent(startTok.Text, endTok.Text)
	if werr != nil {
		return nil, end, werr
	}
	return te, end, nil
}

func (t *TimeExtent) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !t.Visible() {
		return
	}
	buf.WriteKeyword(timeExtentKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(t.start)
	f.WriteQuoted(t.end)
	buf.Close()
}

func (t *TimeExtent) Clone() *TimeExtent {
	clone := *t
	return &clone
}

func (t *TimeExtent) Key() string { return "timeextent" }

// Extents bundles the at-most-one-of-each-kind extent collection every
// CRS and coordinate-operation variant owns: the set is not a
// container.Set because the four kinds aren't interchangeable values of
// one Go type, so "at most one of each" is enforced directly by four
// optional fields instead.
type Extents struct {
	Area     *AreaExtent
	BBox     *BBoxExtent
	Vertical *VerticalExtent
	Time     *TimeExtent
}

// AddSubObject inspects sub's keyword and, if it names one of the four
// extent kinds, parses and attaches it, reporting a duplicate error if
// that kind is already populated. It reports handled=false for any other
// keyword so the caller's dispatch loop can try other sub-object kinds.
func (e *Extents) AddSubObject(tokens []token.Token, sub token.Token) (handled bool, werr *wkterror.Error) {
	idx := parsekit.IndexInTokens(tokens, sub)
	switch {
	case areaExtentKeywords.Match1(sub.Text):
		if e.Area != nil {
			return true, wkterror.New(areaExtentKeywords.Primary, wkterror.ErrDuplicateAreaExtent)
		}
		a, _, werr := AreaExtentFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		e.Area = a
		return true, nil
	case bboxKeywords.Match1(sub.Text):
		if e.BBox != nil {
			return true, wkterror.New(bboxKeywords.Primary, wkterror.ErrDuplicateBBoxExtent)
		}
		b, _, werr := BBoxExtentFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		e.BBox = b
		return true, nil
	case verticalExtentKeywords.Match1(sub.Text):
		if e.Vertical != nil {
			return true, wkterror.New(verticalExtentKeywords.Primary, wkterror.ErrDuplicateVerticalExtent)
		}
		v, _, werr := VerticalExtentFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		e.Vertical = v
		return true, nil
	case timeExtentKeywords.Match1(sub.Text):
		if e.Time != nil {
			return true, wkterror.New(timeExtentKeywords.Primary, wkterror.ErrDuplicateTimeExtent)
		}
		t, _, werr := TimeExtentFromTokens(tokens, idx)
		if werr != nil {
			return true, werr
		}
		e.Time = t
		return true, nil
	}
	return false, nil
}

// ToWKT appends each populated, visible extent in canonical order
// (area, bbox, vertical, time) as fields of f.
func (e *Extents) ToWKT(f *serialize.FieldWriter, opts serialize.Options) {
	if e == nil {
		return
	}
	if e.Area != nil && e.Area.Visible() {
		b := serialize.NewBuffer(opts)
		e.Area.ToWKT(b, opts)
		f.WriteRaw(b.String())
	}
	if e.BBox != nil && e.BBox.Visible() {
		b := serialize.NewBuffer(opts)
		e.BBox.ToWKT(b, opts)
		f.WriteRaw(b.String())
	}
	if e.Vertical != nil && e.Vertical.Visible() {
		b := serialize.NewBuffer(opts)
		e.Vertical.ToWKT(b, opts)
		f.WriteRaw(b.String())
	}
	if e.Time != nil && e.Time.Visible() {
		b := serialize.NewBuffer(opts)
		e.Time.ToWKT(b, opts)
		f.WriteRaw(b.String())
	}
}

// Clone returns a deep copy of the extent collection.
func (e *Extents) Clone() *Extents {
	if e == nil {
		return nil
	}
	out := &Extents{}
	if e.Area != nil {
		out.Area = e.Area.Clone()
	}
	if e.BBox != nil {
		out.BBox = e.BBox.Clone()
	}
	if e.Vertical != nil {
		out.Vertical = e.Vertical.Clone()
	}
	if e.Time != nil {
		out.Time = e.Time.Clone()
	}
	return out
}
