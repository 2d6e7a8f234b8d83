package datum

import (
	"strings"

	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// EngineeringDatum carries an EDATUM["name",ANCHOR?,id*] object: a
// local reference frame for an engineering CRS.
type EngineeringDatum struct{ datumCore }

var engineeringDatumKeywords = parsekit.Keywords{Primary: "EDATUM", Legacy: "LOCAL_DATUM"}

func NewEngineeringDatum(name string) (*EngineeringDatum, *wkterror.Error) {
	core, werr := newDatumCore(model.TagEngineeringDatum, engineeringDatumKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	return &EngineeringDatum{core}, nil
}

func EngineeringDatumFromTokens(tokens []token.Token, start int) (*EngineeringDatum, int, *wkterror.Error) {
	d, end, werr := simpleDatumFromTokens(engineeringDatumKeywords, model.TagEngineeringDatum, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &EngineeringDatum{*d}, end, nil
}

func (d *EngineeringDatum) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !d.Visible() {
		return
	}
	writeSimpleDatum(engineeringDatumKeywords.Primary, &d.datumCore, buf, opts)
}

func (d *EngineeringDatum) Clone() *EngineeringDatum {
	clone := *d
	clone.anchor, clone.ids = d.cloneCommon()
	return &clone
}

func (d *EngineeringDatum) Destroy() { d.destroyCommon() }

// --- ImageDatum ------------------------------------------------------

// PixelInCell enumerates where within a raster cell an image CRS's
// origin sits.
type PixelInCell string

const (
	PixelInCellCenter PixelInCell = "cellCenter"
	PixelInCellCorner PixelInCell = "cellCorner"
)

// ParsePixelInCell canonicalizes text to a recognized PixelInCell.
func ParsePixelInCell(text string) (PixelInCell, bool) {
	switch {
	case strings.EqualFold(text, string(PixelInCellCenter)):
		return PixelInCellCenter, true
	case strings.EqualFold(text, string(PixelInCellCorner)):
		return PixelInCellCorner, true
	default:
		return "", false
	}
}

// ImageDatum carries an IDATUM["name",PixelInCell,ANCHOR?,id*] object.
type ImageDatum struct {
	datumCore
	pixelInCell PixelInCell
}

var imageDatumKeywords = parsekit.Keywords{Primary: "IDATUM"}

func NewImageDatum(name string, pic PixelInCell) (*ImageDatum, *wkterror.Error) {
	core, werr := newDatumCore(model.TagImageDatum, imageDatumKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if _, ok := ParsePixelInCell(string(pic)); !ok {
		return nil, wkterror.NewWithString(imageDatumKeywords.Primary, wkterror.ErrInvalidPixelType, string(pic))
	}
	return &ImageDatum{datumCore: core, pixelInCell: pic}, nil
}

func (d *ImageDatum) PixelInCell() PixelInCell { return d.pixelInCell }

func ImageDatumFromTokens(tokens []token.Token, start int) (*ImageDatum, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, imageDatumKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(imageDatumKeywords.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	picTok, _ := parsekit.IndexOf(atoms, 1)
	pic, ok := ParsePixelInCell(picTok.Text)
	if !ok {
		return nil, end, wkterror.NewWithString(imageDatumKeywords.Primary, wkterror.ErrInvalidPixelType, picTok.Text)
	}
	d, werr := NewImageDatum(nameTok.Text, pic)
	if werr != nil {
		return nil, end, werr
	}
	for _, sub := range parsekit.SubObjects(children) {
		if handled, werr := d.datumCore.parseCommonChildren(imageDatumKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	return d, end, nil
}

func (d *ImageDatum) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !d.Visible() {
		return
	}
	buf.WriteKeyword(imageDatumKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(d.name)
	f.Write(string(d.pixelInCell))
	d.writeCommon(f, opts)
	buf.Close()
}

func (d *ImageDatum) Clone() *ImageDatum {
	clone := *d
	clone.anchor, clone.ids = d.cloneCommon()
	return &clone
}

func (d *ImageDatum) Destroy() { d.destroyCommon() }

// --- ParametricDatum ---------------------------------------------------

// ParametricDatum carries a PDATUM["name",ANCHOR?,id*] object.
type ParametricDatum struct{ datumCore }

var parametricDatumKeywords = parsekit.Keywords{Primary: "PDATUM"}

func NewParametricDatum(name string) (*ParametricDatum, *wkterror.Error) {
	core, werr := newDatumCore(model.TagParametricDatum, parametricDatumKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	return &ParametricDatum{core}, nil
}

func ParametricDatumFromTokens(tokens []token.Token, start int) (*ParametricDatum, int, *wkterror.Error) {
	d, end, werr := simpleDatumFromTokens(parametricDatumKeywords, model.TagParametricDatum, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &ParametricDatum{*d}, end, nil
}

func (d *ParametricDatum) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !d.Visible() {
		return
	}
	writeSimpleDatum(parametricDatumKeywords.Primary, &d.datumCore, buf, opts)
}

func (d *ParametricDatum) Clone() *ParametricDatum {
	clone := *d
	clone.anchor, clone.ids = d.cloneCommon()
	return &clone
}

func (d *ParametricDatum) Destroy() { d.destroyCommon() }

// --- TemporalDatum ------------------------------------------------------

// TemporalDatum carries a TDATUM["name",TIMEORIGIN[...]?,id*] object.
type TemporalDatum struct {
	datumCore
	origin *leaf.TimeOrigin
}

var temporalDatumKeywords = parsekit.Keywords{Primary: "TDATUM"}

func NewTemporalDatum(name string) (*TemporalDatum, *wkterror.Error) {
	core, werr := newDatumCore(model.TagTemporalDatum, temporalDatumKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	return &TemporalDatum{datumCore: core}, nil
}

func (d *TemporalDatum) SetOrigin(o *leaf.TimeOrigin) { d.origin = o }
func (d *TemporalDatum) Origin() *leaf.TimeOrigin     { return d.origin }

func TemporalDatumFromTokens(tokens []token.Token, start int) (*TemporalDatum, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, temporalDatumKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(temporalDatumKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	d, werr := NewTemporalDatum(nameTok.Text)
	if werr != nil {
		return nil, end, werr
	}
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if strings.EqualFold(sub.Text, "TIMEORIGIN") {
			o, _, werr := leaf.TimeOriginFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			d.origin = o
			continue
		}
		if handled, werr := d.datumCore.parseCommonChildren(temporalDatumKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	return d, end, nil
}

func (d *TemporalDatum) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !d.Visible() {
		return
	}
	buf.WriteKeyword(temporalDatumKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(d.name)
	if d.origin != nil && d.origin.Visible() {
		obuf := serialize.NewBuffer(opts)
		d.origin.ToWKT(obuf, opts)
		f.WriteRaw(obuf.String())
	}
	d.writeCommon(f, opts)
	buf.Close()
}

func (d *TemporalDatum) Clone() *TemporalDatum {
	clone := *d
	clone.anchor, clone.ids = d.cloneCommon()
	if d.origin != nil {
		clone.origin = d.origin.Clone()
	}
	return &clone
}

func (d *TemporalDatum) Destroy() {
	if d == nil {
		return
	}
	d.origin.Destroy()
	d.destroyCommon()
}

// --- VerticalDatum ------------------------------------------------------

// VerticalDatum carries a VDATUM["name",ANCHOR?,id*] object.
type VerticalDatum struct{ datumCore }

var verticalDatumKeywords = parsekit.Keywords{Primary: "VDATUM", Legacy: "VERT_DATUM"}

func NewVerticalDatum(name string) (*VerticalDatum, *wkterror.Error) {
	core, werr := newDatumCore(model.TagVerticalDatum, verticalDatumKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	return &VerticalDatum{core}, nil
}

func VerticalDatumFromTokens(tokens []token.Token, start int) (*VerticalDatum, int, *wkterror.Error) {
	d, end, werr := simpleDatumFromTokens(verticalDatumKeywords, model.TagVerticalDatum, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &VerticalDatum{*d}, end, nil
}

func (d *VerticalDatum) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !d.Visible() {
		return
	}
	writeSimpleDatum(verticalDatumKeywords.Primary, &d.datumCore, buf, opts)
}

func (d *VerticalDatum) Clone() *VerticalDatum {
	clone := *d
	clone.anchor, clone.ids = d.cloneCommon()
	return &clone
}

func (d *VerticalDatum) Destroy() { d.destroyCommon() }

// simpleDatumFromTokens implements the common "name, ANCHOR?, id*"
// shape shared by EngineeringDatum, ParametricDatum and VerticalDatum.
func simpleDatumFromTokens(kws parsekit.Keywords, tag model.Tag, tokens []token.Token, start int) (*datumCore, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, kws)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(kws.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	core, werr := newDatumCore(tag, kws.Primary, nameTok.Text)
	if werr != nil {
		return nil, end, werr
	}
	for _, sub := range parsekit.SubObjects(children) {
		if handled, werr := core.parseCommonChildren(kws.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	return &core, end, nil
}

func writeSimpleDatum(keyword string, core *datumCore, buf *serialize.Buffer, opts serialize.Options) {
	buf.WriteKeyword(keyword)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(core.name)
	core.writeCommon(f, opts)
	buf.Close()
}
