package crsobj

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/model/datum"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// --- VerticalCRS --------------------------------------------------------

// VerticalCRS carries a VERTCRS["name",VDATUM[...],CS[...],AXIS...,
// scope?,extents?,id*] object: a one-dimensional height/depth system.
type VerticalCRS struct {
	crsCore
	datum *datum.VerticalDatum
	cs    *leaf.CS
}

var verticalCRSKeywords = parsekit.Keywords{Primary: "VERTCRS", Legacy: "VERT_CS"}

func NewVerticalCRS(name string, d *datum.VerticalDatum, cs *leaf.CS) (*VerticalCRS, *wkterror.Error) {
	core, werr := newCRSCore(model.TagVerticalCRS, verticalCRSKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if d == nil {
		return nil, wkterror.New(verticalCRSKeywords.Primary, wkterror.ErrMissingDatum)
	}
	if werr = validateCSForCRS(verticalCRSKeywords.Primary, cs); werr != nil {
		return nil, werr
	}
	return &VerticalCRS{crsCore: core, datum: d, cs: cs}, nil
}

func (v *VerticalCRS) Datum() *datum.VerticalDatum { return v.datum }
func (v *VerticalCRS) CS() *leaf.CS                { return v.cs }

func VerticalCRSFromTokens(tokens []token.Token, start int) (*VerticalCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, verticalCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(verticalCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core crsCore
	var d *datum.VerticalDatum
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if strnum.EqualFold(sub.Text, "VDATUM") || strnum.EqualFold(sub.Text, "VERT_DATUM") {
			parsed, _, werr := datum.VerticalDatumFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			d = parsed
			continue
		}
		if handled, werr := core.parseCommonChild(verticalCRSKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	cs, werr := parseCSAndAxes(verticalCRSKeywords.Primary, tokens, children)
	if werr != nil {
		return nil, end, werr
	}
	v, werr := NewVerticalCRS(nameTok.Text, d, cs)
	if werr != nil {
		return nil, end, werr
	}
	v.scope, v.extents, v.remark, v.ids = core.scope, core.extents, core.remark, core.ids
	return v, end, nil
}

func (v *VerticalCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !v.Visible() {
		return
	}
	buf.WriteKeyword(verticalCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(v.name)
	dbuf := serialize.NewBuffer(opts)
	v.datum.ToWKT(dbuf, opts)
	f.WriteRaw(dbuf.String())
	csbuf := serialize.NewBuffer(opts)
	v.cs.ToWKT(csbuf, opts)
	f.WriteRaw(csbuf.String())
	v.writeCommon(f, opts)
	buf.Close()
}

func (v *VerticalCRS) Clone() *VerticalCRS {
	clone := *v
	clone.datum = v.datum.Clone()
	clone.cs = v.cs.Clone()
	clone.scope, clone.extents, clone.remark, clone.ids = v.cloneCommon()
	return &clone
}

func (v *VerticalCRS) Destroy() {
	if v == nil {
		return
	}
	v.datum.Destroy()
	v.cs.Destroy()
	v.destroyCommon()
}

// --- EngineeringCRS -------------------------------------------------

// EngineeringCRS carries an ENGCRS["name",EDATUM[...],CS[...],AXIS...,
// scope?,extents?,id*] object: a local, non-georeferenced system.
type EngineeringCRS struct {
	crsCore
	datum *datum.EngineeringDatum
	cs    *leaf.CS
}

var engineeringCRSKeywords = parsekit.Keywords{Primary: "ENGCRS", Legacy: "LOCAL_CS"}

func NewEngineeringCRS(name string, d *datum.EngineeringDatum, cs *leaf.CS) (*EngineeringCRS, *wkterror.Error) {
	core, werr := newCRSCore(model.TagEngineeringCRS, engineeringCRSKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if d == nil {
		return nil, wkterror.New(engineeringCRSKeywords.Primary, wkterror.ErrMissingDatum)
	}
	if werr = validateCSForCRS(engineeringCRSKeywords.Primary, cs); werr != nil {
		return nil, werr
	}
	return &EngineeringCRS{crsCore: core, datum: d, cs: cs}, nil
}

func (e *EngineeringCRS) Datum() *datum.EngineeringDatum { return e.datum }
func (e *EngineeringCRS) CS() *leaf.CS                   { return e.cs }

func EngineeringCRSFromTokens(tokens []token.Token, start int) (*EngineeringCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, engineeringCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(engineeringCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core crsCore
	var d *datum.EngineeringDatum
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if strnum.EqualFold(sub.Text, "EDATUM") || strnum.EqualFold(sub.Text, "LOCAL_DATUM") {
			parsed, _, werr := datum.EngineeringDatumFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			d = parsed
			continue
		}
		if handled, werr := core.parseCommonChild(engineeringCRSKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	cs, werr := parseCSAndAxes(engineeringCRSKeywords.Primary, tokens, children)
	if werr != nil {
		return nil, end, werr
	}
	e, werr := NewEngineeringCRS(nameTok.Text, d, cs)
	if werr != nil {
		return nil, end, werr
	}
	e.scope, e.extents, e.remark, e.ids = core.scope, core.extents, core.remark, core.ids
	return e, end, nil
}

func (e *EngineeringCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !e.Visible() {
		return
	}
	buf.WriteKeyword(engineeringCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(e.name)
	dbuf := serialize.NewBuffer(opts)
	e.datum.ToWKT(dbuf, opts)
	f.WriteRaw(dbuf.String())
	csbuf := serialize.NewBuffer(opts)
	e.cs.ToWKT(csbuf, opts)
	f.WriteRaw(csbuf.String())
	e.writeCommon(f, opts)
	buf.Close()
}

func (e *EngineeringCRS) Clone() *EngineeringCRS {
	clone := *e
	clone.datum = e.datum.Clone()
	clone.cs = e.cs.Clone()
	clone.scope, clone.extents, clone.remark, clone.ids = e.cloneCommon()
	return &clone
}

func (e *EngineeringCRS) Destroy() {
	if e == nil {
		return
	}
	e.datum.Destroy()
	e.cs.Destroy()
	e.destroyCommon()
}

// --- ImageCRS -------------------------------------------------------

// ImageCRS carries an IMAGECRS["name",IDATUM[...],CS[...],AXIS...,
// scope?,extents?,id*] object: a raster/image pixel coordinate system.
type ImageCRS struct {
	crsCore
	datum *datum.ImageDatum
	cs    *leaf.CS
}

var imageCRSKeywords = parsekit.Keywords{Primary: "IMAGECRS"}

func NewImageCRS(name string, d *datum.ImageDatum, cs *leaf.CS) (*ImageCRS, *wkterror.Error) {
	core, werr := newCRSCore(model.TagImageCRS, imageCRSKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if d == nil {
		return nil, wkterror.New(imageCRSKeywords.Primary, wkterror.ErrMissingDatum)
	}
	if werr = validateCSForCRS(imageCRSKeywords.Primary, cs); werr != nil {
		return nil, werr
	}
	return &ImageCRS{crsCore: core, datum: d, cs: cs}, nil
}

func (i *ImageCRS) Datum() *datum.ImageDatum { return i.datum }
func (i *ImageCRS) CS() *leaf.CS             { return i.cs }

func ImageCRSFromTokens(tokens []token.Token, start int) (*ImageCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, imageCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(imageCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core crsCore
	var d *datum.ImageDatum
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if strnum.EqualFold(sub.Text, "IDATUM") {
			parsed, _, werr := datum.ImageDatumFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			d = parsed
			continue
		}
		if handled, werr := core.parseCommonChild(imageCRSKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	cs, werr := parseCSAndAxes(imageCRSKeywords.Primary, tokens, children)
	if werr != nil {
		return nil, end, werr
	}
	i, werr := NewImageCRS(nameTok.Text, d, cs)
	if werr != nil {
		return nil, end, werr
	}
	i.scope, i.extents, i.remark, i.ids = core.scope, core.extents, core.remark, core.ids
	return i, end, nil
}

func (i *ImageCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !i.Visible() {
		return
	}
	buf.WriteKeyword(imageCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(i.name)
	dbuf := serialize.NewBuffer(opts)
	i.datum.ToWKT(dbuf, opts)
	f.WriteRaw(dbuf.String())
	csbuf := serialize.NewBuffer(opts)
	i.cs.ToWKT(csbuf, opts)
	f.WriteRaw(csbuf.String())
	i.writeCommon(f, opts)
	buf.Close()
}

func (i *ImageCRS) Clone() *ImageCRS {
	clone := *i
	clone.datum = i.datum.Clone()
	clone.cs = i.cs.Clone()
	clone.scope, clone.extents, clone.remark, clone.ids = i.cloneCommon()
	return &clone
}

func (i *ImageCRS) Destroy() {
	if i == nil {
		return
	}
	i.datum.Destroy()
	i.cs.Destroy()
	i.destroyCommon()
}

// --- ParametricCRS --------------------------------------------------

// ParametricCRS carries a PARAMETRICCRS["name",PDATUM[...],CS[...],
// AXIS...,scope?,extents?,id*] object: a CRS over a non-spatial
// parameter (e.g. pressure).
type ParametricCRS struct {
	crsCore
	datum *datum.ParametricDatum
	cs    *leaf.CS
}

var parametricCRSKeywords = parsekit.Keywords{Primary: "PARAMETRICCRS"}

func NewParametricCRS(name string, d *datum.ParametricDatum, cs *leaf.CS) (*ParametricCRS, *wkterror.Error) {
	core, werr := newCRSCore(model.TagParametricCRS, parametricCRSKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if d == nil {
		return nil, wkterror.New(parametricCRSKeywords.Primary, wkterror.ErrMissingDatum)
	}
	if werr = validateCSForCRS(parametricCRSKeywords.Primary, cs); werr != nil {
		return nil, werr
	}
	return &ParametricCRS{crsCore: core, datum: d, cs: cs}, nil
}

func (p *ParametricCRS) Datum() *datum.ParametricDatum { return p.datum }
func (p *ParametricCRS) CS() *leaf.CS                  { return p.cs }

func ParametricCRSFromTokens(tokens []token.Token, start int) (*ParametricCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, parametricCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(parametricCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core crsCore
	var d *datum.ParametricDatum
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if strnum.EqualFold(sub.Text, "PDATUM") {
			parsed, _, werr := datum.ParametricDatumFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			d = parsed
			continue
		}
		if handled, werr := core.parseCommonChild(parametricCRSKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	cs, werr := parseCSAndAxes(parametricCRSKeywords.Primary, tokens, children)
	if werr != nil {
		return nil, end, werr
	}
	p, werr := NewParametricCRS(nameTok.Text, d, cs)
	if werr != nil {
		return nil, end, werr
	}
	p.scope, p.extents, p.remark, p.ids = core.scope, core.extents, core.remark, core.ids
	return p, end, nil
}

func (p *ParametricCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !p.Visible() {
		return
	}
	buf.WriteKeyword(parametricCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(p.name)
	dbuf := serialize.NewBuffer(opts)
	p.datum.ToWKT(dbuf, opts)
	f.WriteRaw(dbuf.String())
	csbuf := serialize.NewBuffer(opts)
	p.cs.ToWKT(csbuf, opts)
	f.WriteRaw(csbuf.String())
	p.writeCommon(f, opts)
	buf.Close()
}

func (p *ParametricCRS) Clone() *ParametricCRS {
	clone := *p
	clone.datum = p.datum.Clone()
	clone.cs = p.cs.Clone()
	clone.scope, clone.extents, clone.remark, clone.ids = p.cloneCommon()
	return &clone
}

func (p *ParametricCRS) Destroy() {
	if p == nil {
		return
	}
	p.datum.Destroy()
	p.cs.Destroy()
	p.destroyCommon()
}

// --- TemporalCRS ------------------------------------------------------

// TemporalCRS carries a TIMECRS["name",TDATUM[...],CS[...],AXIS...,
// scope?,extents?,id*] object: a CRS over time.
type TemporalCRS struct {
	crsCore
	datum *datum.TemporalDatum
	cs    *leaf.CS
}

var temporalCRSKeywords = parsekit.Keywords{Primary: "TIMECRS"}

func NewTemporalCRS(name string, d *datum.TemporalDatum, cs *leaf.CS) (*TemporalCRS, *wkterror.Error) {
	core, werr := newCRSCore(model.TagTemporalCRS, temporalCRSKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if d == nil {
		return nil, wkterror.New(temporalCRSKeywords.Primary, wkterror.ErrMissingDatum)
	}
	if werr = validateCSForCRS(temporalCRSKeywords.Primary, cs); werr != nil {
		return nil, werr
	}
	return &TemporalCRS{crsCore: core, datum: d, cs: cs}, nil
}

func (t *TemporalCRS) Datum() *datum.TemporalDatum { return t.datum }
func (t *TemporalCRS) CS() *leaf.CS                { return t.cs }

func TemporalCRSFromTokens(tokens []token.Token, start int) (*TemporalCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, temporalCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(temporalCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core crsCore
	var d *datum.TemporalDatum
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if strnum.EqualFold(sub.Text, "TDATUM") {
			parsed, _, werr := datum.TemporalDatumFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			d = parsed
			continue
		}
		if handled, werr := core.parseCommonChild(temporalCRSKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	cs, werr := parseCSAndAxes(temporalCRSKeywords.Primary, tokens, children)
	if werr != nil {
		return nil, end, werr
	}
	t, werr := NewTemporalCRS(nameTok.Text, d, cs)
	if werr != nil {
		return nil, end, werr
	}
	t.scope, t.extents, t.remark, t.ids = core.scope, core.extents, core.remark, core.ids
	return t, end, nil
}

func (t *TemporalCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !t.Visible() {
		return
	}
	buf.WriteKeyword(temporalCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(t.name)
	dbuf := serialize.NewBuffer(opts)
	t.datum.ToWKT(dbuf, opts)
	f.WriteRaw(dbuf.String())
	csbuf := serialize.NewBuffer(opts)
	t.cs.ToWKT(csbuf, opts)
	f.WriteRaw(csbuf.String())
	t.writeCommon(f, opts)
	buf.Close()
}

func (t *TemporalCRS) Clone() *TemporalCRS {
	clone := *t
	clone.datum = t.datum.Clone()
	clone.cs = t.cs.Clone()
	clone.scope, clone.extents, clone.remark, clone.ids = t.cloneCommon()
	return &clone
}

func (t *TemporalCRS) Destroy() {
	if t == nil {
		return
	}
	t.datum.Destroy()
	t.cs.Destroy()
	t.destroyCommon()
}
