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

// BaseGeodeticCRS carries the BASEGEODCRS["name",DATUM[...],<unit>?]
// object nested inside a ProjectedCRS: the geodetic CRS a projection is
// applied to, named and tied to a datum but without its own coordinate
// system (it inherits the projected CRS's CS for display purposes only;
// the unit here is the angle unit the projection's parameters are
// expressed in).
type BaseGeodeticCRS struct {
	model.Base
	name  string
	datum *datum.GeodeticDatum
	unit  *leaf.Unit
}

var baseGeodeticCRSKeywords = parsekit.Keywords{Primary: "BASEGEODCRS", Legacy: "GEOGCS"}

func NewBaseGeodeticCRS(name string, d *datum.GeodeticDatum) (*BaseGeodeticCRS, *wkterror.Error) {
	if name == "" {
		return nil, wkterror.New(baseGeodeticCRSKeywords.Primary, wkterror.ErrInsufficientTokens)
	}
	if len(name) > MaxCRSNameLength {
		return nil, wkterror.NewWithInt(baseGeodeticCRSKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	if d == nil {
		return nil, wkterror.New(baseGeodeticCRSKeywords.Primary, wkterror.ErrMissingDatum)
	}
	return &BaseGeodeticCRS{Base: model.NewBase(model.TagGeodeticCRS), name: name, datum: d}, nil
}

func (b *BaseGeodeticCRS) Name() string                { return b.name }
func (b *BaseGeodeticCRS) Datum() *datum.GeodeticDatum  { return b.datum }
func (b *BaseGeodeticCRS) SetUnit(u *leaf.Unit)         { b.unit = u }
func (b *BaseGeodeticCRS) Key() string                  { return "basegeodcrs" }

func BaseGeodeticCRSFromTokens(tokens []token.Token, start int) (*BaseGeodeticCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, baseGeodeticCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(baseGeodeticCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var d *datum.GeodeticDatum
	var unit *leaf.Unit
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case strnum.EqualFold(sub.Text, "DATUM"):
			parsed, _, werr := datum.GeodeticDatumFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			d = parsed
		case isUnitKeyword(sub.Text):
			u, _, werr := leaf.UnitFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			unit = u
		}
	}
	b, werr := NewBaseGeodeticCRS(nameTok.Text, d)
	if werr != nil {
		return nil, end, werr
	}
	b.unit = unit
	return b, end, nil
}

func (b *BaseGeodeticCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !b.Visible() {
		return
	}
	buf.WriteKeyword(baseGeodeticCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(b.name)
	dbuf := serialize.NewBuffer(opts)
	b.datum.ToWKT(dbuf, opts)
	f.WriteRaw(dbuf.String())
	if b.unit != nil && b.unit.Visible() {
		ubuf := serialize.NewBuffer(opts)
		b.unit.ToWKT(ubuf, opts)
		f.WriteRaw(ubuf.String())
	}
	buf.Close()
}

func (b *BaseGeodeticCRS) Clone() *BaseGeodeticCRS {
	clone := *b
	clone.datum = b.datum.Clone()
	if b.unit != nil {
		clone.unit = b.unit.Clone()
	}
	return &clone
}

func (b *BaseGeodeticCRS) Destroy() {
	if b == nil {
		return
	}
	b.datum.Destroy()
	b.unit.Destroy()
	b.name = ""
}

// ProjectedCRS carries a PROJCRS["name",BASEGEODCRS[...],
// CONVERSION[...],CS[...],AXIS...,scope?,extents?,id*] object: a planar
// CRS derived from a geodetic CRS by applying a map projection.
type ProjectedCRS struct {
	crsCore
	base       *BaseGeodeticCRS
	conversion *leaf.Conversion
	cs         *leaf.CS
}

var projectedCRSKeywords = parsekit.Keywords{Primary: "PROJCRS", Legacy: "PROJCS"}

func NewProjectedCRS(name string, base *BaseGeodeticCRS, conversion *leaf.Conversion, cs *leaf.CS) (*ProjectedCRS, *wkterror.Error) {
	core, werr := newCRSCore(model.TagProjectedCRS, projectedCRSKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if base == nil {
		return nil, wkterror.New(projectedCRSKeywords.Primary, wkterror.ErrMissingBaseCRS)
	}
	if conversion == nil {
		return nil, wkterror.New(projectedCRSKeywords.Primary, wkterror.ErrMissingConversion)
	}
	if werr = validateCSForCRS(projectedCRSKeywords.Primary, cs); werr != nil {
		return nil, werr
	}
	return &ProjectedCRS{crsCore: core, base: base, conversion: conversion, cs: cs}, nil
}

func (p *ProjectedCRS) Base() *BaseGeodeticCRS       { return p.base }
func (p *ProjectedCRS) Conversion() *leaf.Conversion { return p.conversion }
func (p *ProjectedCRS) CS() *leaf.CS                 { return p.cs }

func ProjectedCRSFromTokens(tokens []token.Token, start int) (*ProjectedCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, projectedCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(projectedCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core crsCore
	var base *BaseGeodeticCRS
	var conv *leaf.Conversion
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case baseGeodeticCRSKeywords.Match1(sub.Text):
			b, _, werr := BaseGeodeticCRSFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			base = b
		case strnum.EqualFold(sub.Text, "CONVERSION"):
			c, _, werr := leaf.ConversionFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			conv = c
		default:
			if handled, werr := core.parseCommonChild(projectedCRSKeywords.Primary, tokens, sub); werr != nil {
				return nil, end, werr
			} else if handled {
				continue
			}
		}
	}
	cs, werr := parseCSAndAxes(projectedCRSKeywords.Primary, tokens, children)
	if werr != nil {
		return nil, end, werr
	}
	p, werr := NewProjectedCRS(nameTok.Text, base, conv, cs)
	if werr != nil {
		return nil, end, werr
	}
	p.scope, p.extents, p.remark, p.ids = core.scope, core.extents, core.remark, core.ids
	return p, end, nil
}

func (p *ProjectedCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !p.Visible() {
		return
	}
	buf.WriteKeyword(projectedCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(p.name)
	bbuf := serialize.NewBuffer(opts)
	p.base.ToWKT(bbuf, opts)
	f.WriteRaw(bbuf.String())
	cbuf := serialize.NewBuffer(opts)
	p.conversion.ToWKT(cbuf, opts)
	f.WriteRaw(cbuf.String())
	csbuf := serialize.NewBuffer(opts)
	p.cs.ToWKT(csbuf, opts)
	f.WriteRaw(csbuf.String())
	p.writeCommon(f, opts)
	buf.Close()
}

func (p *ProjectedCRS) Clone() *ProjectedCRS {
	clone := *p
	clone.base = p.base.Clone()
	clone.conversion = p.conversion.Clone()
	clone.cs = p.cs.Clone()
	clone.scope, clone.extents, clone.remark, clone.ids = p.cloneCommon()
	return &clone
}

func (p *ProjectedCRS) Destroy() {
	if p == nil {
		return
	}
	p.base.Destroy()
	p.conversion.Destroy()
	p.cs.Destroy()
	p.destroyCommon()
}
