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

// GeodeticCRS carries a GEODCRS["name",DATUM[...],CS[...],AXIS...,
// SCOPE?,extents?,id*] object: a geographic or geocentric reference
// system built on a geodetic datum.
type GeodeticCRS struct {
	crsCore
	datum *datum.GeodeticDatum
	cs    *leaf.CS
}

var geodeticCRSKeywords = parsekit.Keywords{Primary: "GEODCRS", Legacy: "GEOGCS", Alternates: []string{"GEOGCRS"}}

// NewGeodeticCRS validates and constructs a GeodeticCRS; datum and cs
// are both required.
func NewGeodeticCRS(name string, d *datum.GeodeticDatum, cs *leaf.CS) (*GeodeticCRS, *wkterror.Error) {
	core, werr := newCRSCore(model.TagGeodeticCRS, geodeticCRSKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if d == nil {
		return nil, wkterror.New(geodeticCRSKeywords.Primary, wkterror.ErrMissingDatum)
	}
	if werr = validateCSForCRS(geodeticCRSKeywords.Primary, cs); werr != nil {
		return nil, werr
	}
	return &GeodeticCRS{crsCore: core, datum: d, cs: cs}, nil
}

func (g *GeodeticCRS) Datum() *datum.GeodeticDatum { return g.datum }
func (g *GeodeticCRS) CS() *leaf.CS                { return g.cs }

func GeodeticCRSFromTokens(tokens []token.Token, start int) (*GeodeticCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, geodeticCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(geodeticCRSKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core crsCore
	var d *datum.GeodeticDatum
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if strnum.EqualFold(sub.Text, "DATUM") {
			parsed, _, werr := datum.GeodeticDatumFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			d = parsed
			continue
		}
		if handled, werr := core.parseCommonChild(geodeticCRSKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	cs, werr := parseCSAndAxes(geodeticCRSKeywords.Primary, tokens, children)
	if werr != nil {
		return nil, end, werr
	}
	g, werr := NewGeodeticCRS(nameTok.Text, d, cs)
	if werr != nil {
		return nil, end, werr
	}
	g.scope, g.extents, g.remark, g.ids = core.scope, core.extents, core.remark, core.ids
	return g, end, nil
}

func (g *GeodeticCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !g.Visible() {
		return
	}
	buf.WriteKeyword(geodeticCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(g.name)
	dbuf := serialize.NewBuffer(opts)
	g.datum.ToWKT(dbuf, opts)
	f.WriteRaw(dbuf.String())
	csbuf := serialize.NewBuffer(opts)
	g.cs.ToWKT(csbuf, opts)
	f.WriteRaw(csbuf.String())
	g.writeCommon(f, opts)
	buf.Close()
}

func (g *GeodeticCRS) Clone() *GeodeticCRS {
	clone := *g
	clone.datum = g.datum.Clone()
	clone.cs = g.cs.Clone()
	clone.scope, clone.extents, clone.remark, clone.ids = g.cloneCommon()
	return &clone
}

func (g *GeodeticCRS) Destroy() {
	if g == nil {
		return
	}
	g.datum.Destroy()
	g.cs.Destroy()
	g.destroyCommon()
}
