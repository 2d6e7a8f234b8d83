package datum

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// GeodeticDatum carries a DATUM["name",ELLIPSOID[...],ANCHOR?,PRIMEM?,
// id*] object: a geodetic reference frame tying an ellipsoid (and
// optionally a non-Greenwich prime meridian) to the earth.
type GeodeticDatum struct {
	datumCore
	ellipsoid     *leaf.Ellipsoid
	primeMeridian *leaf.PrimeMeridian
}

var geodeticDatumKeywords = parsekit.Keywords{Primary: "DATUM", Legacy: "DATUM"}

// NewGeodeticDatum validates and constructs a GeodeticDatum; ellipsoid
// is required.
func NewGeodeticDatum(name string, ellipsoid *leaf.Ellipsoid) (*GeodeticDatum, *wkterror.Error) {
	core, werr := newDatumCore(model.TagGeodeticDatum, geodeticDatumKeywords.Primary, name)
	if werr != nil {
		return nil, werr
	}
	if ellipsoid == nil {
		return nil, wkterror.New(geodeticDatumKeywords.Primary, wkterror.ErrMissingEllipsoid)
	}
	return &GeodeticDatum{datumCore: core, ellipsoid: ellipsoid}, nil
}

func (d *GeodeticDatum) Ellipsoid() *leaf.Ellipsoid             { return d.ellipsoid }
func (d *GeodeticDatum) SetPrimeMeridian(p *leaf.PrimeMeridian)  { d.primeMeridian = p }
func (d *GeodeticDatum) PrimeMeridian() *leaf.PrimeMeridian      { return d.primeMeridian }

func GeodeticDatumFromTokens(tokens []token.Token, start int) (*GeodeticDatum, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, geodeticDatumKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(geodeticDatumKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var core datumCore
	var ellipsoid *leaf.Ellipsoid
	var primem *leaf.PrimeMeridian
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		if ellipsoidKeywordsMatch(sub.Text) {
			e, _, werr := leaf.EllipsoidFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			ellipsoid = e
			continue
		}
		if primeMeridianKeywordsMatch(sub.Text) {
			p, _, werr := leaf.PrimeMeridianFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			primem = p
			continue
		}
		if handled, werr := core.parseCommonChildren(geodeticDatumKeywords.Primary, tokens, sub); werr != nil {
			return nil, end, werr
		} else if handled {
			continue
		}
	}
	d, werr := NewGeodeticDatum(nameTok.Text, ellipsoid)
	if werr != nil {
		return nil, end, werr
	}
	d.anchor = core.anchor
	d.ids = core.ids
	d.primeMeridian = primem
	return d, end, nil
}

func ellipsoidKeywordsMatch(text string) bool {
	return strnum.EqualFold(text, "ELLIPSOID") || strnum.EqualFold(text, "SPHEROID")
}
func primeMeridianKeywordsMatch(text string) bool { return strnum.EqualFold(text, "PRIMEM") }

func (d *GeodeticDatum) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !d.Visible() {
		return
	}
	buf.WriteKeyword(geodeticDatumKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(d.name)
	ebuf := serialize.NewBuffer(opts)
	d.ellipsoid.ToWKT(ebuf, opts)
	f.WriteRaw(ebuf.String())
	if d.anchor != nil && d.anchor.Visible() {
		abuf := serialize.NewBuffer(opts)
		d.anchor.ToWKT(abuf, opts)
		f.WriteRaw(abuf.String())
	}
	if d.primeMeridian != nil && d.primeMeridian.Visible() {
		pbuf := serialize.NewBuffer(opts)
		d.primeMeridian.ToWKT(pbuf, opts)
		f.WriteRaw(pbuf.String())
	}
	d.ids.writeAll(f, opts)
	buf.Close()
}

func (d *GeodeticDatum) Clone() *GeodeticDatum {
	clone := *d
	clone.ellipsoid = d.ellipsoid.Clone()
	clone.anchor, clone.ids = d.cloneCommon()
	if d.primeMeridian != nil {
		clone.primeMeridian = d.primeMeridian.Clone()
	}
	return &clone
}

func (d *GeodeticDatum) Destroy() {
	if d == nil {
		return
	}
	d.ellipsoid.Destroy()
	d.primeMeridian.Destroy()
	d.destroyCommon()
}
