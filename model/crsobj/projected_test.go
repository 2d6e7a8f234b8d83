package crsobj

import (
	"testing"

	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func newTransverseMercatorConversion(t *testing.T) *leaf.Conversion {
	t.Helper()
	method, werr := leaf.NewMethod("Transverse Mercator")
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	conv, werr := leaf.NewConversion("UTM zone 31N", method)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	degree, _ := leaf.NewUnit(leaf.UnitKindAngle, "degree", 0.0174532925199433)
	metre, _ := leaf.NewUnit(leaf.UnitKindLength, "metre", 1)
	p1, _ := leaf.NewParameter("Latitude of natural origin", 0, degree)
	p2, _ := leaf.NewParameter("Longitude of natural origin", 3, degree)
	p3, _ := leaf.NewParameter("Scale factor at natural origin", 0.9996, nil)
	p4, _ := leaf.NewParameter("False easting", 500000, metre)
	p5, _ := leaf.NewParameter("False northing", 0, metre)
	conv.AddParameter(p1)
	conv.AddParameter(p2)
	conv.AddParameter(p3)
	conv.AddParameter(p4)
	conv.AddParameter(p5)
	return conv
}

func newProjectedCS(t *testing.T) *leaf.CS {
	t.Helper()
	cs, werr := leaf.NewCS(leaf.CSKindCartesian, 2)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	unit, _ := leaf.NewUnit(leaf.UnitKindLength, "metre", 1)
	cs.SetUnit(unit)
	e, _ := leaf.NewAxis("Easting", leaf.DirectionEast)
	n, _ := leaf.NewAxis("Northing", leaf.DirectionNorth)
	cs.AddAxis(e)
	cs.AddAxis(n)
	return cs
}

func TestNewBaseGeodeticCRSRequiresNameAndDatum(t *testing.T) {
	d := newGeodeticDatum(t)
	if _, werr := NewBaseGeodeticCRS("", d); werr == nil {
		t.Error("want error for an empty name")
	}
	if _, werr := NewBaseGeodeticCRS("WGS 84", nil); werr == nil {
		t.Error("want error for a nil datum")
	}
}

func TestNewProjectedCRSRequiresBaseAndConversion(t *testing.T) {
	base, werr := NewBaseGeodeticCRS("WGS 84", newGeodeticDatum(t))
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	conv := newTransverseMercatorConversion(t)
	cs := newProjectedCS(t)
	if _, werr := NewProjectedCRS("WGS 84 / UTM zone 31N", nil, conv, cs); werr == nil {
		t.Error("want error for a nil base CRS")
	}
	if _, werr := NewProjectedCRS("WGS 84 / UTM zone 31N", base, nil, cs); werr == nil {
		t.Error("want error for a nil conversion")
	}
}

func TestNewProjectedCRSRejectsNonCartesianCS(t *testing.T) {
	base, werr := NewBaseGeodeticCRS("WGS 84", newGeodeticDatum(t))
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	conv := newTransverseMercatorConversion(t)
	if _, werr := NewProjectedCRS("WGS 84 / UTM zone 31N", base, conv, newGeographicCS(t)); werr == nil {
		t.Error("want error for an ellipsoidal CS attached to a projected CRS")
	}
}

func TestProjectedCRSFromTokensRoundTrip(t *testing.T) {
	raw := []byte(`PROJCRS["WGS 84 / UTM zone 31N",BASEGEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]]],CONVERSION["UTM zone 31N",METHOD["Transverse Mercator"],PARAMETER["Latitude of natural origin",0,ANGLEUNIT["degree",0.0174532925199433]],PARAMETER["Longitude of natural origin",3,ANGLEUNIT["degree",0.0174532925199433]],PARAMETER["Scale factor at natural origin",0.9996],PARAMETER["False easting",500000,LENGTHUNIT["metre",1]],PARAMETER["False northing",0,LENGTHUNIT["metre",1]]],CS[Cartesian,2],AXIS["Easting",east],AXIS["Northing",north],LENGTHUNIT["metre",1],ID["EPSG","32631"]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	p, end, werr := ProjectedCRSFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if p.Base().Name() != "WGS 84" {
		t.Errorf("want base name %q, got %q", "WGS 84", p.Base().Name())
	}
	if p.Conversion().Name() != "UTM zone 31N" {
		t.Errorf("want conversion name %q, got %q", "UTM zone 31N", p.Conversion().Name())
	}
	buf := serialize.NewBuffer(0)
	p.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestProjectedCRSFromTokensLegacyKeywords(t *testing.T) {
	raw := []byte(`PROJCS["WGS 84 / UTM zone 31N",GEOGCS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]]],CONVERSION["UTM zone 31N",METHOD["Transverse Mercator"],PARAMETER["Latitude of natural origin",0,ANGLEUNIT["degree",0.0174532925199433]],PARAMETER["Longitude of natural origin",3,ANGLEUNIT["degree",0.0174532925199433]],PARAMETER["Scale factor at natural origin",0.9996],PARAMETER["False easting",500000,LENGTHUNIT["metre",1]],PARAMETER["False northing",0,LENGTHUNIT["metre",1]]],CS[Cartesian,2],AXIS["Easting",east],AXIS["Northing",north],LENGTHUNIT["metre",1]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	p, _, werr := ProjectedCRSFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if p.Base().Name() != "WGS 84" {
		t.Errorf("want base name %q, got %q", "WGS 84", p.Base().Name())
	}
}

func TestProjectedCRSCloneIsIndependent(t *testing.T) {
	base, werr := NewBaseGeodeticCRS("WGS 84", newGeodeticDatum(t))
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	conv := newTransverseMercatorConversion(t)
	p, werr := NewProjectedCRS("WGS 84 / UTM zone 31N", base, conv, newProjectedCS(t))
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	clone := p.Clone()
	clone.base.SetVisible(false)
	if !p.Base().Visible() {
		t.Error("mutating the clone's base CRS should not affect the original")
	}
}

func TestBaseGeodeticCRSFromTokensWithUnit(t *testing.T) {
	raw := []byte(`BASEGEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],ANGLEUNIT["degree",0.0174532925199433]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	b, end, werr := BaseGeodeticCRSFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	buf := serialize.NewBuffer(0)
	b.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}
