package leaf

import (
	"math"
	"testing"

	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func TestNewEllipsoidValidation(t *testing.T) {
	if _, werr := NewEllipsoid("WGS 84", 6378137, 298.257223563); werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if _, werr := NewEllipsoid("WGS 84", 0, 298.257223563); werr == nil {
		t.Error("want error for non-positive semi-major axis")
	}
	if _, werr := NewEllipsoid("WGS 84", 6378137, -1); werr == nil {
		t.Error("want error for negative inverse flattening")
	}
}

func TestEllipsoidIsSphereForZeroInverseFlattening(t *testing.T) {
	e, werr := NewEllipsoid("Sphere", 6371000, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if !e.IsSphere() {
		t.Error("want IsSphere() true for inverse flattening of 0")
	}
	if e.SemiMinorAxis() != e.SemiMajorAxis() {
		t.Errorf("want equal axes for a sphere, got major=%v minor=%v", e.SemiMajorAxis(), e.SemiMinorAxis())
	}
	if e.EccentricitySquared() != 0 {
		t.Errorf("want zero eccentricity for a sphere, got %v", e.EccentricitySquared())
	}
}

func TestEllipsoidDerivedAxesForWGS84(t *testing.T) {
	e, werr := NewEllipsoid("WGS 84", 6378137, 298.257223563)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	wantMinor := 6356752.314245
	if math.Abs(e.SemiMinorAxis()-wantMinor) > 1e-3 {
		t.Errorf("want semi-minor axis near %v, got %v", wantMinor, e.SemiMinorAxis())
	}
	if e.IsSphere() {
		t.Error("want IsSphere() false for a non-zero inverse flattening")
	}
}

func TestEllipsoidFromTokens(t *testing.T) {
	tokens, werr := token.Tokenize([]byte(`ELLIPSOID["WGS 84",6378137,298.257223563]`), true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	e, end, werr := EllipsoidFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if e.Name() != "WGS 84" || e.SemiMajorAxis() != 6378137 {
		t.Errorf("unexpected parsed ellipsoid: name=%q a=%v", e.Name(), e.SemiMajorAxis())
	}
}

func TestEllipsoidFromTokensLegacySpheroidKeyword(t *testing.T) {
	tokens, werr := token.Tokenize([]byte(`SPHEROID["WGS 84",6378137,298.257223563]`), true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	e, _, werr := EllipsoidFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if e.Name() != "WGS 84" {
		t.Errorf("want name WGS 84, got %q", e.Name())
	}
}

func TestEllipsoidToWKTRoundTrip(t *testing.T) {
	e, _ := NewEllipsoid("WGS 84", 6378137, 298.257223563)
	buf := serialize.NewBuffer(0)
	e.ToWKT(buf, 0)
	want := `ELLIPSOID["WGS 84",6378137,298.257223563]`
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestEllipsoidAddIdentifierRejectsDuplicate(t *testing.T) {
	e, _ := NewEllipsoid("WGS 84", 6378137, 298.257223563)
	id1, _ := NewIdentifier("EPSG", "7030")
	id2, _ := NewIdentifier("epsg", "9999")
	if werr := e.AddIdentifier(id1); werr != nil {
		t.Fatalf("unexpected error adding first id: %v", werr)
	}
	if werr := e.AddIdentifier(id2); werr == nil {
		t.Error("want a duplicate (case-insensitive) identifier name to be rejected")
	}
}

func TestEllipsoidCloneIsIndependent(t *testing.T) {
	e, _ := NewEllipsoid("WGS 84", 6378137, 298.257223563)
	clone := e.Clone()
	clone.name = "GRS 80"
	if e.Name() == "GRS 80" {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestNewPrimeMeridianValidatesLongitude(t *testing.T) {
	if _, werr := NewPrimeMeridian("Paris", -181); werr == nil {
		t.Error("want error for a longitude below -180")
	}
	if _, werr := NewPrimeMeridian("Paris", 181); werr == nil {
		t.Error("want error for a longitude above 180")
	}
}

func TestPrimeMeridianFromTokensRoundTrip(t *testing.T) {
	raw := []byte(`PRIMEM["Paris",2.33722917]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	p, end, werr := PrimeMeridianFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if p.Name() != "Paris" || p.Longitude() != 2.33722917 {
		t.Errorf("unexpected parsed prime meridian: name=%q lon=%v", p.Name(), p.Longitude())
	}
	buf := serialize.NewBuffer(0)
	p.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestPrimeMeridianFromTokensWithUnit(t *testing.T) {
	raw := []byte(`PRIMEM["Paris",2.5969213,ANGLEUNIT["grad",0.015707963267949]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	p, _, werr := PrimeMeridianFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	buf := serialize.NewBuffer(0)
	p.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestPrimeMeridianAddIdentifierRejectsDuplicate(t *testing.T) {
	p, _ := NewPrimeMeridian("Paris", 2.33722917)
	id1, _ := NewIdentifier("EPSG", "8903")
	id2, _ := NewIdentifier("epsg", "9999")
	if werr := p.AddIdentifier(id1); werr != nil {
		t.Fatalf("unexpected error adding first id: %v", werr)
	}
	if werr := p.AddIdentifier(id2); werr == nil {
		t.Error("want a duplicate (case-insensitive) identifier name to be rejected")
	}
}

func TestPrimeMeridianCloneIsIndependent(t *testing.T) {
	p, _ := NewPrimeMeridian("Paris", 2.33722917)
	clone := p.Clone()
	clone.name = "Greenwich"
	if p.Name() == "Greenwich" {
		t.Error("mutating the clone should not affect the original")
	}
}
