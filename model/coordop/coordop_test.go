package coordop

import (
	"testing"

	"github.com/goblimey/go-wktcrs/model/crsobj"
	"github.com/goblimey/go-wktcrs/model/datum"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func newGeodeticCRS(t *testing.T, name string) crsobj.Component {
	t.Helper()
	e, werr := leaf.NewEllipsoid("WGS 84", 6378137, 298.257223563)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	d, werr := datum.NewGeodeticDatum("World Geodetic System 1984", e)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	cs, werr := leaf.NewCS(leaf.CSKindEllipsoidal, 2)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	unit, _ := leaf.NewUnit(leaf.UnitKindAngle, "degree", 0.0174532925199433)
	cs.SetUnit(unit)
	lat, _ := leaf.NewAxis("Latitude", leaf.DirectionNorth)
	lon, _ := leaf.NewAxis("Longitude", leaf.DirectionEast)
	cs.AddAxis(lat)
	cs.AddAxis(lon)
	g, werr := crsobj.NewGeodeticCRS(name, d, cs)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	return g
}

func TestNewCoordinateOperationRequiresSourceTargetMethod(t *testing.T) {
	src := newGeodeticCRS(t, "Source")
	dst := newGeodeticCRS(t, "Target")
	method, _ := leaf.NewMethod("Position Vector transformation")

	if _, werr := NewCoordinateOperation("", src, dst, method); werr == nil {
		t.Error("want error for an empty name")
	}
	if _, werr := NewCoordinateOperation("op", nil, dst, method); werr == nil {
		t.Error("want error for a missing source CRS")
	}
	if _, werr := NewCoordinateOperation("op", src, nil, method); werr == nil {
		t.Error("want error for a missing target CRS")
	}
	if _, werr := NewCoordinateOperation("op", src, dst, nil); werr == nil {
		t.Error("want error for a missing method")
	}
	op, werr := NewCoordinateOperation("op", src, dst, method)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if op.Name() != "op" || op.SourceCRS() != src || op.TargetCRS() != dst || op.Method() != method {
		t.Error("want the given fields to be retained as given")
	}
}

func TestCoordinateOperationFromTokensRoundTrip(t *testing.T) {
	src := `GEODCRS["Source",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["Latitude",north],AXIS["Longitude",east],ANGLEUNIT["degree",0.0174532925199433]]`
	dst := `GEODCRS["Target",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["Latitude",north],AXIS["Longitude",east],ANGLEUNIT["degree",0.0174532925199433]]`
	raw := []byte(`COORDINATEOPERATION["op",SOURCECRS[` + src + `],TARGETCRS[` + dst + `],METHOD["Position Vector transformation"]]`)

	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	op, end, werr := CoordinateOperationFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if op.Name() != "op" {
		t.Errorf("want name %q, got %q", "op", op.Name())
	}
	if op.Method().Name() != "Position Vector transformation" {
		t.Errorf("want the parsed method name, got %q", op.Method().Name())
	}

	buf := serialize.NewBuffer(0)
	op.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestCoordinateOperationFromTokensRejectsMissingTargetCRS(t *testing.T) {
	src := `GEODCRS["Source",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["Latitude",north],AXIS["Longitude",east],ANGLEUNIT["degree",0.0174532925199433]]`
	raw := []byte(`COORDINATEOPERATION["op",SOURCECRS[` + src + `],METHOD["Position Vector transformation"]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	if _, _, werr := CoordinateOperationFromTokens(tokens, 0); werr == nil {
		t.Error("want error for an operation with no target CRS")
	}
}

func TestCoordinateOperationAddParameterDedupsByKey(t *testing.T) {
	src := newGeodeticCRS(t, "Source")
	dst := newGeodeticCRS(t, "Target")
	method, _ := leaf.NewMethod("Position Vector transformation")
	op, werr := NewCoordinateOperation("op", src, dst, method)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	p1, _ := leaf.NewParameter("X-axis translation", 1, nil)
	p2, _ := leaf.NewParameter("X-axis translation", 2, nil)
	if !op.AddParameter(p1) {
		t.Fatal("first add should succeed")
	}
	if op.AddParameter(p2) {
		t.Error("want a duplicate (case-insensitive) parameter name to be rejected")
	}
}

func TestCoordinateOperationCloneIsIndependent(t *testing.T) {
	src := newGeodeticCRS(t, "Source")
	dst := newGeodeticCRS(t, "Target")
	method, _ := leaf.NewMethod("Position Vector transformation")
	op, werr := NewCoordinateOperation("op", src, dst, method)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	clone := op.Clone()
	clone.method.SetVisible(false)
	if !op.Method().Visible() {
		t.Error("mutating the clone's method should not affect the original")
	}
}
