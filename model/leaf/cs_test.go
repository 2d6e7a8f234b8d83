package leaf

import (
	"testing"

	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func TestNewCSValidatesKindAndDimension(t *testing.T) {
	if _, werr := NewCS("bogus", 2); werr == nil {
		t.Error("want error for an unrecognized CS kind")
	}
	if _, werr := NewCS(CSKindEllipsoidal, 0); werr == nil {
		t.Error("want error for a dimension below the minimum")
	}
	if _, werr := NewCS(CSKindEllipsoidal, 4); werr == nil {
		t.Error("want error for a dimension above the maximum")
	}
	cs, werr := NewCS(CSKindEllipsoidal, 2)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if cs.Kind() != CSKindEllipsoidal || cs.Dimension() != 2 {
		t.Errorf("unexpected CS fields: kind=%v dimension=%v", cs.Kind(), cs.Dimension())
	}
}

func TestCSDimensionRangeFixedKinds(t *testing.T) {
	if _, werr := NewCS(CSKindVertical, 2); werr == nil {
		t.Error("want a vertical CS to reject a dimension above 1")
	}
	if _, werr := NewCS(CSKindVertical, 1); werr != nil {
		t.Errorf("want a vertical CS of dimension 1 to be valid, got %v", werr)
	}
}

func TestCSAddAxisEnforcesDimensionCap(t *testing.T) {
	cs, _ := NewCS(CSKindEllipsoidal, 2)
	lat, _ := NewAxis("Latitude", DirectionNorth)
	lon, _ := NewAxis("Longitude", DirectionEast)
	height, _ := NewAxis("Height", DirectionUp)

	if werr := cs.AddAxis(lat); werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if werr := cs.AddAxis(lon); werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if werr := cs.AddAxis(height); werr == nil {
		t.Error("want adding a third axis to a 2-dimensional CS to fail")
	}
	if len(cs.Axes()) != 2 {
		t.Errorf("want 2 axes, got %d", len(cs.Axes()))
	}
}

func TestCSAddAxisRejectsDuplicateKey(t *testing.T) {
	cs, _ := NewCS(CSKindEllipsoidal, 2)
	a1, _ := NewAxis("Latitude", DirectionNorth)
	a2, _ := NewAxis("Latitude", DirectionSouth)
	if werr := cs.AddAxis(a1); werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if werr := cs.AddAxis(a2); werr == nil {
		t.Error("want a second axis with the same name to be rejected")
	}
}

func TestCSFromTokensParsesHeader(t *testing.T) {
	tokens, werr := token.Tokenize([]byte(`CS[ellipsoidal,2]`), true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	cs, end, werr := CSFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if cs.Kind() != CSKindEllipsoidal || cs.Dimension() != 2 {
		t.Errorf("unexpected CS fields: kind=%v dimension=%v", cs.Kind(), cs.Dimension())
	}
}

func TestCSToWKTIncludesAxesAndUnit(t *testing.T) {
	cs, _ := NewCS(CSKindEllipsoidal, 2)
	lat, _ := NewAxis("Latitude", DirectionNorth)
	lon, _ := NewAxis("Longitude", DirectionEast)
	cs.AddAxis(lat)
	cs.AddAxis(lon)
	unit, _ := NewUnit(UnitKindAngle, "degree", 0.0174532925199433)
	cs.SetUnit(unit)

	buf := serialize.NewBuffer(0)
	cs.ToWKT(buf, 0)
	want := `CS[ellipsoidal,2],AXIS["Latitude",north],AXIS["Longitude",east],ANGLEUNIT["degree",0.0174532925199433]`
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestCSCloneIsIndependent(t *testing.T) {
	cs, _ := NewCS(CSKindEllipsoidal, 2)
	lat, _ := NewAxis("Latitude", DirectionNorth)
	cs.AddAxis(lat)

	clone := cs.Clone()
	lon, _ := NewAxis("Longitude", DirectionEast)
	cs.AddAxis(lon)
	if len(clone.Axes()) != 1 {
		t.Errorf("mutating the original's axes should not affect the clone, clone has %d axes", len(clone.Axes()))
	}
}
