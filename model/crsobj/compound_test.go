package crsobj

import (
	"testing"

	"github.com/goblimey/go-wktcrs/model/datum"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func newVerticalCRS(t *testing.T) *VerticalCRS {
	t.Helper()
	d, werr := datum.NewVerticalDatum("Newlyn")
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	cs, werr := leaf.NewCS(leaf.CSKindVertical, 1)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	unit, _ := leaf.NewUnit(leaf.UnitKindLength, "metre", 1)
	cs.SetUnit(unit)
	h, _ := leaf.NewAxis("Gravity-related height", leaf.DirectionUp)
	cs.AddAxis(h)
	v, werr := NewVerticalCRS("ODN height", d, cs)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	return v
}

func TestNewCompoundCRSRequiresAtLeastTwoMembers(t *testing.T) {
	g, werr := NewGeodeticCRS("WGS 84", newGeodeticDatum(t), newGeographicCS(t))
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if _, werr := NewCompoundCRS("WGS 84 + height", []Component{g}); werr == nil {
		t.Error("want error for a compound with fewer than 2 members")
	}
}

func TestNewCompoundCRSRejectsDuplicateMemberKeys(t *testing.T) {
	g, _ := NewGeodeticCRS("WGS 84", newGeodeticDatum(t), newGeographicCS(t))
	dup, _ := NewGeodeticCRS("WGS 84", newGeodeticDatum(t), newGeographicCS(t))
	if _, werr := NewCompoundCRS("broken", []Component{g, dup}); werr == nil {
		t.Error("want error for two members with the same natural key")
	}
}

func TestCompoundCRSFromTokensRoundTrip(t *testing.T) {
	horiz := `GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["Latitude",north],AXIS["Longitude",east],ANGLEUNIT["degree",0.0174532925199433]]`
	vert := `VERTCRS["ODN height",VDATUM["Newlyn"],CS[vertical,1],AXIS["Gravity-related height",up],LENGTHUNIT["metre",1]]`
	raw := []byte(`COMPOUNDCRS["WGS 84 + ODN height",` + horiz + `,` + vert + `]`)

	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	c, end, werr := CompoundCRSFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if len(c.Components()) != 2 {
		t.Fatalf("want 2 members, got %d", len(c.Components()))
	}

	buf := serialize.NewBuffer(0)
	c.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestParseCRSDispatchesSingleAndCompound(t *testing.T) {
	tokens, werr := token.Tokenize([]byte(`GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["Latitude",north],AXIS["Longitude",east],ANGLEUNIT["degree",0.0174532925199433]]`), true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	c, end, werr := ParseCRS(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if _, ok := c.(*GeodeticCRS); !ok {
		t.Errorf("want a *GeodeticCRS, got %T", c)
	}
}

func TestParseCRSRejectsUnknownKeyword(t *testing.T) {
	tokens, werr := token.Tokenize([]byte(`BOGUSCRS["x"]`), true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	if _, _, werr := ParseCRS(tokens, 0); werr == nil {
		t.Error("want error for an unrecognized top-level CRS keyword")
	}
}

func TestCompoundCRSCloneIsIndependent(t *testing.T) {
	g, _ := NewGeodeticCRS("WGS 84", newGeodeticDatum(t), newGeographicCS(t))
	v := newVerticalCRS(t)
	c, werr := NewCompoundCRS("WGS 84 + ODN height", []Component{g, v})
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	clone := c.Clone()
	clone.Components()[0].SetVisible(false)
	if !c.Components()[0].Visible() {
		t.Error("mutating the clone's member should not affect the original")
	}
}
