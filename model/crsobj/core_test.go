package crsobj

import (
	"testing"

	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func TestNewCRSCoreRejectsEmptyOrOverLongName(t *testing.T) {
	if _, werr := newCRSCore(0, "GEODCRS", ""); werr == nil {
		t.Error("want error for an empty name")
	}
	long := make([]byte, MaxCRSNameLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, werr := newCRSCore(0, "GEODCRS", string(long)); werr == nil {
		t.Error("want error for an over-long name")
	}
}

func TestGeodeticCRSFromTokensParsesCommonMetadata(t *testing.T) {
	raw := []byte(`GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["Latitude",north],AXIS["Longitude",east],ANGLEUNIT["degree",0.0174532925199433],SCOPE["Horizontal component of 3D system."],AREA["World"],ID["EPSG","4326"]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	g, end, werr := GeodeticCRSFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if g.Scope() == nil || g.Scope().Text() != "Horizontal component of 3D system." {
		t.Error("want the scope to have been parsed")
	}
	if g.Extents() == nil || g.Extents().Area == nil || g.Extents().Area.Text() != "World" {
		t.Error("want the area extent to have been parsed")
	}

	buf := serialize.NewBuffer(0)
	g.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestGeodeticCRSFromTokensRejectsDuplicateIdentifier(t *testing.T) {
	raw := []byte(`GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["Latitude",north],AXIS["Longitude",east],ANGLEUNIT["degree",0.0174532925199433],ID["EPSG",4326],ID["EPSG",4327]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	if _, _, werr := GeodeticCRSFromTokens(tokens, 0); werr == nil {
		t.Error("want error for two identifiers with the same authority name")
	}
}
