package leaf

import (
	"testing"

	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func TestNewIdentifierRequiresNameAndCode(t *testing.T) {
	if _, werr := NewIdentifier("", "4326"); werr == nil {
		t.Error("want error for empty name")
	}
	if _, werr := NewIdentifier("EPSG", ""); werr == nil {
		t.Error("want error for empty code")
	}
	id, werr := NewIdentifier("EPSG", "4326")
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if id.Name() != "EPSG" || id.Code() != "4326" {
		t.Errorf("want name=EPSG code=4326, got name=%q code=%q", id.Name(), id.Code())
	}
}

func TestIdentifierFromTokensBasic(t *testing.T) {
	tokens, werr := token.Tokenize([]byte(`ID["EPSG",4326]`), true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	id, end, werr := IdentifierFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if id.Name() != "EPSG" || id.Code() != "4326" {
		t.Errorf("want name=EPSG code=4326, got name=%q code=%q", id.Name(), id.Code())
	}
}

func TestIdentifierFromTokensWithVersion(t *testing.T) {
	tokens, werr := token.Tokenize([]byte(`ID["EPSG",4326,"8.9"]`), true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	id, _, werr := IdentifierFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if id.Version() != "8.9" {
		t.Errorf("want version %q, got %q", "8.9", id.Version())
	}
}

func TestIdentifierFromTokensLegacyAuthorityKeyword(t *testing.T) {
	tokens, werr := token.Tokenize([]byte(`AUTHORITY["EPSG",4326]`), true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	id, _, werr := IdentifierFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if id.Name() != "EPSG" || id.Code() != "4326" {
		t.Errorf("want name=EPSG code=4326, got name=%q code=%q", id.Name(), id.Code())
	}
}

func TestIdentifierToWKTRoundTrip(t *testing.T) {
	id, _ := NewIdentifier("EPSG", "4326")
	buf := serialize.NewBuffer(0)
	id.ToWKT(buf, 0)
	want := `ID["EPSG","4326"]`
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestIdentifierToWKTOldSyntaxEmitsBareCode(t *testing.T) {
	id, _ := NewIdentifier("EPSG", "4326")
	buf := serialize.NewBuffer(serialize.OldSyntax)
	id.ToWKT(buf, serialize.OldSyntax)
	want := `AUTHORITY["EPSG",4326]`
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestIdentifierKeyIsCaseInsensitiveName(t *testing.T) {
	id, _ := NewIdentifier("EPSG", "4326")
	if id.Key() != "epsg" {
		t.Errorf("want folded key %q, got %q", "epsg", id.Key())
	}
}

func TestIdentifierCloneIsIndependent(t *testing.T) {
	id, _ := NewIdentifier("EPSG", "4326")
	clone := id.Clone()
	clone.name = "OGC"
	if id.Name() == "OGC" {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestIdentifierComputeEqual(t *testing.T) {
	a, _ := NewIdentifier("EPSG", "4326")
	b, _ := NewIdentifier("EPSG", "4326")
	c, _ := NewIdentifier("EPSG", "3857")
	if !a.ComputeEqual(b) {
		t.Error("want equal identifiers with the same name/code to compare equal")
	}
	if a.ComputeEqual(c) {
		t.Error("want identifiers with different codes to compare unequal")
	}
	if a.ComputeEqual(nil) {
		t.Error("want comparison against nil to be false")
	}
}
