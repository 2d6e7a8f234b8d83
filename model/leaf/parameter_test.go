package leaf

import (
	"testing"

	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func TestNewParameterRequiresName(t *testing.T) {
	if _, werr := NewParameter("", 1, nil); werr == nil {
		t.Error("want error for an empty name")
	}
	long := make([]byte, MaxParameterNameLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, werr := NewParameter(string(long), 1, nil); werr == nil {
		t.Error("want error for an over-long name")
	}
}

func TestParameterFromTokensRoundTrip(t *testing.T) {
	raw := []byte(`PARAMETER["X-axis translation",0,LENGTHUNIT["metre",1]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	p, end, werr := ParameterFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if p.Name() != "X-axis translation" || p.Value() != 0 {
		t.Errorf("want name/value parsed, got %q/%v", p.Name(), p.Value())
	}
	buf := serialize.NewBuffer(0)
	p.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestParameterFromTokensWithoutUnit(t *testing.T) {
	raw := []byte(`PARAMETER["Scale factor",0.9996]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	p, _, werr := ParameterFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	buf := serialize.NewBuffer(0)
	p.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestParameterAddIdentifierRejectsDuplicate(t *testing.T) {
	p, werr := NewParameter("X-axis translation", 0, nil)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	id1 := leafIdentifier(t, "EPSG", "8605")
	id2 := leafIdentifier(t, "EPSG", "8606")
	if werr := p.AddIdentifier(id1); werr != nil {
		t.Fatalf("first add should succeed: %v", werr)
	}
	if werr := p.AddIdentifier(id2); werr == nil {
		t.Error("want a duplicate identifier name to be rejected")
	}
}

func TestParameterCloneIsIndependent(t *testing.T) {
	unit, _ := NewUnit(UnitKindLength, "metre", 1)
	p, werr := NewParameter("X-axis translation", 0, unit)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	clone := p.Clone()
	clone.unit.SetVisible(false)
	if !p.Unit().Visible() {
		t.Error("mutating the clone's unit should not affect the original")
	}
}

func TestNewParameterFileValidatesLengths(t *testing.T) {
	longName := make([]byte, MaxParameterFileNameLength+1)
	for i := range longName {
		longName[i] = 'x'
	}
	if _, werr := NewParameterFile(string(longName), "f.gsb"); werr == nil {
		t.Error("want error for an over-long name")
	}
	longFile := make([]byte, MaxParameterFilenameLength+1)
	for i := range longFile {
		longFile[i] = 'x'
	}
	if _, werr := NewParameterFile("n", string(longFile)); werr == nil {
		t.Error("want error for an over-long filename")
	}
}

func TestParameterFileFromTokensRoundTrip(t *testing.T) {
	raw := []byte(`PARAMETERFILE["Latitude and longitude difference file","alaska"]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	pf, end, werr := ParameterFileFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if pf.Filename() != "alaska" {
		t.Errorf("want filename %q, got %q", "alaska", pf.Filename())
	}
	buf := serialize.NewBuffer(0)
	pf.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestParameterFileCloneIsIndependent(t *testing.T) {
	pf, werr := NewParameterFile("n", "f.gsb")
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	id := leafIdentifier(t, "EPSG", "8666")
	if werr := pf.AddIdentifier(id); werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	clone := pf.Clone()
	clone.Destroy()
	if pf.Name() == "" {
		t.Error("destroying the clone should not affect the original")
	}
}

func leafIdentifier(t *testing.T, name, code string) *Identifier {
	t.Helper()
	id, werr := NewIdentifier(name, code)
	if werr != nil {
		t.Fatalf("unexpected error building identifier: %v", werr)
	}
	return id
}
