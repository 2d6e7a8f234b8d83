package leaf

import (
	"testing"

	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
)

func TestAreaExtentFromTokensRoundTrip(t *testing.T) {
	raw := []byte(`AREA["World"]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	a, end, werr := AreaExtentFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	buf := serialize.NewBuffer(0)
	a.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestNewBBoxExtentValidatesRanges(t *testing.T) {
	if _, werr := NewBBoxExtent(-91, 0, 0, 0); werr == nil {
		t.Error("want error for a latitude below -90")
	}
	if _, werr := NewBBoxExtent(0, -181, 0, 0); werr == nil {
		t.Error("want error for a longitude below -180")
	}
	if _, werr := NewBBoxExtent(-90, -180, 90, 180); werr != nil {
		t.Errorf("want extreme valid values accepted, got error: %v", werr)
	}
}

func TestBBoxExtentFromTokensRoundTrip(t *testing.T) {
	raw := []byte(`BBOX[-90,-180,90,180]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	b, end, werr := BBoxExtentFromTokens(tokens, 0)
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

func TestBBoxExtentComputeEqual(t *testing.T) {
	a, _ := NewBBoxExtent(-90, -180, 90, 180)
	b, _ := NewBBoxExtent(-90, -180, 90, 180)
	c, _ := NewBBoxExtent(-1, -1, 1, 1)
	if !a.ComputeEqual(b) {
		t.Error("want identical extents to compare equal")
	}
	if a.ComputeEqual(c) {
		t.Error("want different extents to compare unequal")
	}
}

func TestVerticalExtentFromTokensWithUnit(t *testing.T) {
	raw := []byte(`VERTICALEXTENT[-1000,9000,LENGTHUNIT["metre",1]]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	v, end, werr := VerticalExtentFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	if v.unit == nil {
		t.Fatal("want the unit to have been parsed")
	}
	buf := serialize.NewBuffer(0)
	v.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestVerticalExtentFromTokensWithoutUnit(t *testing.T) {
	raw := []byte(`VERTICALEXTENT[-1000,9000]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	v, _, werr := VerticalExtentFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	buf := serialize.NewBuffer(0)
	v.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestVerticalExtentCloneIsIndependent(t *testing.T) {
	unit, _ := NewUnit(UnitKindLength, "metre", 1)
	v := NewVerticalExtent(-1000, 9000)
	v.SetUnit(unit)
	clone := v.Clone()
	clone.unit.SetVisible(false)
	if !v.unit.Visible() {
		t.Error("mutating the clone's unit should not affect the original")
	}
}

func TestNewTimeExtentRejectsOverLongText(t *testing.T) {
	long := make([]byte, MaxTimeExtentLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, werr := NewTimeExtent(string(long), "end"); werr == nil {
		t.Error("want error for an over-long start text")
	}
}

func TestTimeExtentFromTokensRoundTrip(t *testing.T) {
	raw := []byte(`TIMEEXTENT["2020-01-01","2021-01-01"]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	te, end, werr := TimeExtentFromTokens(tokens, 0)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if end != len(tokens) {
		t.Errorf("want end %d, got %d", len(tokens), end)
	}
	buf := serialize.NewBuffer(0)
	te.ToWKT(buf, 0)
	if buf.String() != string(raw) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), raw)
	}
}

func TestExtentsAddSubObjectRejectsDuplicateKind(t *testing.T) {
	raw := []byte(`AREA["World"]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	e := &Extents{}
	handled, werr := e.AddSubObject(tokens, tokens[0])
	if !handled || werr != nil {
		t.Fatalf("want the first AREA accepted, got handled=%v err=%v", handled, werr)
	}
	handled, werr = e.AddSubObject(tokens, tokens[0])
	if !handled || werr == nil {
		t.Error("want a second AREA to be rejected as a duplicate")
	}
}

func TestExtentsAddSubObjectIgnoresUnrelatedKeyword(t *testing.T) {
	raw := []byte(`REMARK["x"]`)
	tokens, werr := token.Tokenize(raw, true)
	if werr != nil {
		t.Fatalf("tokenize: %v", werr)
	}
	e := &Extents{}
	handled, werr := e.AddSubObject(tokens, tokens[0])
	if handled || werr != nil {
		t.Errorf("want an unrelated keyword left unhandled, got handled=%v err=%v", handled, werr)
	}
}

func TestExtentsToWKTWritesInCanonicalOrder(t *testing.T) {
	a, _ := NewAreaExtent("World")
	b, _ := NewBBoxExtent(-90, -180, 90, 180)
	te, _ := NewTimeExtent("2020-01-01", "2021-01-01")
	e := &Extents{Area: a, BBox: b, Time: te}

	buf := serialize.NewBuffer(0)
	buf.WriteKeyword("USAGE")
	buf.Open()
	f := serialize.Fields(buf)
	e.ToWKT(f, 0)
	buf.Close()

	want := `USAGE[AREA["World"],BBOX[-90,-180,90,180],TIMEEXTENT["2020-01-01","2021-01-01"]]`
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestExtentsCloneIsIndependent(t *testing.T) {
	a, _ := NewAreaExtent("World")
	e := &Extents{Area: a}
	clone := e.Clone()
	clone.Area.SetVisible(false)
	if !e.Area.Visible() {
		t.Error("mutating the clone's area extent should not affect the original")
	}
}

func TestExtentsCloneOfNilIsNil(t *testing.T) {
	var e *Extents
	if e.Clone() != nil {
		t.Error("want cloning a nil Extents to return nil")
	}
}
