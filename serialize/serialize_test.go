package serialize

import "testing"

func TestBufferWriteKeywordOpenClose(t *testing.T) {
	b := NewBuffer(0)
	b.WriteKeyword("UNIT")
	b.Open()
	b.WriteQuoted("metre")
	b.WriteByte(',')
	b.WriteFloat(1)
	b.Close()

	want := `UNIT["metre",1]`
	if b.String() != want {
		t.Errorf("want %q, got %q", want, b.String())
	}
}

func TestBufferOpenCloseUsesParensOption(t *testing.T) {
	b := NewBuffer(Parens)
	b.WriteKeyword("UNIT")
	b.Open()
	b.WriteQuoted("metre")
	b.Close()

	want := `UNIT("metre")`
	if b.String() != want {
		t.Errorf("want %q, got %q", want, b.String())
	}
}

func TestBufferWriteQuotedEscapesEmbeddedQuotes(t *testing.T) {
	b := NewBuffer(0)
	b.WriteQuoted(`a "quoted" word`)
	want := `"a ""quoted"" word"`
	if b.String() != want {
		t.Errorf("want %q, got %q", want, b.String())
	}
}

func TestBufferTruncatesOverLengthOutput(t *testing.T) {
	b := NewBuffer(0)
	big := make([]byte, MaxOutputLength+10)
	for i := range big {
		big[i] = 'x'
	}
	b.WriteString(string(big))
	if !b.Truncated() {
		t.Error("want Truncated() true after exceeding MaxOutputLength")
	}
}

func TestFieldWriterSkipsEmptyFields(t *testing.T) {
	buf := NewBuffer(0)
	f := Fields(buf)
	f.Write("A")
	f.WriteRaw("")
	f.Write("B")

	want := "A,B"
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestFieldWriterMixedFieldKinds(t *testing.T) {
	buf := NewBuffer(0)
	f := Fields(buf)
	f.WriteQuoted("name")
	f.WriteFloat(1.5)
	f.WriteInt(3)

	want := `"name",1.5,3`
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestOptionsExpand(t *testing.T) {
	var testData = []struct {
		opts Options
		want bool
	}{
		{0, false},
		{ExpandSP, true},
		{ExpandTab, true},
		{Parens, false},
		{ExpandSP | Parens, true},
	}
	for _, td := range testData {
		if got := td.opts.Expand(); got != td.want {
			t.Errorf("Options(%d).Expand() = %v, want %v", td.opts, got, td.want)
		}
	}
}

func TestOptionsHas(t *testing.T) {
	opts := ExpandSP | NoIDs
	if !opts.Has(ExpandSP) {
		t.Error("want Has(ExpandSP) true")
	}
	if !opts.Has(NoIDs) {
		t.Error("want Has(NoIDs) true")
	}
	if opts.Has(Parens) {
		t.Error("want Has(Parens) false")
	}
	if !opts.Has(ExpandSP | NoIDs) {
		t.Error("want Has of both bits together true")
	}
}

func TestOptionsOpenClose(t *testing.T) {
	open, close := Options(0).OpenClose()
	if open != '[' || close != ']' {
		t.Errorf("default open/close: want '[' ']', got %q %q", open, close)
	}
	open, close = Parens.OpenClose()
	if open != '(' || close != ')' {
		t.Errorf("Parens open/close: want '(' ')', got %q %q", open, close)
	}
}

func TestIndentUnit(t *testing.T) {
	var testData = []struct {
		opts Options
		want string
	}{
		{0, ""},
		{ExpandSP, "  "},
		{ExpandTab, "\t"},
		{ExpandTab | ExpandSP, "\t"},
	}
	for _, td := range testData {
		if got := IndentUnit(td.opts); got != td.want {
			t.Errorf("IndentUnit(%d) = %q, want %q", td.opts, got, td.want)
		}
	}
}

func TestExpandSimpleObject(t *testing.T) {
	compact := `UNIT["metre",1]`
	want := "UNIT[\n  \"metre\",\n  1\n]"
	got := Expand(compact, "  ", "")
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestExpandIgnoresBracketsInsideQuotes(t *testing.T) {
	compact := `REMARK["has [brackets], and commas"]`
	got := Expand(compact, "  ", "")
	want := "REMARK[\n  \"has [brackets], and commas\"\n]"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestExpandHandlesDoubledQuoteInsideQuotedRegion(t *testing.T) {
	compact := `REMARK["a ""quoted"" word"]`
	got := Expand(compact, "  ", "")
	want := "REMARK[\n  \"a \"\"quoted\"\" word\"\n]"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestExpandWithPrefix(t *testing.T) {
	compact := `UNIT["metre",1]`
	got := Expand(compact, "  ", ">> ")
	want := ">> UNIT[\n>>   \"metre\",\n>>   1\n>> ]"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
