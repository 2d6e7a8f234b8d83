package coordop

import (
	"testing"

	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/serialize"
)

func coordopIdentifier(t *testing.T, name, code string) *leaf.Identifier {
	t.Helper()
	id, werr := leaf.NewIdentifier(name, code)
	if werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	return id
}

func TestIDSetNilIsSafe(t *testing.T) {
	var s *idSet
	if werr := s.add("ID", coordopIdentifier(t, "EPSG", "4326")); werr != nil {
		t.Errorf("unexpected error adding to a nil set: %v", werr)
	}
	s.destroyAll()
	if s.clone() != nil {
		t.Error("want Clone of a nil set to be nil")
	}

	buf := serialize.NewBuffer(0)
	buf.WriteKeyword("X")
	buf.Open()
	f := serialize.Fields(buf)
	s.writeAll(f, 0)
	buf.Close()
	if buf.String() != "X[]" {
		t.Errorf("want writeAll on a nil set to add nothing, got %q", buf.String())
	}
}

func TestIDSetAddRejectsDuplicateNameCaseInsensitively(t *testing.T) {
	s := newIDSet()
	if werr := s.add("ID", coordopIdentifier(t, "EPSG", "4326")); werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}
	if werr := s.add("ID", coordopIdentifier(t, "epsg", "9999")); werr == nil {
		t.Error("want a duplicate (case-insensitive) identifier name to be rejected")
	}
}

func TestIDSetWriteAllHonorsTopIDOnlyAndNoIDs(t *testing.T) {
	s := newIDSet()
	s.add("ID", coordopIdentifier(t, "EPSG", "4326"))
	s.add("ID", coordopIdentifier(t, "IGNF", "ABC1"))

	buf := serialize.NewBuffer(serialize.TopIDOnly)
	buf.WriteKeyword("X")
	buf.Open()
	f := serialize.Fields(buf)
	s.writeAll(f, serialize.TopIDOnly)
	buf.Close()
	if buf.String() != "X[]" {
		t.Errorf("want TopIDOnly to suppress every identifier, got %q", buf.String())
	}

	buf2 := serialize.NewBuffer(serialize.NoIDs)
	buf2.WriteKeyword("X")
	buf2.Open()
	f2 := serialize.Fields(buf2)
	s.writeAll(f2, serialize.NoIDs)
	buf2.Close()
	if buf2.String() != "X[]" {
		t.Errorf("want NoIDs to suppress every identifier, got %q", buf2.String())
	}
}

func TestIDSetCloneIsIndependent(t *testing.T) {
	s := newIDSet()
	s.add("ID", coordopIdentifier(t, "EPSG", "4326"))
	clone := s.clone()
	clone.items[0].SetVisible(false)
	if !s.items[0].Visible() {
		t.Error("mutating the clone's identifier should not affect the original")
	}
}
