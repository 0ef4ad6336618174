package config

import "testing"

func TestSelectMatchesBySuffix(t *testing.T) {
	s, ok := Select("main.go")
	if !ok {
		t.Fatal("expected a match for main.go")
	}
	if s.Name != "go" {
		t.Errorf("got syntax %q, want %q", s.Name, "go")
	}
}

func TestSelectMatchesCFamilyExtensions(t *testing.T) {
	for _, name := range []string{"foo.c", "foo.h", "foo.cpp"} {
		s, ok := Select(name)
		if !ok || s.Name != "c" {
			t.Errorf("Select(%q): got %+v, %v, want the c syntax", name, s, ok)
		}
	}
}

func TestSelectReturnsFalseForUnknownExtension(t *testing.T) {
	if _, ok := Select("notes.txt"); ok {
		t.Error("expected no match for .txt")
	}
}

func TestSelectReturnsFalseForEmptyFilename(t *testing.T) {
	if _, ok := Select(""); ok {
		t.Error("expected no match for an empty filename")
	}
}
