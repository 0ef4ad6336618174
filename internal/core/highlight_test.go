package core

import (
	"testing"

	"github.com/go-lumen/lumen/internal/config"
)

func newTestEditorWithSyntax(name string) *Editor {
	e := newTestEditor()
	for _, s := range config.Database {
		if s.Name == name {
			sc := s
			e.syntax = &sc
			break
		}
	}
	return e
}

func TestUpdateSyntaxHighlightsKeyword(t *testing.T) {
	e := newTestEditorWithSyntax("go")
	e.insertRow(0, []byte("return x"))
	row := e.rows[0]

	for i := 0; i < len("return"); i++ {
		if row.hl[i] != HLKeyword1 {
			t.Errorf("byte %d of %q: got hl %d, want HLKeyword1", i, "return", row.hl[i])
		}
	}
	if row.hl[len("return")] != HLNormal {
		t.Errorf("separator space after keyword should be HLNormal, got %d", row.hl[len("return")])
	}
}

func TestUpdateSyntaxHighlightsNumber(t *testing.T) {
	e := newTestEditorWithSyntax("c")
	e.insertRow(0, []byte("x = 42;"))
	row := e.rows[0]

	if row.hl[4] != HLNumber || row.hl[5] != HLNumber {
		t.Errorf("expected digits of 42 highlighted as HLNumber, got %v", row.hl[4:6])
	}
}

func TestUpdateSyntaxHighlightsString(t *testing.T) {
	e := newTestEditorWithSyntax("c")
	e.insertRow(0, []byte(`x = "hi";`))
	row := e.rows[0]

	for i := 4; i <= 7; i++ {
		if row.hl[i] != HLString {
			t.Errorf("byte %d of string literal: got hl %d, want HLString", i, row.hl[i])
		}
	}
}

func TestOpenCommentCascadesAcrossRows(t *testing.T) {
	e := newTestEditorWithSyntax("c")
	e.insertRow(0, []byte("/* start"))
	e.insertRow(1, []byte("still inside"))
	e.insertRow(2, []byte("end */ code"))

	for i, b := range e.rows[1].render {
		if e.rows[1].hl[i] != HLMLComment {
			t.Errorf("row 1 byte %d (%q): got hl %d, want HLMLComment", i, string(b), e.rows[1].hl[i])
		}
	}

	// "code" after the closing "*/" on row 2 must not be a comment.
	codeStart := len("end */ ")
	for i := codeStart; i < len(e.rows[2].render); i++ {
		if e.rows[2].hl[i] == HLMLComment {
			t.Errorf("row 2 byte %d should not be HLMLComment after comment closes", i)
		}
	}
}

func TestSingleLineCommentConsumesRestOfRow(t *testing.T) {
	e := newTestEditorWithSyntax("go")
	e.insertRow(0, []byte(`x := 1 // trailing note`))
	row := e.rows[0]

	idx := len("x := 1 ")
	for i := idx; i < len(row.render); i++ {
		if row.hl[i] != HLComment {
			t.Errorf("byte %d should be HLComment, got %d", i, row.hl[i])
		}
	}
}

func TestIsSeparator(t *testing.T) {
	cases := map[byte]bool{
		' ': true, '\t': true, 0: true, '(': true, ';': true,
		'a': false, '_': false, '9': false,
	}
	for c, want := range cases {
		if got := isSeparator(c); got != want {
			t.Errorf("isSeparator(%q) = %v, want %v", string(c), got, want)
		}
	}
}
