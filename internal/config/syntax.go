// Package config holds the editor's built-in tunables and its syntax
// highlighting database, kept separate from internal/core so the core
// depends on a Syntax value rather than a global package-level table.
package config

import "strings"

// Editor-wide tunables, grounded on the teacher's package-level consts of
// the same names (kiloQuitTimes, kiloQueryLen, tabStop).
const (
	TabStop        = 8
	QuitTimes      = 3
	MaxQueryLen    = 256
	MessageTimeout = 5 // seconds a status message stays visible
)

// Highlight flags controlling which token classes a Syntax opts into.
const (
	HighlightStrings = 1 << 0
	HighlightNumbers = 1 << 1
)

// Syntax defines one language's highlighting rules: which filenames it
// applies to, its comment delimiters, and its keyword list. A keyword
// ending in "|" is a secondary keyword (colored differently, intended for
// type names).
type Syntax struct {
	Name                   string
	FileMatch              []string
	Keywords               []string
	SingleLineCommentStart string
	MultiLineCommentStart  string
	MultiLineCommentEnd    string
	Flags                  int
}

// Database is the built-in syntax highlight table. It carries the
// teacher's three entries (C-family, Go, Python); spec.md's "Built-in
// syntax table" names the C entry as the required minimum.
var Database = []Syntax{
	{
		Name:      "c",
		FileMatch: []string{".c", ".h", ".cpp", ".hpp", ".cc"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return",
			"else", "struct", "union", "typedef", "static", "enum", "class",
			"case",
			// C-family extras kept from the teacher's table
			"auto", "default", "do", "extern", "goto", "register", "sizeof",
			"volatile", "NULL",
			"alignas", "alignof", "and", "and_eq", "asm", "bitand", "bitor",
			"compl", "constexpr", "const_cast", "deltype", "delete",
			"dynamic_cast", "explicit", "export", "false", "friend", "inline",
			"mutable", "namespace", "new", "noexcept", "not", "not_eq",
			"nullptr", "operator", "or", "or_eq", "private", "protected",
			"public", "reinterpret_cast", "static_assert", "static_cast",
			"template", "this", "thread_local", "throw", "true", "try",
			"typeid", "typename", "virtual", "xor", "xor_eq",
			// secondary (type) keywords
			"int|", "long|", "double|", "float|", "char|", "unsigned|",
			"signed|", "void|", "short|", "auto|", "const|", "bool|",
		},
		SingleLineCommentStart: "//",
		MultiLineCommentStart:  "/*",
		MultiLineCommentEnd:    "*/",
		Flags:                  HighlightStrings | HighlightNumbers,
	},
	{
		Name:      "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if",
			"import", "interface", "map", "package", "range", "return",
			"select", "struct", "switch", "type", "var",
			"append", "cap", "close", "copy", "delete", "len", "make",
			"new", "panic", "print", "println", "recover",
			"bool|", "byte|", "complex64|", "complex128|", "error|",
			"float32|", "float64|", "int|", "int8|", "int16|", "int32|",
			"int64|", "rune|", "string|", "uint|", "uint8|", "uint16|",
			"uint32|", "uint64|", "uintptr|", "any|",
			"true|", "false|", "nil|", "iota|",
		},
		SingleLineCommentStart: "//",
		MultiLineCommentStart:  "/*",
		MultiLineCommentEnd:    "*/",
		Flags:                  HighlightStrings | HighlightNumbers,
	},
	{
		Name:      "python",
		FileMatch: []string{".py"},
		Keywords: []string{
			"and", "as", "assert", "async", "await", "break", "class",
			"continue", "def", "del", "elif", "else", "except", "finally",
			"for", "from", "global", "if", "import", "in", "is", "lambda",
			"nonlocal", "not", "or", "pass", "raise", "return", "try",
			"while", "with", "yield",
			"print", "len", "input", "open", "super", "self",
			"isinstance", "issubclass", "hasattr", "getattr", "setattr",
			"True|", "False|", "None|",
			"int|", "float|", "str|", "bool|", "list|", "dict|", "set|",
			"tuple|", "bytes|", "type|", "object|", "range|",
		},
		SingleLineCommentStart: "#",
		Flags:                  HighlightStrings | HighlightNumbers,
	},
}

// Select returns the Syntax whose FileMatch patterns match filename, and
// true, or the zero value and false if none match. A pattern beginning
// with "." matches only a literal trailing suffix; any other pattern
// matches as a substring anywhere in filename.
func Select(filename string) (Syntax, bool) {
	for _, s := range Database {
		for _, pattern := range s.FileMatch {
			if strings.HasPrefix(pattern, ".") {
				if strings.HasSuffix(filename, pattern) {
					return s, true
				}
			} else if strings.Contains(filename, pattern) {
				return s, true
			}
		}
	}
	return Syntax{}, false
}
