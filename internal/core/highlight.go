package core

import (
	"strings"
	"unicode"

	"github.com/go-lumen/lumen/internal/config"
)

// isSeparator reports whether c is a highlighter word boundary: whitespace,
// NUL, or one of ",.()+-/*=~%<>[];" (spec.md GLOSSARY, "Separator").
func isSeparator(c byte) bool {
	return c == 0 || c == ' ' || c == '\t' || c == '\n' || c == '\r' ||
		strings.ContainsRune(",.()+-/*=~%<>[];", rune(c))
}

// rowHasOpenComment reports whether row ends inside an unterminated
// multi-line comment: its last rendered byte is MLCOMMENT and the row
// doesn't end with the comment terminator itself.
func (e *Editor) rowHasOpenComment(row *Row) bool {
	if len(row.hl) == 0 || len(row.render) == 0 || row.hl[len(row.hl)-1] != HLMLComment {
		return false
	}
	rs := row.render
	return len(rs) < 2 || rs[len(rs)-2] != '*' || rs[len(rs)-1] != '/'
}

// updateSyntax re-tokenizes row.render into row.hl following the
// precedence rules of spec.md §4.3 (single-line comment, multi-line
// comment, string, non-printable, number, keyword, default), then
// cascades to the next row if row's open-comment state changed.
func (e *Editor) updateSyntax(row *Row) {
	row.hl = make([]Highlight, len(row.render))

	if e.syntax == nil {
		return
	}

	keywords := e.syntax.Keywords
	scs := e.syntax.SingleLineCommentStart
	mcs := e.syntax.MultiLineCommentStart
	mce := e.syntax.MultiLineCommentEnd

	r := row.render
	prevSep := true
	inString := byte(0)
	inComment := row.idx > 0 && e.rows[row.idx-1].openComment

	i := 0
	for i < len(r) {
		c := r[i]

		// 1. Single-line comment: rest of row, terminate.
		if prevSep && inString == 0 && !inComment && len(scs) > 0 &&
			i+len(scs) <= len(r) && string(r[i:i+len(scs)]) == scs {
			for j := i; j < len(r); j++ {
				row.hl[j] = HLComment
			}
			break
		}

		// 2. Multi-line comment, already inside.
		if inComment {
			row.hl[i] = HLMLComment
			if len(mce) == 2 && i+1 < len(r) && c == mce[0] && r[i+1] == mce[1] {
				row.hl[i+1] = HLMLComment
				i += 2
				inComment = false
				prevSep = true
				continue
			}
			prevSep = false
			i++
			continue
		}

		// 3. Multi-line comment, entering.
		if len(mcs) == 2 && inString == 0 && i+1 < len(r) && c == mcs[0] && r[i+1] == mcs[1] {
			row.hl[i] = HLMLComment
			row.hl[i+1] = HLMLComment
			i += 2
			inComment = true
			prevSep = false
			continue
		}

		// 4. String.
		if e.syntax.Flags&config.HighlightStrings != 0 {
			if inString != 0 {
				row.hl[i] = HLString
				if c == '\\' && i+1 < len(r) {
					row.hl[i+1] = HLString
					i += 2
					prevSep = false
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HLString
				i++
				prevSep = false
				continue
			}
		}

		// Non-printable bytes get their own token, checked here (ahead of
		// number/keyword) as in the teacher's highlighter; composition is
		// driven entirely off row.hl, SPEC_FULL.md §13.4.
		if (c < 32 && Key(c) != KeyTab) || (c >= 127 && !unicode.IsPrint(rune(c))) {
			row.hl[i] = HLNonprint
			prevSep = false
			i++
			continue
		}

		// 5. Number.
		if e.syntax.Flags&config.HighlightNumbers != 0 {
			if (c >= '0' && c <= '9' && (prevSep || (i > 0 && row.hl[i-1] == HLNumber))) ||
				(c == '.' && i > 0 && row.hl[i-1] == HLNumber) {
				row.hl[i] = HLNumber
				prevSep = false
				i++
				continue
			}
		}

		// 6. Keyword.
		if prevSep {
			matched := false
			for _, kw := range keywords {
				secondary := strings.HasSuffix(kw, "|")
				body := kw
				if secondary {
					body = kw[:len(kw)-1]
				}
				klen := len(body)
				if i+klen <= len(r) && string(r[i:i+klen]) == body &&
					(i+klen == len(r) || isSeparator(r[i+klen])) {
					hlType := HLKeyword1
					if secondary {
						hlType = HLKeyword2
					}
					for j := 0; j < klen; j++ {
						row.hl[i+j] = hlType
					}
					i += klen
					matched = true
					break
				}
			}
			if matched {
				prevSep = false
				continue
			}
		}

		// 7. Default.
		prevSep = isSeparator(c)
		i++
	}

	newOpen := inComment
	changed := row.openComment != newOpen
	row.openComment = newOpen
	if changed && row.idx+1 < len(e.rows) {
		e.updateSyntax(e.rows[row.idx+1])
	}
}

// syntaxToColor maps a highlight token to its ANSI SGR foreground code
// (spec.md §4.3, "Color mapping").
func syntaxToColor(hl Highlight) int {
	switch hl {
	case HLComment, HLMLComment:
		return 36
	case HLKeyword1:
		return 33
	case HLKeyword2:
		return 32
	case HLString:
		return 35
	case HLNumber:
		return 31
	case HLMatch:
		return 34
	default:
		return 37
	}
}
