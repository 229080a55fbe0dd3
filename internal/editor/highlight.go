package editor

import "strings"

// HLType classifies one rendered byte for coloring.
type HLType byte

const (
	HLNormal HLType = iota
	HLComment
	HLMLComment
	HLKeyword1
	HLKeyword2
	HLString
	HLNumber
	HLMatch
)

// color maps a highlight token to its ANSI SGR foreground code.
func (t HLType) color() int {
	switch t {
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

// Keyword is one entry of a Syntax's keyword list. Secondary keywords
// (conventionally type names) are displayed in a second color.
type Keyword struct {
	Word      string
	Secondary bool
}

// Syntax describes how to highlight and identify one filetype.
type Syntax struct {
	Name                  string
	Patterns              []string
	HighlightNumbers      bool
	HighlightStrings      bool
	SingleLineComment     string
	MultilineCommentStart string
	MultilineCommentEnd   string
	Keywords              []Keyword
}

// HLDB is the built-in syntax table.
var HLDB = []Syntax{
	{
		Name:                  "c",
		Patterns:              []string{".c", ".h", ".cpp", ".hpp"},
		HighlightNumbers:      true,
		HighlightStrings:      true,
		SingleLineComment:     "//",
		MultilineCommentStart: "/*",
		MultilineCommentEnd:   "*/",
		Keywords: []Keyword{
			{Word: "switch"}, {Word: "if"}, {Word: "while"}, {Word: "for"},
			{Word: "break"}, {Word: "continue"}, {Word: "return"}, {Word: "else"},
			{Word: "struct"}, {Word: "union"}, {Word: "typedef"}, {Word: "static"},
			{Word: "enum"}, {Word: "class"}, {Word: "case"},
			{Word: "int", Secondary: true}, {Word: "long", Secondary: true},
			{Word: "double", Secondary: true}, {Word: "float", Secondary: true},
			{Word: "char", Secondary: true}, {Word: "unsigned", Secondary: true},
			{Word: "signed", Secondary: true}, {Word: "void", Secondary: true},
		},
	},
	{
		Name:                  "go",
		Patterns:              []string{".go"},
		HighlightNumbers:      true,
		HighlightStrings:      true,
		SingleLineComment:     "//",
		MultilineCommentStart: "/*",
		MultilineCommentEnd:   "*/",
		Keywords: []Keyword{
			{Word: "break"}, {Word: "case"}, {Word: "chan"}, {Word: "const"},
			{Word: "continue"}, {Word: "default"}, {Word: "defer"}, {Word: "else"},
			{Word: "fallthrough"}, {Word: "for"}, {Word: "go"}, {Word: "goto"},
			{Word: "if"}, {Word: "import"}, {Word: "map"}, {Word: "package"},
			{Word: "range"}, {Word: "return"}, {Word: "select"}, {Word: "struct"},
			{Word: "switch"}, {Word: "type"}, {Word: "var"},
			{Word: "interface", Secondary: true}, {Word: "func", Secondary: true},
		},
	},
}

const separators = ",.()+-/*=~%<>[];"

// isSeparator reports whether b is whitespace, NUL, or one of the
// punctuation separators recognized by the highlighter.
func isSeparator(b byte) bool {
	if b == 0 || b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f' {
		return true
	}
	return strings.IndexByte(separators, b) >= 0
}

// SelectSyntax chooses the active Syntax by matching filename against each
// entry's patterns. A pattern starting with '.' must match as a literal
// trailing suffix; any other pattern matches as a substring anywhere in the
// filename. The first matching entry activates and every row is
// re-highlighted under it.
func (e *Editor) SelectSyntax(filename string) {
	e.syntax = nil
	if filename == "" {
		return
	}
	for i := range HLDB {
		s := &HLDB[i]
		for _, pattern := range s.Patterns {
			isSuffix := len(pattern) > 0 && pattern[0] == '.'
			matched := false
			if isSuffix {
				matched = strings.HasSuffix(filename, pattern)
			} else {
				matched = strings.Contains(filename, pattern)
			}
			if matched {
				e.syntax = s
				for i := range e.rows {
					e.highlightRow(&e.rows[i])
				}
				return
			}
		}
	}
}

// highlightRow runs the highlighter over row.render, seeding in_comment
// from the previous row's hlOpenComment. If the resulting hlOpenComment
// changed, the following row is recursively re-highlighted (the cross-row
// cascade keeps every row's starting state consistent with the one before
// it; bounded by document length, amortized O(1) for edits far from any
// unterminated multi-line comment).
func (e *Editor) highlightRow(row *Row) {
	row.hl = make([]HLType, len(row.render))

	syn := e.syntax
	if syn == nil {
		e.propagateCommentState(row, false)
		return
	}

	prevSep := true
	var inString byte
	inComment := row.idx > 0 && row.idx-1 < len(e.rows) && e.rows[row.idx-1].hlOpenComment

	scs := []byte(syn.SingleLineComment)
	mcs := []byte(syn.MultilineCommentStart)
	mce := []byte(syn.MultilineCommentEnd)

	render := row.render
	i := 0
outer:
	for i < len(render) {
		var prevHL HLType = HLNormal
		if i > 0 {
			prevHL = row.hl[i-1]
		}

		// 1. Single-line comment.
		if len(scs) > 0 && inString == 0 && !inComment && hasPrefixAt(render, i, scs) {
			for j := i; j < len(render); j++ {
				row.hl[j] = HLComment
			}
			break
		}

		// 2. Multi-line comment (already inside).
		if inComment {
			row.hl[i] = HLMLComment
			if len(mce) > 0 && hasPrefixAt(render, i, mce) {
				for j := 0; j < len(mce); j++ {
					row.hl[i+j] = HLMLComment
				}
				i += len(mce)
				inComment = false
				prevSep = true
				continue
			}
			i++
			continue
		}

		// 3. Multi-line comment (enter).
		if len(mcs) > 0 && inString == 0 && hasPrefixAt(render, i, mcs) {
			for j := 0; j < len(mcs); j++ {
				row.hl[i+j] = HLMLComment
			}
			i += len(mcs)
			inComment = true
			continue
		}

		// 4. String.
		if syn.HighlightStrings {
			if inString != 0 {
				row.hl[i] = HLString
				if render[i] == '\\' && i+1 < len(render) {
					row.hl[i+1] = HLString
					i += 2
					continue
				}
				if render[i] == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if render[i] == '"' || render[i] == '\'' {
				inString = render[i]
				row.hl[i] = HLString
				i++
				continue
			}
		}

		// 5. Number.
		if syn.HighlightNumbers {
			c := render[i]
			if (isDigit(c) && (prevSep || prevHL == HLNumber)) || (c == '.' && prevHL == HLNumber) {
				row.hl[i] = HLNumber
				prevSep = false
				i++
				continue
			}
		}

		// 6. Keyword.
		if prevSep {
			for _, kw := range syn.Keywords {
				body := kw.Word
				klen := len(body)
				secondary := kw.Secondary
				if secondary {
					// Trailing '|' is a marker, not part of the matched text.
					body = strings.TrimSuffix(kw.Word, "|")
					klen = len(body)
				}
				if klen == 0 || i+klen > len(render) {
					continue
				}
				if string(render[i:i+klen]) != body {
					continue
				}
				if i+klen < len(render) && !isSeparator(render[i+klen]) {
					continue
				}
				tok := HLKeyword1
				if secondary {
					tok = HLKeyword2
				}
				for j := 0; j < klen; j++ {
					row.hl[i+j] = tok
				}
				i += klen
				prevSep = false
				continue outer
			}
		}

		// 7. Default.
		prevSep = isSeparator(render[i])
		i++
	}

	e.propagateCommentState(row, inComment)
}

// propagateCommentState records whether row ends inside an unterminated
// multi-line comment and, if that changed, recursively re-highlights the
// following row so its own scan starts from the right state.
func (e *Editor) propagateCommentState(row *Row, open bool) {
	changed := row.hlOpenComment != open
	row.hlOpenComment = open
	if changed && row.idx+1 < len(e.rows) {
		e.highlightRow(&e.rows[row.idx+1])
	}
}

func hasPrefixAt(b []byte, i int, prefix []byte) bool {
	if i+len(prefix) > len(b) {
		return false
	}
	for j, c := range prefix {
		if b[i+j] != c {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
