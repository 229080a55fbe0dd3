package editor

// TabStop is the column width tabs expand to; the next column after a tab
// is always a multiple of TabStop.
const TabStop = 8

// Row is one logical line of text plus its derived render projection and
// syntax-highlight array. idx is kept equal to the row's position in
// Editor.rows at all times (invariant 2) so the highlighter can look at a
// neighboring row by index alone.
type Row struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []HLType
	hlOpenComment bool
}

// Len returns the number of logical (unrendered) bytes in the row.
func (r *Row) Len() int { return len(r.chars) }

// RLen returns the number of rendered bytes in the row.
func (r *Row) RLen() int { return len(r.render) }

// Chars returns the row's logical bytes. Callers must not retain a
// reference across a mutating call.
func (r *Row) Chars() []byte { return r.chars }

// cxToRx converts a logical column to a rendered column, expanding tabs.
func (r *Row) cxToRx(cx int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for i := 0; i < cx; i++ {
		if r.chars[i] == '\t' {
			rx += TabStop - (rx % TabStop)
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx converts a rendered column back to a logical column: the smallest
// cx whose rendered column cxToRx(cx) is at least rx, or the row length if
// none is. An rx inside a tab's run of spaces maps to the byte after the tab.
func (r *Row) rxToCx(rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.chars); cx++ {
		if curRx >= rx {
			return cx
		}
		if r.chars[cx] == '\t' {
			curRx += TabStop - (curRx % TabStop)
		} else {
			curRx++
		}
	}
	return cx
}

// renderRow rebuilds render from chars, expanding each tab to the spaces
// needed to reach the next TabStop boundary.
func renderRow(chars []byte) []byte {
	tabs := 0
	for _, c := range chars {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(chars)+tabs*(TabStop-1))
	col := 0
	for _, c := range chars {
		if c == '\t' {
			spaces := TabStop - (col % TabStop)
			for i := 0; i < spaces; i++ {
				render = append(render, ' ')
			}
			col += spaces
		} else {
			render = append(render, c)
			col++
		}
	}
	return render
}

// updateRow regenerates render from chars and re-runs the highlighter over
// the new render, maintaining invariant 1 (len(render) == len(hl)).
func (e *Editor) updateRow(row *Row) {
	row.render = renderRow(row.chars)
	e.highlightRow(row)
}

// reindexFrom renumbers rows[at:] so each row's idx matches its slice
// position (invariant 2), after an insert or delete shifted them.
func (e *Editor) reindexFrom(at int) {
	for j := at; j < len(e.rows); j++ {
		e.rows[j].idx = j
	}
}

// InsertRow inserts a new row at position at (at in [0, len(rows)]) holding
// chars, shifting later rows up by one and renumbering their idx.
func (e *Editor) InsertRow(at int, chars []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	owned := append([]byte(nil), chars...)
	e.rows = append(e.rows, Row{})
	copy(e.rows[at+1:], e.rows[at:])
	e.rows[at] = Row{idx: at, chars: owned}
	e.reindexFrom(at + 1)
	e.updateRow(&e.rows[at])
	e.dirty = true
}

// DeleteRow removes the row at position at, shifting later rows down and
// renumbering their idx. The row now occupying at is re-highlighted, since
// it may have inherited a different hlOpenComment seed than before the
// deletion (invariant 3).
func (e *Editor) DeleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = append(e.rows[:at], e.rows[at+1:]...)
	e.reindexFrom(at)
	if at < len(e.rows) {
		e.highlightRow(&e.rows[at])
	}
	e.dirty = true
}

// RowInsertChar inserts c into row at logical column at, clipping at into
// [0, row.Len()].
func (e *Editor) RowInsertChar(row *Row, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = append(row.chars, 0)
	copy(row.chars[at+1:], row.chars[at:])
	row.chars[at] = c
	e.updateRow(row)
	e.dirty = true
}

// RowDeleteChar deletes the byte at logical column at, a no-op if at is out
// of bounds.
func (e *Editor) RowDeleteChar(row *Row, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = append(row.chars[:at], row.chars[at+1:]...)
	e.updateRow(row)
	e.dirty = true
}

// RowAppendString extends row.chars with s.
func (e *Editor) RowAppendString(row *Row, s []byte) {
	row.chars = append(row.chars, s...)
	e.updateRow(row)
	e.dirty = true
}
