package editor

import "bytes"

// searchState carries the incremental-search callback's state across
// keystrokes for the lifetime of one Find() session; it replaces the
// static-local variables the C/port lineage used, per the "no globals"
// design note.
type searchState struct {
	startRow  int
	startRx   int
	direction int
	savedRow  int
	savedHL   []HLType
	hasSaved  bool
}

// findCallback is the Prompt observer driving incremental search. On every
// keystroke it restores any previous MATCH overlay, updates the scan
// direction and starting point from the key, then scans forward/backward
// from there for query as a substring of each row's render.
func (e *Editor) findCallback(s *searchState) func(query []byte, key Key) {
	return func(query []byte, key Key) {
		if s.hasSaved {
			copy(e.rows[s.savedRow].hl, s.savedHL)
			s.savedHL = nil
			s.hasSaved = false
		}

		switch {
		case key == KeyArrowRight || key == KeyArrowDown:
			s.direction = 1
		case key == KeyArrowLeft || key == KeyArrowUp:
			s.direction = -1
		case key == keyEnter || key == keyEsc || key >= 0x100:
			s.startRow, s.startRx = 0, 0
			s.direction = 1
			return
		default:
			s.startRow, s.startRx = 0, 0
			s.direction = 1
		}

		if len(e.rows) == 0 {
			return
		}

		currentRow := s.startRow
		currentRx := s.startRx
		for range e.rows {
			row := &e.rows[currentRow]
			start := currentRx
			if start > len(row.render) {
				start = len(row.render)
			}
			if match := bytes.Index(row.render[start:], query); match != -1 {
				matchRx := start + match
				e.cy = currentRow
				e.cx = row.rxToCx(matchRx)
				e.rowOff = len(e.rows)

				s.savedRow = currentRow
				s.savedHL = append([]HLType(nil), row.hl...)
				s.hasSaved = true
				for k := matchRx; k < matchRx+len(query) && k < len(row.hl); k++ {
					row.hl[k] = HLMatch
				}

				s.startRx = matchRx + len(query)
				s.startRow = currentRow
				return
			}

			currentRow += s.direction
			if currentRow < 0 {
				currentRow = len(e.rows) - 1
			} else if currentRow >= len(e.rows) {
				currentRow = 0
			}
			currentRx = 0
		}
	}
}

// Find opens an incremental forward/backward search prompt. Search with no
// matches is silent: cursor and scroll are unaffected. Canceling (ESC or
// Ctrl-C) restores the cursor and scroll position saved on entry.
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedRowOff, savedColOff := e.rowOff, e.colOff

	s := &searchState{direction: 1}
	_, ok := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback(s))
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.rowOff, e.colOff = savedRowOff, savedColOff
	}
}
