package editor

import "testing"

func buildSearchDoc(e *Editor) {
	rows := []string{
		"one", "two", "three",
		"foo here", // row 3
		"five", "six", "seven",
		"something foo", // row 7
	}
	for i, r := range rows {
		e.InsertRow(i, []byte(r))
	}
}

func TestFindCancelRestoresCursorAndRemovesOverlay(t *testing.T) {
	e, _ := newTestEditor([]Key{'f', 'o', 'o', KeyArrowRight, keyEsc})
	buildSearchDoc(e)

	e.Find()

	if e.cy != 0 || e.cx != 0 {
		t.Fatalf("after ESC cancel, cursor = (%d,%d), want (0,0) restored", e.cx, e.cy)
	}
	for i := range e.rows {
		for _, tok := range e.rows[i].hl {
			if tok == HLMatch {
				t.Fatalf("row %d still has a MATCH overlay after cancel", i)
			}
		}
	}
}

func TestFindAdvancesAcrossMatches(t *testing.T) {
	e, _ := newTestEditor([]Key{'f', 'o', 'o'})
	buildSearchDoc(e)

	s := &searchState{direction: 1}
	cb := e.findCallback(s)
	cb([]byte("f"), Key('f'))
	cb([]byte("fo"), Key('o'))
	cb([]byte("foo"), Key('o'))

	if e.cy != 3 {
		t.Fatalf("first match row = %d, want 3", e.cy)
	}

	cb([]byte("foo"), KeyArrowRight)
	if e.cy != 7 {
		t.Fatalf("after ARROW_RIGHT, match row = %d, want 7", e.cy)
	}
}

func TestFindNoMatchIsSilent(t *testing.T) {
	e, _ := newTestEditor([]Key{'z', 'z', 'z', keyEnter})
	buildSearchDoc(e)

	e.cy, e.cx = 2, 1
	e.Find()

	if e.cy != 2 || e.cx != 1 {
		t.Fatalf("no-match search moved cursor to (%d,%d), want unchanged (1,2)", e.cx, e.cy)
	}
}
