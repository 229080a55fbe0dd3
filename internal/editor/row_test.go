package editor

import "testing"

func checkInvariants(t *testing.T, e *Editor) {
	t.Helper()
	for i := range e.rows {
		row := &e.rows[i]
		if row.idx != i {
			t.Errorf("row %d: idx = %d, want %d", i, row.idx, i)
		}
		if len(row.render) != len(row.hl) {
			t.Errorf("row %d: len(render)=%d, len(hl)=%d", i, len(row.render), len(row.hl))
		}
	}
}

func TestInsertDeleteRowMaintainsIdx(t *testing.T) {
	e, _ := newTestEditor(nil)
	e.InsertRow(0, []byte("first"))
	e.InsertRow(1, []byte("second"))
	e.InsertRow(1, []byte("inserted"))
	checkInvariants(t, e)

	e.DeleteRow(1)
	checkInvariants(t, e)
	if got := string(e.rows[1].chars); got != "second" {
		t.Fatalf("rows[1] = %q, want %q", got, "second")
	}
}

func TestCxRxRoundTrip(t *testing.T) {
	e, _ := newTestEditor(nil)
	e.InsertRow(0, []byte("a\tbc\tdef"))
	row := &e.rows[0]

	for rx := 0; rx < row.RLen(); rx++ {
		cx := row.rxToCx(rx)
		if row.cxToRx(cx) < rx {
			t.Errorf("rxToCx(%d)=%d, cxToRx(%d)=%d, want >= %d", rx, cx, cx, row.cxToRx(cx), rx)
		}
	}
}

func TestRowEditingSetsDirtyAndReindexes(t *testing.T) {
	e, _ := newTestEditor(nil)
	if e.dirty {
		t.Fatal("new editor should not be dirty")
	}
	e.InsertRow(0, []byte("hello"))
	if !e.dirty {
		t.Fatal("InsertRow should set dirty")
	}
	checkInvariants(t, e)
}
