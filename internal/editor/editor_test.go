package editor

import "testing"

func TestOpenSplitsLinesAndClearsDirty(t *testing.T) {
	e, files := newTestEditor(nil)
	files.lines["/tmp/x"] = [][]byte{[]byte("abc"), []byte("de")}

	if err := e.Open("/tmp/x"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if e.dirty {
		t.Fatal("dirty should be false right after a clean load")
	}
	if len(e.rows) != 2 || string(e.rows[0].chars) != "abc" || string(e.rows[1].chars) != "de" {
		t.Fatalf("rows = %+v", e.rows)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	e, files := newTestEditor(nil)
	e.filename = "/tmp/x"
	e.InsertRow(0, []byte("abc"))
	e.InsertRow(1, []byte("de"))
	e.dirty = true

	e.Save()
	if e.dirty {
		t.Fatal("dirty should clear on successful save")
	}

	want := "abc\nde\n"
	if got := string(files.saved["/tmp/x"]); got != want {
		t.Fatalf("saved bytes = %q, want %q", got, want)
	}

	e2, files2 := newTestEditor(nil)
	// Reload the lines a real reader would split out of the bytes written above.
	files2.lines["/tmp/x"] = [][]byte{[]byte("abc"), []byte("de")}
	if err := e2.Open("/tmp/x"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(e2.rows) != len(e.rows) {
		t.Fatalf("reloaded %d rows, want %d", len(e2.rows), len(e.rows))
	}
	for i := range e.rows {
		if string(e2.rows[i].chars) != string(e.rows[i].chars) {
			t.Errorf("row %d = %q, want %q", i, e2.rows[i].chars, e.rows[i].chars)
		}
	}
}

func TestSaveReportsWriteFailureAndStaysDirty(t *testing.T) {
	e, files := newTestEditor(nil)
	e.filename = "/tmp/x"
	e.InsertRow(0, []byte("abc"))
	files.err = errWriteFailed{}

	e.Save()

	if !e.dirty {
		t.Fatal("a failed save must leave dirty true")
	}
}

type errWriteFailed struct{}

func (errWriteFailed) Error() string { return "disk full" }

func TestScenarioTypeSaveClearsDirty(t *testing.T) {
	// Scenario 1: type "abc", ENTER, type "de", save to /tmp/x.
	e, files := newTestEditor(nil)
	e.filename = "/tmp/x"

	for _, c := range "abc" {
		e.InsertChar(byte(c))
	}
	e.InsertNewline()
	for _, c := range "de" {
		e.InsertChar(byte(c))
	}
	e.Save()

	want := "abc\nde\n"
	if got := string(files.saved["/tmp/x"]); got != want {
		t.Fatalf("saved = %q, want %q", got, want)
	}
	if e.dirty {
		t.Fatal("dirty should be false after save")
	}
}
