package editor

import "testing"

func TestHighlightKeywordsStringsNumbers(t *testing.T) {
	e, _ := newTestEditor(nil)
	e.SelectSyntax("test.c")
	e.InsertRow(0, []byte("int x = 42;"))
	row := &e.rows[0]

	want := map[int]HLType{
		0: HLKeyword2, // 'i' of int
		1: HLKeyword2,
		2: HLKeyword2,
		4: HLNormal, // 'x'
		8: HLNumber, // '4'
		9: HLNumber, // '2'
		10: HLNormal, // ';'
	}
	for i, tok := range want {
		if row.hl[i] != tok {
			t.Errorf("hl[%d] = %v, want %v", i, row.hl[i], tok)
		}
	}
}

func TestHighlightMultilineCommentCascade(t *testing.T) {
	e, _ := newTestEditor(nil)
	e.SelectSyntax("test.c")
	e.InsertRow(0, []byte("/* open"))
	e.InsertRow(1, []byte("closed */ x"))

	if !e.rows[0].hlOpenComment {
		t.Fatal("row 0 should end inside an open multi-line comment")
	}
	row1 := &e.rows[1]
	for i := 0; i < len("closed */"); i++ {
		if row1.hl[i] != HLMLComment {
			t.Errorf("row1.hl[%d] = %v, want HLMLComment", i, row1.hl[i])
		}
	}
	xIdx := len("closed */ ")
	if row1.hl[xIdx] != HLNormal {
		t.Errorf("row1.hl[%d] = %v, want HLNormal", xIdx, row1.hl[xIdx])
	}
	if row1.hlOpenComment {
		t.Fatal("row 1 should close the comment before end of line")
	}
}

func TestHighlightSingleByteChangeStaysLocalWithoutOpenComment(t *testing.T) {
	e, _ := newTestEditor(nil)
	e.SelectSyntax("test.c")
	e.InsertRow(0, []byte("int a = 1;"))
	e.InsertRow(1, []byte("int b = 2;"))

	before := append([]HLType(nil), e.rows[1].hl...)
	e.RowInsertChar(&e.rows[0], e.rows[0].Len(), '0')

	for i, tok := range before {
		if e.rows[1].hl[i] != tok {
			t.Errorf("row1.hl[%d] changed from %v to %v after editing row 0", i, tok, e.rows[1].hl[i])
		}
	}
}

func TestSelectSyntaxBySuffix(t *testing.T) {
	e, _ := newTestEditor(nil)
	e.SelectSyntax("main.go")
	if e.syntax == nil || e.syntax.Name != "go" {
		t.Fatalf("expected go syntax for main.go, got %v", e.syntax)
	}

	e.SelectSyntax("notes.txt")
	if e.syntax != nil {
		t.Fatalf("expected no syntax for notes.txt, got %v", e.syntax)
	}
}
