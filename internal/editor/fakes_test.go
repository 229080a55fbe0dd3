package editor

import (
	"bytes"
	"io"
	"time"
)

// fakeKeys replays a canned key sequence, then returns io.EOF.
type fakeKeys struct {
	keys []Key
	pos  int
}

func (f *fakeKeys) ReadKey() (Key, error) {
	if f.pos >= len(f.keys) {
		return 0, io.EOF
	}
	k := f.keys[f.pos]
	f.pos++
	return k, nil
}

// fakeSink collects every RefreshScreen write.
type fakeSink struct {
	bytes.Buffer
}

// fakeSizer reports a fixed terminal size.
type fakeSizer struct {
	rows, cols int
}

func (f fakeSizer) Size() (rows, cols int, err error) { return f.rows, f.cols, nil }

// fakeClock returns a fixed time, advanced manually by tests that need to
// exercise message-bar expiry.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

// fakeFiles is an in-memory FileReader/FileWriter pair.
type fakeFiles struct {
	lines map[string][][]byte
	saved map[string][]byte
	err   error
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{lines: map[string][][]byte{}, saved: map[string][]byte{}}
}

func (f *fakeFiles) ReadLines(path string) ([][]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lines[path], nil
}

func (f *fakeFiles) WriteFile(path string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.saved[path] = append([]byte(nil), data...)
	return nil
}

// newTestEditor builds an Editor wired to fakes sized large enough that
// scrolling/window-too-small logic never interferes with a test unless it
// asks for a specific size.
func newTestEditor(keys []Key) (*Editor, *fakeFiles) {
	files := newFakeFiles()
	e := New(&fakeKeys{keys: keys}, &fakeSink{}, fakeSizer{rows: 26, cols: 80}, files, files, &fakeClock{})
	return e, files
}
