package editor

import "time"

// Key is a decoded keypress. Bytes 0x00-0xFF are literal; special keys
// (arrows, page/home/end, delete, and the synthetic resize event) occupy
// values at and above 0x1000 so they can never collide with a literal byte.
type Key int

const (
	KeyArrowLeft Key = 0x1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyResize
)

const (
	keyBackspace = 127
	keyEnter     = '\r'
	keyEsc       = 0x1b
)

// ctrlKey masks a plain character down to its control-key equivalent,
// stripping bits 5 and 6 (CTRL_KEY in the original kilo).
func ctrlKey(c byte) Key {
	return Key(c & 0x1f)
}

// KeySource yields one decoded keypress at a time. A real terminal driver
// decodes escape sequences into the special Key* values above and returns
// KeyResize when an asynchronous terminal-resize event was observed between
// reads; tests can supply a canned sequence instead.
type KeySource interface {
	ReadKey() (Key, error)
}

// ByteSink is the raw output sink a screen refresh is written to in one
// shot, to avoid flicker from partial writes.
type ByteSink interface {
	Write(p []byte) (int, error)
}

// WindowSizer reports the current terminal dimensions in character cells.
type WindowSizer interface {
	Size() (rows, cols int, err error)
}

// Clock abstracts time.Now so status-message expiry can be driven by tests
// without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// FileReader loads a file's lines for Editor.Open. Lines have their trailing
// line terminator stripped.
type FileReader interface {
	ReadLines(path string) ([][]byte, error)
}

// FileWriter atomically replaces a path's contents.
type FileWriter interface {
	WriteFile(path string, data []byte) error
}
