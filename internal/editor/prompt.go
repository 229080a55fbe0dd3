package editor

// PromptObserver is notified after each keystroke of a Prompt session with
// the buffer as it stands and the key that produced that state.
type PromptObserver func(buf []byte, key Key)

// Prompt reads a line of input through the status bar, formatting format
// with the buffer-so-far on every refresh. It returns the entered text and
// true on ENTER (ignoring an empty ENTER), or ("", false) if the user
// cancels with ESC or Ctrl-C.
func (e *Editor) Prompt(format string, observer PromptObserver) (string, bool) {
	buf := make([]byte, 0, 32)

	for {
		e.SetStatusMessage(format, string(buf))
		e.RefreshScreen()

		key, err := e.keys.ReadKey()
		if err != nil {
			e.SetStatusMessage("%v", err)
			return "", false
		}

		switch {
		case key == KeyDelete || key == ctrlKey('h') || key == keyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case key == keyEsc || key == ctrlKey('c'):
			e.SetStatusMessage("")
			if observer != nil {
				observer(buf, key)
			}
			return "", false

		case key == keyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if observer != nil {
					observer(buf, key)
				}
				return string(buf), true
			}
			continue

		case key < 0x100 && !isControl(byte(key)):
			buf = append(buf, byte(key))

		default:
			// Anything else (arrows, page/home/end, resize, other control
			// bytes) neither edits the buffer nor ends the prompt, but is
			// still reported to the observer below.
		}

		if observer != nil {
			observer(buf, key)
		}
	}
}

func isControl(b byte) bool {
	return b < 32 || b == 127
}
