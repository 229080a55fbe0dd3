package editor

// ProcessKeypress reads and dispatches exactly one key. It returns quit ==
// true once the process should exit cleanly (Ctrl-Q with a clean buffer,
// or after quit_times presses against a dirty one); err is non-nil only
// when the key source itself failed.
func (e *Editor) ProcessKeypress() (quit bool, err error) {
	key, err := e.keys.ReadKey()
	if err != nil {
		return false, err
	}

	vertical := false

	switch key {
	case KeyResize:
		// Dimensions are re-read on the next RefreshScreen; nothing else to do.
		e.quitTimes = QuitTimesInit
		return false, nil

	case ctrlKey('q'):
		if e.dirty && e.quitTimes > 0 {
			e.SetStatusMessage("Warning! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return false, nil
		}
		return true, nil

	case ctrlKey('s'):
		e.Save()

	case ctrlKey('f'):
		e.Find()

	case ctrlKey('k'):
		if e.cy < len(e.rows) {
			e.DeleteRow(e.cy)
			if e.cy >= len(e.rows) && e.cy > 0 {
				e.cy--
			}
			e.clampCx()
		}

	case keyEnter:
		e.InsertNewline()

	case ctrlKey('h'), keyBackspace, KeyDelete:
		if key == KeyDelete {
			e.MoveCursor(KeyArrowRight)
		}
		e.DeleteChar()

	case ctrlKey('l'), keyEsc:
		// Ignored.

	case KeyHome:
		e.cx = 0

	case KeyEnd:
		if e.cy < len(e.rows) {
			e.cx = e.rows[e.cy].Len()
		}

	case KeyPageUp, KeyPageDown:
		vertical = true
		if key == KeyPageUp {
			e.cy = e.rowOff
		} else {
			e.cy = e.rowOff + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		}
		moveKey := KeyArrowDown
		if key == KeyPageUp {
			moveKey = KeyArrowUp
		}
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(moveKey)
		}

	case KeyArrowUp, KeyArrowDown:
		vertical = true
		e.MoveCursor(key)

	case KeyArrowLeft, KeyArrowRight:
		e.MoveCursor(key)

	default:
		if key >= 0 && key < 0x100 {
			e.InsertChar(byte(key))
		}
	}

	e.quitTimes = QuitTimesInit

	if !vertical {
		e.syncDesiredRx()
	}

	return false, nil
}
