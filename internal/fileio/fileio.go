// Package fileio implements the editor package's FileReader and FileWriter
// against the real filesystem: line-splitting load with terminator
// stripping, and an atomic temp-file-plus-rename save.
package fileio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Loader reads a file's lines for editor.Editor.Open.
type Loader struct{}

// ReadLines implements editor.FileReader. Each line has its trailing
// newline (and, for CRLF files, the preceding carriage return) stripped;
// no line terminator is assumed to be present, matching files that don't
// end in one.
func (Loader) ReadLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Saver writes a file for editor.Editor.Save.
type Saver struct{}

// WriteFile implements editor.FileWriter: data is written to a temp file in
// the target's directory, then renamed over path. A failure at any step
// leaves the original file untouched, so a half-written save can never
// corrupt it.
func (Saver) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kilo-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
