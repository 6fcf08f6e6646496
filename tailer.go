package watchlog

import (
	"context"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// A Tailer prints what gets appended to a file, similar to tail -f.
//
// Each time the file's modification time moves forward the whole file is read again, and the part past
// what was already printed is written out. If the file got shorter than that, it is assumed to have been
// replaced and is printed again from the start.
type Tailer struct {
	filename string
	fs       afero.Fs
	out      io.Writer
	watcher  FileWatcher

	// emitted counts characters, not bytes, already written to out.
	emitted     int
	lastModTime time.Time
}

// NewTailer makes a Tailer that polls filename on fs and writes to out.
func NewTailer(fs afero.Fs, filename string, out io.Writer) *Tailer {
	return &Tailer{
		filename:    filename,
		fs:          fs,
		out:         out,
		watcher:     NewPollingFileWatcher(fs, filename),
		lastModTime: time.Unix(0, 0),
	}
}

// Run tails the file until ctx is done or an error is found.
//
// When ctx is done a single newline is written and nil is returned: that is the normal way to stop a Tailer.
// Any failure to stat or read the file ends the run with that error. Nothing is retried.
func (t *Tailer) Run(ctx context.Context) error {
	for {
		fileInfo, err := t.watcher.WaitForChange(ctx, t.lastModTime)
		if ctx.Err() != nil {
			_, err = io.WriteString(t.out, "\n")
			return err
		}
		if err != nil {
			return fmt.Errorf("watching %s: %w", t.filename, err)
		}
		if err = t.emit(fileInfo.ModTime()); err != nil {
			return err
		}
	}
}

// Offset returns the number of characters written so far from the current file contents.
func (t *Tailer) Offset() int {
	return t.emitted
}

// emit writes the contents past the current offset and acknowledges modTime.
// modTime is the one seen before reading, so a write racing the read is picked up again only if it
// moves the modification time once more.
func (t *Tailer) emit(modTime time.Time) error {
	contents, err := ReadText(t.fs, t.filename)
	if err != nil {
		return err
	}
	length := utf8.RuneCountInString(contents)
	if length < t.emitted {
		t.emitted = 0
	}
	if _, err = io.WriteString(t.out, skipRunes(contents, t.emitted)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	t.emitted = length
	t.lastModTime = modTime
	return nil
}

// skipRunes drops the first n characters of s.
func skipRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
