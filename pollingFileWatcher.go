package watchlog

import (
	"context"
	"os"
	"time"

	"github.com/spf13/afero"
)

type PollingFileWatcher struct {
	filename string
	fs       afero.Fs
	interval time.Duration
}

var _ FileWatcher = &PollingFileWatcher{}

func NewPollingFileWatcher(fs afero.Fs, filename string) *PollingFileWatcher {
	return &PollingFileWatcher{filename: filename, fs: fs, interval: pollInterval}
}

const pollInterval = 1 * time.Millisecond

// WaitForChange sleeps for the polling interval, then stats the file, until its modification time moves past since.
// Only the modification time is compared: writes that land inside the same timestamp tick as the last
// acknowledged one go unnoticed until a later write moves the timestamp again.
func (pw *PollingFileWatcher) WaitForChange(ctx context.Context, since time.Time) (os.FileInfo, error) {
	for {
		select {
		case <-time.After(pw.interval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		fileInfo, err := pw.fs.Stat(pw.filename)
		if err != nil {
			return nil, err
		}
		if fileInfo.ModTime().After(since) {
			return fileInfo, nil
		}
	}
}
