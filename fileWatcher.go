package watchlog

import (
	"context"
	"os"
	"time"
)

type FileWatcher interface {
	// WaitForChange blocks until the watched file's modification time is strictly after since.
	// It returns the file info observed at that moment.
	// It returns ctx.Err() once the context is done, and the stat error if the file can't be inspected.
	WaitForChange(ctx context.Context, since time.Time) (os.FileInfo, error)
}
