package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/seedtray/watchlog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Prints a file's content and keeps printing whatever gets appended to it. Similar to tail -f.
// Stops on Ctrl+C, printing a final newline.
func main() {
	log.SetFlags(0)
	log.SetPrefix("watchlog: ")

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "watchlog <file>",
		Short: "Print a file and follow what gets appended to it",
		Long: `watchlog prints the content of a file and then keeps polling it, printing
whatever gets appended, until interrupted.

If the file becomes shorter than what was already printed it is printed again
from the start. watchlog exits with an error as soon as the file can't be read.

Ctrl+C stops it with a final newline. SIGTERM is treated the same way.`,
		Example: `  watchlog /var/log/build.log`,
		Args:    cobra.ExactArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchlog.NewTailer(fs, args[0], cmd.OutOrStdout()).Run(ctx)
		},
	}
}
