package main

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func execute(ctx context.Context, fs afero.Fs, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(fs)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRequiresExactlyOneFile(t *testing.T) {
	_, err := execute(context.Background(), afero.NewMemMapFs())
	require.Error(t, err)

	_, err = execute(context.Background(), afero.NewMemMapFs(), "a.log", "b.log")
	require.Error(t, err)
}

func TestHelp(t *testing.T) {
	out, err := execute(context.Background(), afero.NewMemMapFs(), "--help")
	require.NoError(t, err)
	require.Contains(t, out, "watchlog <file>")
}

func TestMissingFileFails(t *testing.T) {
	out, err := execute(context.Background(), afero.NewMemMapFs(), "missing.log")
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, out)
}

func TestPrintsFileUntilStopped(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "build.log", []byte("step 1 done"), 0600))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	out, err := execute(ctx, fs, "build.log")
	require.NoError(t, err)
	require.Equal(t, "step 1 done\n", out)
}
