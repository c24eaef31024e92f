//go:build !gnuplot

package cli_test

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmdShowWithoutGnuplot(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "--out", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "basic_bar.png"))

	showDir := t.TempDir()
	_, _, err = execute(t, "--out", showDir, "--show")
	require.ErrorIs(t, err, exec.ErrNotFound)
	assert.NoFileExists(t, filepath.Join(showDir, "basic_bar.png"))
}
