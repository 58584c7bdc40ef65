package command_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/multidigest/command"
	"github.com/byte4ever/multidigest/digester"
)

func TestDigFile_renders_html(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "abc.txt")
	require.NoError(t, os.WriteFile(pa, []byte("abc"), 0o600))

	got, err := command.DigFile(pa)

	require.NoError(t, err)
	assert.Contains(t, got, "<b>文件</b>: "+pa+"<br><br>")
	assert.Contains(t, got, "<b>MD5</b>: 900150983cd24fb0d6963f7d28e17f72<br>")
	assert.Contains(
		t, got,
		"<b>SHA-1</b>: a9993e364706816aba3e25717850c26c9cd0d89d<br>",
	)
	assert.Contains(t, got, "秒<br><br>")
}

func TestDigFile_missing_file(t *testing.T) {
	t.Parallel()

	got, err := command.DigFile(filepath.Join(t.TempDir(), "missing"))

	assert.Empty(t, got)

	var ioErr *digester.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Contains(t, err.Error(), "digesting file")
}

func TestMultiply(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, float32(6), command.Multiply(2, 3), 1e-6)
	assert.InDelta(t, float32(-1.25), command.Multiply(0.5, -2.5), 1e-6)
	assert.Zero(t, command.Multiply(0, 42))
}
