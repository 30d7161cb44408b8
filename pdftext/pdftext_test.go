package pdftext

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePdftotext writes a shell script that behaves like "pdftotext -raw <in> -"
// by printing the content of <in>.
func fakePdftotext(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	bin := filepath.Join(t.TempDir(), "pdftotext")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return bin
}

func TestExtractRunsBinary(t *testing.T) {
	bin := fakePdftotext(t, `[ "$1" = "-raw" ] && [ "$3" = "-" ] || exit 3
cat "$2"`)
	in := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, os.WriteFile(in, []byte("38259P508\n2 SHARES OF GOOG\n"), 0o644))

	text, err := Extract(context.Background(), in, Options{Binary: bin})
	require.NoError(t, err)
	assert.Equal(t, "38259P508\n2 SHARES OF GOOG\n", text)
}

func TestExtractReportsFailure(t *testing.T) {
	bin := fakePdftotext(t, `echo "Syntax Error: Couldn't read xref table" >&2; exit 1`)

	_, err := Extract(context.Background(), "missing.pdf", Options{Binary: bin})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Couldn't read xref table")
}

func TestExtractNoText(t *testing.T) {
	bin := fakePdftotext(t, `echo "   "`)

	_, err := Extract(context.Background(), "scan.pdf", Options{Binary: bin})
	assert.True(t, errors.Is(err, ErrNoText), "got %v", err)
}

func TestExtractCanceled(t *testing.T) {
	bin := fakePdftotext(t, `sleep 5`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Extract(ctx, "slow.pdf", Options{Binary: bin})
	assert.Error(t, err)
}

func TestFindBinaryMissing(t *testing.T) {
	_, found := findBinary("eac2txf-no-such-tool")
	assert.False(t, found)
}

func TestBuiltinMissingFile(t *testing.T) {
	_, err := extractBuiltin(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
