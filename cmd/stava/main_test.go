package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestOutputEndsWithNewline(t *testing.T) {
	code, out, _ := runCLI("speling")
	assert.Equal(t, 0, code)
	assert.Equal(t, "spelling\n", out)
}

func TestMatchInDefaultWords(t *testing.T) {
	_, out, _ := runCLI("bycycle")
	assert.Equal(t, "bicycle\n", out)
}

func TestMatchInFile(t *testing.T) {
	code, out, _ := runCLI("speling", tempFile(t, "spelling, and some other words"))
	assert.Equal(t, 0, code)
	assert.Equal(t, "spelling\n", out)
}

func TestMatchInAnyOfFiles(t *testing.T) {
	f1 := tempFile(t, "no match in this file")
	f2 := tempFile(t, "but a match in this file - spelling")
	_, out, _ := runCLI("speling", f1, f2)
	assert.Equal(t, "spelling\n", out)
}

func TestNoMatchReturnsInput(t *testing.T) {
	_, out, _ := runCLI("inputword", tempFile(t, "no match in this file"))
	assert.Equal(t, "inputword\n", out)

	_, out, _ = runCLI("quintessential")
	assert.Equal(t, "quintessential\n", out)
}

func TestUppercaseWordInFile(t *testing.T) {
	_, out, _ := runCLI("speling", tempFile(t, "SPELLING"))
	assert.Equal(t, "spelling\n", out)
}

func TestNonExistingFile(t *testing.T) {
	code, out, errOut := runCLI("speling", "some_non_existing_file")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `File not found ["some_non_existing_file"]`)
}

func TestMissingWord(t *testing.T) {
	code, _, errOut := runCLI()
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "requires at least 1 arg")
}

func TestNonASCIIWord(t *testing.T) {
	code, _, errOut := runCLI("café")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "non-ASCII")
}

func TestDefaultFlag(t *testing.T) {
	_, out, _ := runCLI("--default", "speling", tempFile(t, "no match in this file"))
	assert.Equal(t, "spelling\n", out)

	_, out, _ = runCLI("--default", "ruintessential", tempFile(t, "quintessential is not included in default words"))
	assert.Equal(t, "quintessential\n", out)
}

func TestExitCode(t *testing.T) {
	code, out, _ := runCLI("--exit-code", "speling")
	assert.Equal(t, 1, code)
	assert.Equal(t, "spelling\n", out)

	code, out, _ = runCLI("--exit-code", "spelling")
	assert.Equal(t, 0, code)
	assert.Equal(t, "spelling\n", out)
}

func TestExitCodeOnly(t *testing.T) {
	code, out, _ := runCLI("--exit-code-only", "speling")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)

	code, out, _ = runCLI("--exit-code-only", "spelling")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
}
