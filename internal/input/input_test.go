package input

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcncl/jsonsmith/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	s := &Source{Stdin: strings.NewReader("ignored")}
	text, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
}

func TestRead_FileErrors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, errors.ErrFileNotFound)
	assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeInput})

	_, err = ReadFile("  ")
	assert.ErrorIs(t, err, errors.ErrInvalidFilePath)

	// Empty files are returned so that validation can report them
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	text, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestRead_PipedStdin(t *testing.T) {
	var prompt bytes.Buffer
	s := &Source{
		Stdin:       strings.NewReader("[1,\n2]"),
		Prompt:      &prompt,
		Interactive: func() bool { return false },
	}
	text, err := s.Read("")
	require.NoError(t, err)
	assert.Equal(t, "[1,\n2]", text)
	assert.Empty(t, prompt.String())
}

func TestRead_Interactive(t *testing.T) {
	var prompt bytes.Buffer
	s := &Source{
		Stdin:       strings.NewReader("{\n  \"a\": 1\n}"),
		Prompt:      &prompt,
		Interactive: func() bool { return true },
	}
	text, err := s.Read("")
	require.NoError(t, err)
	// The last line has no trailing newline and is still kept
	assert.Equal(t, "{\n  \"a\": 1\n}", text)
	assert.Contains(t, prompt.String(), "interactive mode")
	assert.Contains(t, prompt.String(), "Ctrl+D")
}
