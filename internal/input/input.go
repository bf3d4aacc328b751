package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/jsonsmith/internal/errors"
)

// Source reads the document a command operates on.
type Source struct {
	// Stdin is read when no file is given.
	Stdin io.Reader
	// Prompt receives the interactive mode banner.
	Prompt io.Writer
	// Interactive reports whether Stdin is a terminal.
	Interactive func() bool
}

// NewSource returns a Source bound to the process's standard streams.
func NewSource() *Source {
	return &Source{
		Stdin:       os.Stdin,
		Prompt:      os.Stderr,
		Interactive: stdinIsTerminal,
	}
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Read returns the text of path, or of stdin when path is empty. Blank text
// is returned as is so that callers can report it as empty input.
func (s *Source) Read(path string) (string, error) {
	if path != "" {
		return ReadFile(path)
	}
	if s.Interactive != nil && s.Interactive() {
		return s.readInteractive()
	}

	data, err := io.ReadAll(s.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	return string(data), nil
}

// ReadFile returns the contents of path.
func ReadFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.NewInputError(fmt.Sprintf("file '%s' does not exist", path), errors.ErrFileNotFound)
	} else if err != nil {
		return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	return string(data), nil
}

// readInteractive provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func (s *Source) readInteractive() (string, error) {
	fmt.Fprintln(s.Prompt, "jsonsmith interactive mode")
	fmt.Fprintln(s.Prompt, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(s.Stdin)
	var sb strings.Builder
	for {
		line, err := reader.ReadString('\n')
		sb.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
	}

	fmt.Fprintln(s.Prompt)
	return sb.String(), nil
}
