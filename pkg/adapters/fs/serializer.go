package fs

import (
	"bytes"
	"io"
	"strings"

	"github.com/aretw0/todo/pkg/core"
)

// Serializer defines how to read and write a note file.
type Serializer interface {
	// Parse reads from r and returns the note list.
	Parse(r io.Reader) (core.NoteList, error)
	// Serialize converts the note list to bytes.
	Serialize(notes core.NoteList) []byte
}

// LineSerializer stores one note per line, LF separated, with a trailing LF
// unless the list is empty.
type LineSerializer struct{}

// NewLineSerializer creates a new line serializer.
func NewLineSerializer() *LineSerializer {
	return &LineSerializer{}
}

// Parse splits the stream on LF. A trailing CR on each line is dropped and a
// single trailing newline does not produce an extra empty line. Blank lines
// in the middle are kept as notes.
func (s *LineSerializer) Parse(r io.Reader) (core.NoteList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return core.NoteList{}, nil
	}

	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")
	notes := make(core.NoteList, len(lines))
	for i, line := range lines {
		notes[i] = strings.TrimSuffix(line, "\r")
	}
	return notes, nil
}

func (s *LineSerializer) Serialize(notes core.NoteList) []byte {
	if len(notes) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for _, line := range notes {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
