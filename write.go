package lvt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	header = "// Property data for LVT Calculator\n" +
		"// Generated automatically - do not edit manually\n" +
		"// Source: LVT_with_Tax_Calculations.xlsx\n\n"
	assignment = "const propertyData = "
)

// Encode writes doc as a JavaScript constant declaration.
func Encode(w io.Writer, doc *Document) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(assignment)

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	// The encoder terminates the value with a newline; the statement
	// terminator goes before it.
	buf.Truncate(buf.Len() - 1)
	buf.WriteString(";\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// Decode parses the document out of a file written by Encode.
func Decode(r io.Reader) (*Document, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src := string(bs)
	idx := strings.Index(src, assignment)
	if idx < 0 {
		return nil, errors.New("no propertyData declaration")
	}
	src = strings.TrimSpace(src[idx+len(assignment):])
	src = strings.TrimSuffix(src, ";")

	var doc Document
	if err := json.Unmarshal([]byte(src), &doc); err != nil {
		return nil, fmt.Errorf("parse propertyData: %w", err)
	}
	return &doc, nil
}

// ReadFile decodes the data file at path.
func ReadFile(path string) (*Document, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Decode(fd)
}

// WriteFile encodes doc to path. The data is written to a temporary file
// next to path and renamed into place, so path is either left untouched or
// fully written.
func WriteFile(path string, doc *Document) (err error) {
	fd, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(fd.Name())
		}
	}()

	if err = Encode(fd, doc); err != nil {
		return err
	}
	if err = fd.Chmod(0o644); err != nil {
		return err
	}
	if err = fd.Close(); err != nil {
		return err
	}
	return os.Rename(fd.Name(), path)
}
