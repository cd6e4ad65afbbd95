package scene

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedExt marks scene files stored zstd-compressed.
const CompressedExt = ".zst"

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Decode reads one document, validating it against the schema first.
func Decode(r io.Reader) (Document, error) {
	var d Document

	raw, err := io.ReadAll(r)
	if err != nil {
		return d, err
	}
	if err := Validate(raw); err != nil {
		return d, err
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, &MalformedDocumentError{Reason: "decode", Err: err}
	}
	return d, nil
}

// Encode writes a document as indented JSON.
// Agent glyphs are written as-is rather than HTML-escaped.
func Encode(w io.Writer, d Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// ReadFile loads a document from disk. Compressed files are detected by
// extension or by the zstd frame header.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br
	if head, _ := br.Peek(len(zstdMagic)); strings.HasSuffix(path, CompressedExt) || bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return Document{}, &IOError{Op: "read", Path: path, Err: err}
		}
		defer dec.Close()
		r = dec
	}

	d, err := Decode(r)
	if err != nil {
		var mde *MalformedDocumentError
		if errors.As(err, &mde) {
			return Document{}, withPath(err, path)
		}
		return Document{}, &IOError{Op: "read", Path: path, Err: err}
	}
	return d, nil
}

// WriteFile stores a document on disk, compressing it when the path ends
// in CompressedExt. The target is replaced only after a complete write and
// keeps its permissions; new files are created 0644.
func WriteFile(path string, d Document) error {
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".worldedit-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := encodeTo(tmp, d, strings.HasSuffix(path, CompressedExt)); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

func encodeTo(w io.Writer, d Document, compress bool) error {
	if !compress {
		return Encode(w, d)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := Encode(enc, d); err != nil {
		enc.Close()
		return fmt.Errorf("zstd encode: %w", err)
	}
	return enc.Close()
}
