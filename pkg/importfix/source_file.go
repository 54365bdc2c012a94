package importfix

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// SourceFile is a source file read fully into memory.
type SourceFile struct {
	filename string
	mode     fs.FileMode
	lines    []Line
}

// ReadSourceFile reads and closes the named file.
func ReadSourceFile(filename string) (*SourceFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return NewSourceFileFromReader(filename, info.Mode().Perm(), f)
}

// NewSourceFileFromReader constructs a source file from the given content.
func NewSourceFileFromReader(filename string, mode fs.FileMode, in io.Reader) (*SourceFile, error) {
	lines, err := ReadLines(in)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return &SourceFile{
		filename: filename,
		mode:     mode,
		lines:    lines,
	}, nil
}

// Rewrite runs the resolver over the content, replacing it with the result.
func (f *SourceFile) Rewrite(r *Resolver, pending Queue) *Result {
	result, _ := r.Resolve(f.lines, pending)
	f.lines = result.Lines
	return result
}

// Write replaces the file on disk with the current content.  The content is
// written to a temporary file in the same directory which is then renamed
// over the original, so a failed write leaves the original untouched.
func (f *SourceFile) Write() error {
	return writeFileAtomic(f.filename, JoinLines(f.lines), f.mode)
}

func writeFileAtomic(filename string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
