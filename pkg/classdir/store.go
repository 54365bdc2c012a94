package classdir

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// stagingDirName is the directory, next to the class list, that holds the
// new content until it is moved into place.
const stagingDirName = ".javimp-tmp"

// DefaultListName is the name of the class list file kept next to the
// executable.
const DefaultListName = "java_classes.list"

// Store loads and saves the line-oriented class list at a URL.  Plain
// filesystem paths are accepted and converted to file URLs.
type Store struct {
	fs  afs.Service
	url string
}

// NewStore constructs a Store for the given location.
func NewStore(fs afs.Service, location string) *Store {
	if fs == nil {
		fs = afs.New()
	}
	return &Store{fs: fs, url: toURL(location)}
}

// URL returns the location of the class list.
func (s *Store) URL() string {
	return s.url
}

// Exists reports whether the class list has been written.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	return s.fs.Exists(ctx, s.url)
}

// Load reads the class list into an indexed Directory.
func (s *Store) Load(ctx context.Context) (*Directory, error) {
	reader, err := s.fs.OpenURL(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("open class list %s: %w", s.url, err)
	}
	defer reader.Close()
	dir, err := Read(reader)
	if err != nil {
		return nil, fmt.Errorf("read class list %s: %w", s.url, err)
	}
	return dir, nil
}

// Save replaces the class list with the given names, one per line, in
// lexicographic order.  The content is uploaded under a staging directory
// with the same base name and then moved into the parent of the class list,
// which replaces it.
func (s *Store) Save(ctx context.Context, names []string) error {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	var buf bytes.Buffer
	var last string
	for _, name := range sorted {
		if name == "" || name == last {
			continue
		}
		buf.WriteString(name)
		buf.WriteByte('\n')
		last = name
	}

	parent, name := url.Split(s.url, file.Scheme)
	stagingURL := url.Join(parent, stagingDirName)
	tmpURL := url.Join(stagingURL, name)

	if err := s.fs.Upload(ctx, tmpURL, file.DefaultFileOsMode, &buf); err != nil {
		return fmt.Errorf("write class list %s: %w", tmpURL, err)
	}
	// Move places the object under the destination folder by its base name.
	if err := s.fs.Move(ctx, tmpURL, parent); err != nil {
		return fmt.Errorf("replace class list %s: %w", s.url, err)
	}
	if err := s.fs.Delete(ctx, stagingURL); err != nil {
		return fmt.Errorf("remove %s: %w", stagingURL, err)
	}
	return nil
}

func toURL(location string) string {
	if strings.Contains(location, "://") {
		return location
	}
	if abs, err := filepath.Abs(location); err == nil {
		location = abs
	}
	return "file://" + filepath.ToSlash(location)
}
