package classsource

import (
	"archive/zip"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const classFileSuffix = ".class"

// JarClassPathEntry is a jar file on disk.
type JarClassPathEntry struct {
	jarFile string
}

// NewJarClassPathEntry constructs a new JarClassPathEntry.
func NewJarClassPathEntry(jarFile string) *JarClassPathEntry {
	return &JarClassPathEntry{jarFile}
}

func (e *JarClassPathEntry) String() string {
	return e.jarFile
}

// Visit calls accept for every .class entry of the jar.
func (e *JarClassPathEntry) Visit(accept func(f *zip.File) error) error {
	r, err := zip.OpenReader(e.jarFile)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, classFileSuffix) {
			continue
		}
		if err := accept(f); err != nil {
			return err
		}
	}
	return nil
}

// ClassNames returns the names of the importable classes in the jar.
func (e *JarClassPathEntry) ClassNames() ([]string, error) {
	var names []string
	err := e.Visit(func(f *zip.File) error {
		if name, ok := convertClassName(f.Name); ok {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading jar %s: %w", e.jarFile, err)
	}
	return names, nil
}

// convertClassName turns a jar entry name into a dotted class name:
// "java/util/Map$Entry.class" -> "java.util.Map.Entry".  Metadata entries
// and anonymous or local classes are skipped.
func convertClassName(entry string) (string, bool) {
	if strings.HasPrefix(entry, "META-INF/") {
		return "", false
	}
	name := strings.TrimSuffix(entry, classFileSuffix)
	if strings.HasSuffix(name, "module-info") || strings.HasSuffix(name, "package-info") {
		return "", false
	}
	parts := strings.Split(name, "$")
	for _, part := range parts[1:] {
		if part == "" || (part[0] >= '0' && part[0] <= '9') {
			return "", false
		}
	}
	name = strings.ReplaceAll(name, "/", ".")
	name = strings.ReplaceAll(name, "$", ".")
	return name, true
}

// ExpandJars resolves the glob patterns to a list of jar files.  Patterns
// without glob metacharacters are returned as-is.
func ExpandJars(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad jar pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		if len(matches) == 0 && !hasMeta(pattern) {
			matches = []string{pattern}
		}
		files = append(files, matches...)
	}
	return files, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
