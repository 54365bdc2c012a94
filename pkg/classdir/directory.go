package classdir

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/dghubble/trie"
)

// Directory is an indexed, read-only set of fully-qualified class names.
// Names are bucketed by their final dot-separated segment and each bucket is
// kept sorted, so lookups return candidates in a stable order.
type Directory struct {
	// known holds every name in a dot-segmented trie.
	known *trie.PathTrie
	// bySimpleName maps "List" -> ["android.util.List", "java.util.List"]
	bySimpleName map[string][]string
	size         int
}

// New constructs a Directory from the given fully-qualified names.
// Duplicates and blank entries are ignored.
func New(names ...string) *Directory {
	d := &Directory{
		known: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: nameSegmenter,
		}),
		bySimpleName: make(map[string][]string),
	}
	for _, name := range names {
		d.put(name)
	}
	for _, bucket := range d.bySimpleName {
		sort.Strings(bucket)
	}
	return d
}

// Read parses a line-oriented class list.  Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func Read(in io.Reader) (*Directory, error) {
	var names []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(names...), nil
}

func (d *Directory) put(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if !d.known.Put(name, name) {
		// already present
		return
	}
	simple := SimpleName(name)
	d.bySimpleName[simple] = append(d.bySimpleName[simple], name)
	d.size++
}

// Len returns the number of distinct names in the directory.
func (d *Directory) Len() int {
	return d.size
}

// Lookup returns every name whose final segment equals the given simple
// name, in lexicographic order.  The returned slice is a copy.
func (d *Directory) Lookup(simple string) []string {
	bucket := d.bySimpleName[simple]
	if len(bucket) == 0 {
		return nil
	}
	return append([]string(nil), bucket...)
}

// Suffix returns every name that ends with "." + partial, for partially
// qualified names such as "util.List".
func (d *Directory) Suffix(partial string) []string {
	suffix := "." + partial
	var matches []string
	for _, name := range d.bySimpleName[SimpleName(partial)] {
		if strings.HasSuffix(name, suffix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Contains reports whether the exact name is known.
func (d *Directory) Contains(name string) bool {
	return d.known.Get(name) != nil
}

// Enclosing returns the longest known name that is equal to or a dotted
// prefix of the given name.  For example, with "java.util.Map" known,
// "java.util.Map.Entry" yields "java.util.Map".
func (d *Directory) Enclosing(name string) (string, bool) {
	var last interface{}
	d.known.WalkPath(name, func(key string, value interface{}) error {
		last = value
		return nil
	})
	if last == nil {
		return "", false
	}
	return last.(string), true
}

// SimpleName returns the final dot-separated segment of name.
func SimpleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// nameSegmenter segments string key paths by dot separators. For example,
// "a.b.c" -> ("a", 1), (".b", 3), (".c", -1) in successive calls. It does
// not allocate any heap memory.
func nameSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
