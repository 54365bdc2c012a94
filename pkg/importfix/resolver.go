package importfix

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ClassLookup is the read-only view of the class directory needed by the
// resolver.  *classdir.Directory implements it.
type ClassLookup interface {
	// Lookup returns the names whose final segment equals simple, sorted.
	Lookup(simple string) []string
	// Suffix returns the names ending in "." + partial, sorted.
	Suffix(partial string) []string
	// Contains reports whether the exact name is known.
	Contains(name string) bool
	// Enclosing returns the longest known name that is name itself or a
	// dotted prefix of it.
	Enclosing(name string) (string, bool)
}

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Diagnostics receives "no import found" messages.  Defaults to
	// io.Discard.
	Diagnostics io.Writer
	// AfterPackage places synthesized imports after the package declaration
	// rather than at the top of the file.
	AfterPackage bool
	Logger       zerolog.Logger
}

// Resolver rewrites import lines using a class directory.
type Resolver struct {
	classes      ClassLookup
	diagnostics  io.Writer
	afterPackage bool
	logger       zerolog.Logger
}

// Result describes the outcome of a single Resolve pass.
type Result struct {
	// Lines is the rewritten content.
	Lines []Line
	// Inserted lists the active imports synthesized for pending symbols.
	Inserted []string
	// Rewritten counts the import lines that were replaced.
	Rewritten int
	// NotFound lists the pending symbols with no directory match.
	NotFound []string
	// Changed is true when the content differs from the input.
	Changed bool
}

// NewResolver constructs a Resolver over the given classes.
func NewResolver(classes ClassLookup, options *ResolverOptions) *Resolver {
	if options == nil {
		options = &ResolverOptions{Logger: zerolog.Nop()}
	}
	diagnostics := options.Diagnostics
	if diagnostics == nil {
		diagnostics = io.Discard
	}
	return &Resolver{
		classes:      classes,
		diagnostics:  diagnostics,
		afterPackage: options.AfterPackage,
		logger:       options.Logger,
	}
}

// Candidates returns the fully-qualified names an import of the given name
// could refer to.  A simple name matches on the final segment.  A dotted
// name matches itself if it is known or is a member of a known class;
// otherwise any name it is a dotted suffix of, and finally the nested
// classes it names under a known outer class ("Map.Entry" ->
// "java.util.Map.Entry").
func (r *Resolver) Candidates(name string) []string {
	if !strings.Contains(name, ".") {
		return r.classes.Lookup(name)
	}
	if r.classes.Contains(name) {
		return []string{name}
	}
	if _, ok := r.classes.Enclosing(name); ok {
		return []string{name}
	}
	if matches := r.classes.Suffix(name); len(matches) > 0 {
		return matches
	}
	outer, member, _ := strings.Cut(name, ".")
	var matches []string
	for _, enclosing := range r.classes.Lookup(outer) {
		matches = append(matches, enclosing+"."+member)
	}
	return matches
}

// Resolve rewrites lines.  Pending symbols are drained into import lines at
// the insertion point; the remaining (empty) queue is returned.  Every
// import-shaped line with at least one candidate is replaced by one active
// import for the first candidate followed by commented-out alternatives.
// All other lines are passed through unchanged.
func (r *Resolver) Resolve(lines []Line, pending Queue) (*Result, Queue) {
	result := &Result{
		Lines: make([]Line, 0, len(lines)+pending.Len()),
	}
	eol := lineEnding(lines)

	insertAt := 0
	if r.afterPackage {
		for i, line := range lines {
			if isPackageLine(line.Text) {
				insertAt = i + 1
				break
			}
		}
	}

	for i, line := range lines {
		if i == insertAt {
			pending = r.drain(result, pending, eol)
		}
		r.rewrite(result, line, eol)
	}
	if insertAt >= len(lines) {
		// only the final line can lack a terminator
		if n := len(result.Lines); n > 0 && result.Lines[n-1].EOL == "" && pending.Len() > 0 {
			result.Lines[n-1].EOL = eol
		}
		pending = r.drain(result, pending, eol)
	}

	result.Changed = !bytes.Equal(JoinLines(lines), JoinLines(result.Lines))
	return result, pending
}

// drain consumes the queue, appending one import line per resolvable symbol.
func (r *Resolver) drain(result *Result, pending Queue, eol string) Queue {
	for pending.Len() > 0 {
		var sym string
		sym, pending = pending.Pop()

		matches := r.classes.Lookup(sym)
		if len(matches) == 0 {
			fmt.Fprintf(r.diagnostics, "no import found for: %s\n", sym)
			result.NotFound = append(result.NotFound, sym)
			continue
		}

		text := fmt.Sprintf("import %s;", matches[0])
		if len(matches) > 1 {
			text += "  // alternative imports: " + strings.Join(matches[1:], " ")
		}
		r.logger.Debug().Str("symbol", sym).Strs("matches", matches).Msg("inserted import")

		result.Lines = append(result.Lines, Line{Text: text, EOL: eol})
		result.Inserted = append(result.Inserted, matches[0])
	}
	return pending
}

func (r *Resolver) rewrite(result *Result, line Line, eol string) {
	name, ok := ParseImport(line.Text)
	if !ok {
		result.Lines = append(result.Lines, line)
		return
	}
	candidates := r.Candidates(name)
	if len(candidates) == 0 || (len(candidates) == 1 && candidates[0] == name) {
		// unknown or already qualified
		result.Lines = append(result.Lines, line)
		return
	}

	for i, candidate := range candidates {
		text := fmt.Sprintf("import %s;", candidate)
		if i > 0 {
			// multiple matches; keep alternatives as comments
			text = "//" + text
		}
		end := eol
		if i == len(candidates)-1 {
			end = line.EOL
		}
		result.Lines = append(result.Lines, Line{Text: text, EOL: end})
	}
	result.Rewritten++

	if len(candidates) > 1 {
		r.logger.Debug().Str("import", name).Strs("candidates", candidates).Msg("ambiguous import")
	}
}
