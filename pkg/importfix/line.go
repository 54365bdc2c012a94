package importfix

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

const importToken = "import"

// Line is a single source line.  Text excludes the line terminator, which is
// kept separately so that unmodified lines can be written back exactly.
type Line struct {
	Text string
	// EOL is "\n", "\r\n", or "" for a final line without a terminator.
	EOL string
}

// String returns the line including its terminator.
func (l Line) String() string {
	return l.Text + l.EOL
}

// ReadLines splits the input into lines, preserving terminators.
func ReadLines(in io.Reader) ([]Line, error) {
	var lines []Line
	reader := bufio.NewReader(in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			lines = append(lines, splitTerminator(text))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// JoinLines concatenates lines back into file content.
func JoinLines(lines []Line) []byte {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line.Text)
		buf.WriteString(line.EOL)
	}
	return buf.Bytes()
}

func splitTerminator(text string) Line {
	if strings.HasSuffix(text, "\r\n") {
		return Line{Text: text[:len(text)-2], EOL: "\r\n"}
	}
	if strings.HasSuffix(text, "\n") {
		return Line{Text: text[:len(text)-1], EOL: "\n"}
	}
	return Line{Text: text}
}

// ParseImport extracts the name referenced by an import-shaped line, one
// that begins with the token "import" followed by whitespace.  The trailing
// semicolon and surrounding whitespace are removed:
//
//	"import List;" -> "List"
//	"import java.util.List;" -> "java.util.List"
func ParseImport(text string) (string, bool) {
	if !strings.HasPrefix(text, importToken) {
		return "", false
	}
	rest := text[len(importToken):]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	name := strings.TrimSpace(rest)
	name = strings.TrimSpace(strings.TrimSuffix(name, ";"))
	if name == "" {
		return "", false
	}
	return name, true
}

// isPackageLine reports whether the line is a package declaration.
func isPackageLine(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, "package ") && strings.HasSuffix(text, ";")
}

// lineEnding returns the terminator of the first terminated line, or "\n".
func lineEnding(lines []Line) string {
	for _, line := range lines {
		if line.EOL != "" {
			return line.EOL
		}
	}
	return "\n"
}
