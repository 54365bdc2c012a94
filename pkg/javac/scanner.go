package javac

import (
	"bufio"
	"bytes"
	"sort"
	"strings"
)

// SymbolMarker is the token javac prints on the detail line of a
// "cannot find symbol" diagnostic:
//
//	A.java:5: error: cannot find symbol
//	    List<String> xs;
//	    ^
//	  symbol:   class List
//	  location: class A
const SymbolMarker = "symbol:"

// Scan returns the sorted, distinct names taken from the last
// space-separated token of every line containing SymbolMarker.
func Scan(output []byte) ([]string, error) {
	found := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if !strings.Contains(line, SymbolMarker) {
			continue
		}
		fields := strings.Split(line, " ")
		if name := fields[len(fields)-1]; name != "" && name != SymbolMarker {
			found[name] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	list := make([]string, 0, len(found))
	for k := range found {
		list = append(list, k)
	}
	sort.Strings(list)

	return list, nil
}
