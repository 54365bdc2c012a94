package importfix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackb/javimp/pkg/classdir"
)

func resolveString(t *testing.T, classes []string, pending []string, in string, afterPackage bool) (string, *Result, string) {
	t.Helper()

	var diagnostics bytes.Buffer
	r := NewResolver(classdir.New(classes...), &ResolverOptions{
		Diagnostics:  &diagnostics,
		AfterPackage: afterPackage,
		Logger:       zerolog.Nop(),
	})
	lines, err := ReadLines(strings.NewReader(in))
	require.NoError(t, err)

	result, remaining := r.Resolve(lines, NewQueue(pending...))
	require.Equal(t, 0, remaining.Len(), "pending queue must be drained")

	return string(JoinLines(result.Lines)), result, diagnostics.String()
}

func TestResolve(t *testing.T) {
	for name, tc := range map[string]struct {
		classes      []string
		pending      []string
		in           string
		afterPackage bool
		want         string
		wantNotFound []string
		wantDiag     string
	}{
		"degenerate": {},
		"plain lines pass through": {
			classes: []string{"java.util.List"},
			in:      "package a;\n\nclass A {\n  List<String> xs;\n}\n",
			want:    "package a;\n\nclass A {\n  List<String> xs;\n}\n",
		},
		"single import match": {
			classes: []string{"java.io.File"},
			in:      "import File;\nclass A {}\n",
			want:    "import java.io.File;\nclass A {}\n",
		},
		"multiple import matches are commented": {
			classes: []string{"java.util.List", "android.util.List", "java.awt.List"},
			in:      "import List;\nclass A {}\n",
			want:    "import android.util.List;\n//import java.awt.List;\n//import java.util.List;\nclass A {}\n",
		},
		"unknown import passes through": {
			classes: []string{"java.io.File"},
			in:      "import Foo;\n",
			want:    "import Foo;\n",
		},
		"qualified import is kept": {
			classes: []string{"java.util.List", "android.util.List"},
			in:      "import java.util.List;\n",
			want:    "import java.util.List;\n",
		},
		"qualified import keeps its spacing": {
			classes: []string{"java.util.List"},
			in:      "import java.util.List; \nimport  java.util.List;\n",
			want:    "import java.util.List; \nimport  java.util.List;\n",
		},
		"member of a known class is kept": {
			classes: []string{"java.util.Map"},
			in:      "import java.util.Map.Entry;\n",
			want:    "import java.util.Map.Entry;\n",
		},
		"nested class of a known outer class": {
			classes: []string{"java.util.Map", "com.example.Map"},
			in:      "import Map.Entry;\n",
			want:    "import com.example.Map.Entry;\n//import java.util.Map.Entry;\n",
		},
		"partially qualified import": {
			classes: []string{"java.util.List", "java.awt.List"},
			in:      "import util.List;\n",
			want:    "import java.util.List;\n",
		},
		"wildcard and static imports pass through": {
			classes: []string{"java.util.List"},
			in:      "import java.util.*;\nimport static java.lang.Math.max;\n",
			want:    "import java.util.*;\nimport static java.lang.Math.max;\n",
		},
		"pending single match": {
			classes: []string{"java.io.File"},
			pending: []string{"File"},
			in:      "class A {}\n",
			want:    "import java.io.File;\nclass A {}\n",
		},
		"pending with alternatives": {
			classes: []string{"java.util.List", "android.util.List"},
			pending: []string{"List"},
			in:      "class A {}\n",
			want:    "import android.util.List;  // alternative imports: java.util.List\nclass A {}\n",
		},
		"pending not found": {
			classes:      []string{"java.io.File"},
			pending:      []string{"Foo"},
			in:           "class A {}\n",
			want:         "class A {}\n",
			wantNotFound: []string{"Foo"},
			wantDiag:     "no import found for: Foo\n",
		},
		"pending are sorted": {
			classes: []string{"java.util.Map", "java.io.File"},
			pending: []string{"Map", "File"},
			in:      "class A {}\n",
			want:    "import java.io.File;\nimport java.util.Map;\nclass A {}\n",
		},
		"pending into empty file": {
			classes: []string{"java.io.File"},
			pending: []string{"File"},
			want:    "import java.io.File;\n",
		},
		"pending after package": {
			classes:      []string{"java.io.File"},
			pending:      []string{"File"},
			in:           "// header\npackage a.b;\n\nclass A {}\n",
			afterPackage: true,
			want:         "// header\npackage a.b;\nimport java.io.File;\n\nclass A {}\n",
		},
		"pending after package without package line": {
			classes:      []string{"java.io.File"},
			pending:      []string{"File"},
			in:           "class A {}\n",
			afterPackage: true,
			want:         "import java.io.File;\nclass A {}\n",
		},
		"pending after unterminated package line": {
			classes:      []string{"java.io.File"},
			pending:      []string{"File"},
			in:           "package a;",
			afterPackage: true,
			want:         "package a;\nimport java.io.File;\n",
		},
		"crlf is preserved": {
			classes: []string{"java.util.List", "android.util.List"},
			pending: []string{"List"},
			in:      "import List;\r\nclass A {}\r\n",
			want:    "import android.util.List;  // alternative imports: java.util.List\r\nimport android.util.List;\r\n//import java.util.List;\r\nclass A {}\r\n",
		},
		"unterminated import line": {
			classes: []string{"java.util.List", "android.util.List"},
			in:      "import List;",
			want:    "import android.util.List;\n//import java.util.List;",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, result, diag := resolveString(t, tc.classes, tc.pending, tc.in, tc.afterPackage)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("content (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantNotFound, result.NotFound); diff != "" {
				t.Errorf("not found (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantDiag, diag); diff != "" {
				t.Errorf("diagnostics (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.in != tc.want, result.Changed)
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	classes := []string{"java.util.List", "android.util.List", "java.io.File"}
	in := "package a;\nimport File;\nimport List;\nimport java.util.List; \n\nclass A {}\n"

	once, _, _ := resolveString(t, classes, []string{"List"}, in, false)
	twice, result, diag := resolveString(t, classes, nil, once, false)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second pass (-want +got):\n%s", diff)
	}
	assert.False(t, result.Changed)
	assert.Empty(t, diag)
}

func TestCandidates(t *testing.T) {
	r := NewResolver(classdir.New("java.util.List", "android.util.List", "java.util.Map"), nil)

	for name, tc := range map[string]struct {
		name string
		want []string
	}{
		"degenerate": {},
		"simple": {
			name: "List",
			want: []string{"android.util.List", "java.util.List"},
		},
		"exact": {
			name: "java.util.Map",
			want: []string{"java.util.Map"},
		},
		"suffix": {
			name: "util.Map",
			want: []string{"java.util.Map"},
		},
		"member of known class": {
			name: "java.util.Map.Entry",
			want: []string{"java.util.Map.Entry"},
		},
		"nested under simple outer": {
			name: "Map.Entry",
			want: []string{"java.util.Map.Entry"},
		},
		"miss": {
			name: "com.example.Map",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := r.Candidates(tc.name)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
