package importfix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stackb/javimp/pkg/classdir"
)

func TestSourceFileRewriteWrite(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "A.java")
	require.NoError(t, os.WriteFile(filename, []byte("import File;\nclass A {}\n"), 0o600))

	src, err := ReadSourceFile(filename)
	require.NoError(t, err)

	r := NewResolver(classdir.New("java.io.File"), &ResolverOptions{Logger: zerolog.Nop()})
	result := src.Rewrite(r, NewQueue())
	require.True(t, result.Changed)
	require.NoError(t, src.Write())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	if diff := cmp.Diff("import java.io.File;\nclass A {}\n", string(data)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	info, err := os.Stat(filename)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file should have been renamed")
}

func TestReadSourceFileMissing(t *testing.T) {
	_, err := ReadSourceFile(filepath.Join(t.TempDir(), "Missing.java"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}
