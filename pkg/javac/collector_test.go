package javac

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const fakeJavac = `#!/bin/sh
cat >&2 <<'OUT'
$1:3: error: cannot find symbol
  symbol:   class List
  location: class A
$1:4: error: cannot find symbol
  symbol:   class File
  location: class A
2 errors
OUT
exit 1
`

func writeExecutable(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "javac")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o755))
	return filename
}

func TestCollectorCollect(t *testing.T) {
	collector := NewCollector(&CollectorOptions{
		Executable: writeExecutable(t, fakeJavac),
		Logger:     zerolog.Nop(),
	})

	got, err := collector.Collect(context.Background(), "A.java")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"File", "List"}, got.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCollectorCleanCompile(t *testing.T) {
	collector := NewCollector(&CollectorOptions{
		Executable: writeExecutable(t, "#!/bin/sh\nexit 0\n"),
		Logger:     zerolog.Nop(),
	})

	got, err := collector.Collect(context.Background(), "A.java")
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func TestCollectorMissingExecutable(t *testing.T) {
	collector := NewCollector(&CollectorOptions{
		Executable: filepath.Join(t.TempDir(), "no-such-javac"),
		Logger:     zerolog.Nop(),
	})

	_, err := collector.Collect(context.Background(), "A.java")
	require.Error(t, err)

	var invocationErr *InvocationError
	require.True(t, errors.As(err, &invocationErr), "want *InvocationError, got %T", err)
}

func TestNewCollectorDefaults(t *testing.T) {
	collector := NewCollector(&CollectorOptions{})
	require.Equal(t, DefaultExecutable, collector.executable)
}
