package classsource

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stackb/javimp/pkg/config"
)

func newPageServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/java/allclasses-frame.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(javadocPage))
	})
	mux.HandleFunc("/android/classes.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(androidPage))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNetworkBuilderBuild(t *testing.T) {
	srv := newPageServer(t)

	jar := filepath.Join(t.TempDir(), "lib.jar")
	writeJar(t, jar, "java/util/List.class", "com/example/Widget.class")

	var progress bytes.Buffer
	b := NewNetworkBuilder(&NetworkBuilderOptions{
		Sources: []*config.Source{
			{Name: "java", URL: srv.URL + "/java/allclasses-frame.html", AnchorTarget: "classFrame"},
			{
				Name:        "android",
				URL:         srv.URL + "/android/classes.html",
				ParentClass: "jd-linkcol",
				TrimPrefix:  "https://developer.android.com/reference/",
			},
		},
		Jars:     []string{jar},
		Fetcher:  NewFetcher(5 * time.Second),
		Progress: mobyprogress.NewProgressOutput(mobyprogress.NewOut(&progress)),
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, b.Available())

	got, err := b.Build(context.Background())
	require.NoError(t, err)

	want := []string{
		"android.app.Activity",
		"android.util.List",
		"com.example.Widget",
		"java.util.List",
		"java.util.Map.Entry",
		"javax.swing.AbstractAction",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	require.Contains(t, progress.String(), "Fetching java classes")
}

func TestNetworkBuilderHTTPError(t *testing.T) {
	srv := newPageServer(t)

	b := NewNetworkBuilder(&NetworkBuilderOptions{
		Sources: []*config.Source{
			{Name: "missing", URL: srv.URL + "/nope.html", AnchorTarget: "classFrame"},
		},
		Fetcher: NewFetcher(5 * time.Second),
		Logger:  zerolog.Nop(),
	})

	_, err := b.Build(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "source missing")
	require.Contains(t, err.Error(), "HTTP 404")
}

func TestNetworkBuilderNothingConfigured(t *testing.T) {
	b := NewNetworkBuilder(&NetworkBuilderOptions{Logger: zerolog.Nop()})
	err := b.Available()
	require.True(t, errors.Is(err, ErrUnavailable))

	_, err = b.Build(context.Background())
	require.True(t, errors.Is(err, ErrUnavailable))
}
