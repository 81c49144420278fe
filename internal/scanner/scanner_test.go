package scanner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/bgrep/regex"
)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, body := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0o644))
	}
	return fs
}

func TestScanReader(t *testing.T) {
	var out bytes.Buffer
	s := New(afero.NewMemMapFs(), regex.MustCompile(`\d+`), &out, nil)

	in := strings.NewReader("no digits\norder 42\nplain\nid 7\n")
	found, err := s.ScanReader("stdin", in, false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "order 42\nid 7\n", out.String())
}

func TestScanReaderNoMatch(t *testing.T) {
	var out bytes.Buffer
	s := New(afero.NewMemMapFs(), regex.MustCompile(`^never$`), &out, nil)

	found, err := s.ScanReader("stdin", strings.NewReader("a\nb\n"), false)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, out.String())
}

func TestScanFileWithPrefix(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/logs/app.log": "boot ok\nerror: disk full\nshutdown\n",
	})
	var out bytes.Buffer
	s := New(fs, regex.MustCompile(`error: (\w+)`), &out, nil)

	found, err := s.ScanFile("/logs/app.log", true)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "/logs/app.log:error: disk full\n", out.String())
}

func TestScanFileMissing(t *testing.T) {
	s := New(afero.NewMemMapFs(), regex.MustCompile(`x`), &bytes.Buffer{}, nil)
	_, err := s.ScanFile("/nope", false)
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/data/a.txt":      "cat and cat\n",
		"/data/sub/b.txt":  "nothing here\n",
		"/data/sub/c.txt":  "dog and dog\n",
		"/data/sub/d.misc": "dog and cat\n",
	})
	var out bytes.Buffer
	s := New(fs, regex.MustCompile(`(cat|dog) and \1`), &out, nil)

	found, err := s.Walk("/data")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, out.String(), "/data/a.txt:cat and cat")
	assert.Contains(t, out.String(), "/data/sub/c.txt:dog and dog")
	assert.NotContains(t, out.String(), "d.misc")
	assert.NotContains(t, out.String(), "b.txt")
}

func TestWalkNoMatches(t *testing.T) {
	fs := memFs(t, map[string]string{"/x/a": "aaa\n"})
	var out bytes.Buffer
	s := New(fs, regex.MustCompile(`zzz`), &out, nil)

	found, err := s.Walk("/x")
	require.NoError(t, err)
	assert.False(t, found)
}
