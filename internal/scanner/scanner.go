// Package scanner applies a compiled pattern to lines read from files,
// directory trees, or a stream, printing the lines that match.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/funkybooboo/bgrep/regex"
)

// Scanner matches a single pattern against one or more line sources. The
// filesystem is abstracted so tests can run against an in-memory fs.
type Scanner struct {
	fs  afero.Fs
	pat *regex.Pattern
	out io.Writer
	log *zap.Logger
}

func New(fs afero.Fs, pat *regex.Pattern, out io.Writer, log *zap.Logger) *Scanner {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{fs: fs, pat: pat, out: out, log: log}
}

// ScanReader matches the pattern against each line of r, printing matching
// lines prefixed with "name:" when prefix is set. It reports whether any
// line matched.
func (s *Scanner) ScanReader(name string, r io.Reader, prefix bool) (bool, error) {
	sc := bufio.NewScanner(r)
	found := false
	for sc.Scan() {
		line := sc.Text()
		if !s.pat.MatchString(line) {
			continue
		}
		s.log.Debug("line matched", zap.String("source", name))
		if prefix {
			fmt.Fprintf(s.out, "%s:%s\n", name, line)
		} else {
			fmt.Fprintln(s.out, line)
		}
		found = true
	}
	if err := sc.Err(); err != nil {
		return found, errors.Wrapf(err, "reading %s", name)
	}
	return found, nil
}

// ScanFile opens path on the scanner's filesystem and scans it.
func (s *Scanner) ScanFile(path string, prefix bool) (bool, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return s.ScanReader(path, f, prefix)
}

// Walk recursively scans every regular file under root. Unreadable files
// are skipped, not fatal; matched lines always carry the file prefix.
func (s *Scanner) Walk(root string) (bool, error) {
	found := false
	err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		ok, serr := s.ScanFile(path, true)
		if serr != nil {
			s.log.Debug("skipping file", zap.String("path", path), zap.Error(serr))
			return nil
		}
		if ok {
			found = true
		}
		return nil
	})
	if err != nil {
		return found, errors.Wrapf(err, "walking %s", root)
	}
	return found, nil
}
