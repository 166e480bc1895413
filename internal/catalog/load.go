package catalog

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommandTimeout bounds the catalog subprocess; a shell that takes
// longer than this to dump its own command table is treated as absent.
const DefaultCommandTimeout = 5 * time.Second

// Source describes where the catalog comes from. Acquisition tries the
// subprocess first, then the file, and degrades to an empty catalog when
// both fail — a missing catalog is a valid state, never an error.
type Source struct {
	Command string // command line that prints the catalog JSON on stdout
	File    string // fallback path to a catalog JSON file
	Timeout time.Duration
	Debugf  func(format string, args ...any)
}

// Load acquires the catalog from the source.
//
// It never returns an error: every acquisition or parse failure is logged to
// the debug channel and collapses to an empty catalog.
func (s Source) Load(ctx context.Context) []CommandEntry {
	data := s.runCommand(ctx)
	if data == nil {
		s.debugf("falling back to catalog file %s", s.File)
		data = s.readFile()
	}
	if data == nil {
		s.debugf("no catalog available")
		return []CommandEntry{}
	}

	entries, err := Parse(data)
	if err != nil {
		s.debugf("catalog parse error: %v", err)
		return []CommandEntry{}
	}
	s.debugf("loaded %d commands", len(entries))
	return entries
}

// runCommand invokes the catalog subprocess and returns its stdout, or nil
// on any failure (missing binary, non-zero exit, timeout).
func (s Source) runCommand(ctx context.Context) []byte {
	argv := strings.Fields(s.Command)
	if len(argv) == 0 {
		return nil
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.debugf("running catalog command: %s", s.Command)
	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		s.debugf("catalog command failed: %v (%s)", err, strings.TrimSpace(stderr.String()))
		return nil
	}
	return stdout.Bytes()
}

func (s Source) readFile() []byte {
	if s.File == "" {
		return nil
	}
	data, err := os.ReadFile(s.File)
	if err != nil {
		return nil
	}
	return data
}

func (s Source) debugf(format string, args ...any) {
	if s.Debugf != nil {
		s.Debugf(format, args...)
	}
}
