// Package logbook implements the append-only log streams kept by the
// daemon: plain text files with one timestamped line per event.
package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// DefaultTailLines is the number of lines shown when no count is given.
const DefaultTailLines = 20

// Logbook appends timestamped lines to a single file. The prefix is
// written between the timestamp and the message on every line.
type Logbook struct {
	path   string
	prefix string
}

func New(path, prefix string) *Logbook {
	return &Logbook{path: path, prefix: prefix}
}

// Path returns the log file location.
func (l *Logbook) Path() string {
	return l.path
}

// Append writes a single line of the form "[YYYY-MM-DD HH:MM:SS] <prefix><msg>".
func (l *Logbook) Append(msg string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s%s\n", time.Now().Format(timeLayout), l.prefix, msg)
	_, err = f.WriteString(line)
	return err
}

// Tail returns the last n lines of the log, oldest first. A missing log
// file yields an empty result, not an error.
func (l *Logbook) Tail(n int) ([]string, error) {
	if n <= 0 {
		n = DefaultTailLines
	}
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
