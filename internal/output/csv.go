package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"serptally/internal/serp"
)

// Appender writes (term, hostname, count) rows to a CSV file opened in
// append mode, so repeated runs against the same file accumulate rows.
// Writes are serialized by a mutex; concurrent completions cannot
// interleave partial rows.
type Appender struct {
	mu   sync.Mutex
	file *os.File
}

// NewAppender opens (or creates) the output file for appending.
func NewAppender(path string) (*Appender, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("output: open %s: %w", path, err)
	}
	return &Appender{file: f}, nil
}

// Append writes one row per hostname in the tally. No header row is
// emitted.
func (a *Appender) Append(term string, tally serp.Tally) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	w := csv.NewWriter(a.file)
	for host, count := range tally {
		if err := w.Write([]string{term, host, strconv.Itoa(count)}); err != nil {
			return fmt.Errorf("output: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("output: flush: %w", err)
	}
	return nil
}

func (a *Appender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.file.Close()
}
