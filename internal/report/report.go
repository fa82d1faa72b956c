// Package report formats the per-mailbox and total unread counts.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mahyarmirrashed/tbunread/internal/config"
)

// Result is the unread count of one mailbox file.
type Result struct {
	Path  string
	Count uint32
}

// Total sums the counts of results.
func Total(results []Result) uint64 {
	var total uint64
	for _, r := range results {
		total += uint64(r.Count)
	}
	return total
}

// TotalLine builds the total text without the trailing newline.
func TotalLine(cfg config.Config, total uint64) string {
	count := strconv.FormatUint(total, 10)
	if cfg.NoZero && total == 0 {
		count = ""
	}
	line := cfg.Before + count + cfg.After
	if cfg.Trim {
		line = strings.TrimSpace(line)
	}
	return line
}

// Write prints the location lines, if enabled, followed by the total line.
func Write(w io.Writer, cfg config.Config, results []Result) error {
	if cfg.Location {
		for _, r := range results {
			if cfg.NoZero && r.Count == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d %s\n", r.Count, r.Path); err != nil {
				return err
			}
		}
	}

	line := TotalLine(cfg, Total(results))
	if !cfg.NoNewline {
		line += "\n"
	}
	_, err := io.WriteString(w, line)
	return err
}
