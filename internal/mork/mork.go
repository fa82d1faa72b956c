// Package mork reads the unread message count from Thunderbird .msf files.
//
// Mailbox summary files use the Mork format, an append-only log of key/value
// writes. The cell "(^A2=<hex>)" holds the unread count, where ^A2 refers to
// the column name. Only the last write reflects the current value, so the
// file is searched from the end rather than parsed.
package mork

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// UnreadMarker precedes the hexadecimal unread count in a mailbox file.
const UnreadMarker = "(^A2="

// ErrUnreadableFile is returned when a mailbox file cannot be read.
var ErrUnreadableFile = errors.New("failed to read mailbox")

// Unread returns the last unread count recorded in text, or 0 when it is
// missing or malformed.
func Unread(text string) uint32 {
	i := strings.LastIndex(text, UnreadMarker)
	if i < 0 {
		return 0
	}
	value, _, found := strings.Cut(text[i+len(UnreadMarker):], ")")
	if !found {
		return 0
	}
	n, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// Counter reads mailbox files from a filesystem.
type Counter struct {
	Fs afero.Fs
}

// NewCounter returns a Counter on the operating system filesystem.
func NewCounter() *Counter {
	return &Counter{Fs: afero.NewOsFs()}
}

// CountUnread returns the unread count of the mailbox file at path.
func (c *Counter) CountUnread(path string) (uint32, error) {
	data, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
	}
	return Unread(string(data)), nil
}
