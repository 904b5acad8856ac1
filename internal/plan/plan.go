// Package plan turns raw manifest descriptors into an ordered list of
// download jobs: normalization, deduplication and selection resolution.
package plan

import (
	"errors"
	"fmt"
)

// Entry is a canonical, validated descriptor. Domain is always a recognized
// game slug and the IDs are positive.
type Entry struct {
	Domain string
	ModID  int
	FileID int
	Name   string
}

// Key identifies an entry for deduplication.
type Key struct {
	Domain string
	ModID  int
	FileID int
}

// Key returns the entry's dedup identity.
func (e Entry) Key() Key {
	return Key{Domain: e.Domain, ModID: e.ModID, FileID: e.FileID}
}

// Job is one unit of work for the download runner. Immutable once built;
// FileName is the local target name.
type Job struct {
	Domain   string
	ModID    int
	FileID   int
	Name     string
	FileName string
}

// Soft error reasons. These never abort a batch; they accumulate as Problems
// next to whatever valid output was produced.
var (
	ErrUnknownDomain     = errors.New("unrecognized game domain")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrIndexOutOfRange   = errors.New("selection out of range")
)

// Problem records a soft error for one rejected input.
type Problem struct {
	Source string // what was rejected: a display name, raw domain, or index
	Err    error
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %v", p.Source, p.Err)
}
