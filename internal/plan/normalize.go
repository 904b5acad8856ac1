package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vmunix/nexusdl/internal/manifest"
	"github.com/vmunix/nexusdl/pkg/gamedomain"
)

// Normalize maps raw descriptors to canonical entries. Manifest producers
// are third-party and inconsistent, so normalization is tolerant: a bad node
// becomes a Problem and the rest of the batch goes through. Entries are
// deduplicated on (domain, modID, fileID) keeping the first-seen name, and
// input order is preserved for display numbering.
func Normalize(descs []manifest.RawDescriptor, domains *gamedomain.Table) ([]Entry, []Problem) {
	var entries []Entry
	var problems []Problem
	seen := make(map[Key]bool)

	for _, d := range descs {
		slug, ok := domains.Resolve(d.GameName)
		if !ok {
			problems = append(problems, Problem{
				Source: sourceName(d),
				Err:    domainProblem(d.GameName, domains),
			})
			continue
		}

		modID, err := coerceID(d.ModID)
		if err != nil {
			problems = append(problems, Problem{
				Source: sourceName(d),
				Err:    fmt.Errorf("%w: mod id %v", ErrInvalidIdentifier, d.ModID),
			})
			continue
		}
		fileID, err := coerceID(d.FileID)
		if err != nil {
			problems = append(problems, Problem{
				Source: sourceName(d),
				Err:    fmt.Errorf("%w: file id %v", ErrInvalidIdentifier, d.FileID),
			})
			continue
		}

		e := Entry{Domain: slug, ModID: modID, FileID: fileID, Name: d.Name}
		if e.Name == "" {
			e.Name = fmt.Sprintf("%s/%d/%d", slug, modID, fileID)
		}
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		entries = append(entries, e)
	}

	return entries, problems
}

// domainProblem builds the soft error for an unmapped game name, with a
// closest-match hint when one is plausible.
func domainProblem(name string, domains *gamedomain.Table) error {
	if suggestion, ok := domains.Suggest(name); ok {
		return fmt.Errorf("%w: %q (closest known: %s)", ErrUnknownDomain, name, suggestion)
	}
	return fmt.Errorf("%w: %q", ErrUnknownDomain, name)
}

func sourceName(d manifest.RawDescriptor) string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("descriptor %q/%v/%v", d.GameName, d.ModID, d.FileID)
}

// coerceID converts a raw identifier to a positive int. Manifests carry IDs
// both as integers and as numeric strings.
func coerceID(v any) (int, error) {
	var n int64
	switch v := v.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not numeric: %q", v)
		}
		n = i
	default:
		return 0, fmt.Errorf("unsupported value %T", v)
	}

	if n <= 0 {
		return 0, fmt.Errorf("not positive: %d", n)
	}
	if n > int64(int(^uint(0)>>1)) {
		return 0, fmt.Errorf("out of range: %d", n)
	}
	return int(n), nil
}
