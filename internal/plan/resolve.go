package plan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Criterion selects entries from a displayed list. It is built once from
// user input and consumed exactly once by Resolve; the interactive shell is
// just a thin reader that constructs one of these.
type Criterion interface {
	criterion()
}

// All selects every entry in display order.
type All struct{}

// Indexes selects entries by their 1-based display numbers. Out-of-range
// indexes are soft errors; duplicates collapse to a single job; output
// follows display order, not the order the indexes were typed in.
type Indexes struct {
	List []int
}

// Filter selects entries whose display name or domain contains the text,
// case-insensitively. Zero matches is a valid, empty result.
type Filter struct {
	Text string
}

func (All) criterion()     {}
func (Indexes) criterion() {}
func (Filter) criterion()  {}

// Resolve produces the ordered job list for a criterion. The entry slice
// must be the same ordering that was displayed to the user, so index
// selections line up with the numbers they saw.
func Resolve(entries []Entry, c Criterion) ([]Job, []Problem) {
	switch c := c.(type) {
	case All:
		return jobs(entries), nil
	case Indexes:
		return resolveIndexes(entries, c.List)
	case Filter:
		return resolveFilter(entries, c.Text), nil
	default:
		return nil, []Problem{{Source: fmt.Sprintf("%T", c), Err: fmt.Errorf("unsupported criterion")}}
	}
}

func resolveIndexes(entries []Entry, list []int) ([]Job, []Problem) {
	var problems []Problem
	picked := make(map[int]bool)

	for _, idx := range list {
		if idx < 1 || idx > len(entries) {
			problems = append(problems, Problem{
				Source: strconv.Itoa(idx),
				Err:    fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, idx, len(entries)),
			})
			continue
		}
		picked[idx] = true
	}

	indexes := make([]int, 0, len(picked))
	for idx := range picked {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	selected := make([]Entry, 0, len(indexes))
	for _, idx := range indexes {
		selected = append(selected, entries[idx-1])
	}
	return jobs(selected), problems
}

func resolveFilter(entries []Entry, text string) []Job {
	needle := strings.ToLower(text)
	var selected []Entry
	for _, e := range entries {
		haystack := strings.ToLower(e.Name + " " + e.Domain)
		if strings.Contains(haystack, needle) {
			selected = append(selected, e)
		}
	}
	return jobs(selected)
}

func jobs(entries []Entry) []Job {
	out := make([]Job, 0, len(entries))
	for _, e := range entries {
		out = append(out, Job{
			Domain:   e.Domain,
			ModID:    e.ModID,
			FileID:   e.FileID,
			Name:     e.Name,
			FileName: targetFileName(e),
		})
	}
	return out
}

func targetFileName(e Entry) string {
	name := SanitizeFileName(e.Name)
	if name == "" {
		name = fmt.Sprintf("%s-%d-%d", e.Domain, e.ModID, e.FileID)
	}
	return name
}

// ParseSelection turns one line of interactive input into a criterion:
// "all" selects everything, a comma- or space-separated list of integers is
// an index selection, anything else is filter text.
func ParseSelection(input string) (Criterion, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty selection")
	}
	if strings.EqualFold(input, "all") {
		return All{}, nil
	}

	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	indexes := make([]int, 0, len(fields))
	numeric := true
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			numeric = false
			break
		}
		indexes = append(indexes, n)
	}
	if numeric && len(indexes) > 0 {
		return Indexes{List: indexes}, nil
	}
	return Filter{Text: input}, nil
}
