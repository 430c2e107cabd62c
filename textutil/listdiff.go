package textutil

import (
	"fmt"
	"os"
	"slices"
)

// ListDiff is the difference between two filename listings.
type ListDiff struct {
	Removed []string `json:"removed"` // present only in the first listing
	Added   []string `json:"added"`   // present only in the second listing
}

// Empty reports whether the listings had the same members.
func (d ListDiff) Empty() bool {
	return len(d.Removed) == 0 && len(d.Added) == 0
}

// CompareLists returns the names of before missing from after (Removed) and
// the names of after missing from before (Added), each sorted ascending.
// Membership is checked as a set, but repeated names are kept as they occur.
func CompareLists(before, after []string) ListDiff {
	return ListDiff{
		Removed: missingFrom(before, after),
		Added:   missingFrom(after, before),
	}
}

// missingFrom returns the elements of names that are not in other, sorted.
func missingFrom(names, other []string) []string {
	members := make(map[string]struct{}, len(other))
	for _, name := range other {
		members[name] = struct{}{}
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := members[name]; !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// ListDirectory returns the entry names of the directory at path, sorted by
// name. Subdirectories are listed by name like files.
func ListDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
