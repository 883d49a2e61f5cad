package core

import (
	"slices"
	"strings"
)

// DeletePolicy controls how Delete treats positions outside the list.
type DeletePolicy int

const (
	// DeleteLenient skips out-of-range positions and reports them.
	DeleteLenient DeletePolicy = iota
	// DeleteStrict aborts the whole batch on the first out-of-range position.
	DeleteStrict
)

// ValidateValue checks that value can be stored as a single note line.
func ValidateValue(value string) error {
	if value == "" {
		return ErrMissingValue
	}
	if strings.ContainsAny(value, "\r\n") {
		return ErrMultilineValue
	}
	return nil
}

// Insert returns a copy of l with value placed at the 1-based index.
// A nil index appends. The valid range is [1, len+1].
func (l NoteList) Insert(value string, index *int) (NoteList, error) {
	if err := ValidateValue(value); err != nil {
		return nil, err
	}

	pos := len(l)
	if index != nil {
		if *index < 1 || *index > len(l)+1 {
			return nil, &IndexError{Index: *index}
		}
		pos = *index - 1
	}

	out := make(NoteList, 0, len(l)+1)
	out = append(out, l[:pos]...)
	out = append(out, value)
	out = append(out, l[pos:]...)
	return out, nil
}

// Change returns a copy of l with the line at the 1-based index replaced.
// A nil index targets the last line. The valid range is [1, len].
func (l NoteList) Change(value string, index *int) (NoteList, error) {
	if err := ValidateValue(value); err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return nil, ErrEmptyList
	}

	pos := len(l) - 1
	if index != nil {
		if *index < 1 || *index > len(l) {
			return nil, &IndexError{Index: *index}
		}
		pos = *index - 1
	}

	out := slices.Clone(l)
	out[pos] = value
	return out, nil
}

// Remove returns a copy of l without the given 1-based positions.
// With no indices the last line is removed. Positions are matched against the
// original indexing, so duplicates and ordering of indices do not matter.
// It reports the removed and skipped positions in ascending order.
func (l NoteList) Remove(indices []int, policy DeletePolicy) (out NoteList, removed, skipped []int, err error) {
	if len(l) == 0 {
		return nil, nil, nil, ErrEmptyList
	}

	if len(indices) == 0 {
		return slices.Clone(l[:len(l)-1]), []int{len(l)}, nil, nil
	}

	unique := slices.Clone(indices)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	drop := make(map[int]bool, len(unique))
	for _, i := range unique {
		if i < 1 || i > len(l) {
			if policy == DeleteStrict {
				return nil, nil, nil, &IndexError{Index: i}
			}
			skipped = append(skipped, i)
			continue
		}
		drop[i-1] = true
		removed = append(removed, i)
	}

	out = make(NoteList, 0, len(l)-len(removed))
	for i, line := range l {
		if !drop[i] {
			out = append(out, line)
		}
	}
	return out, removed, skipped, nil
}
