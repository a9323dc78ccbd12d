package transform

import "github.com/Gobd/trim"

// TrimSpace trims every string in place. Nil pointers are skipped.
func TrimSpace(fields ...*string) {
	for _, f := range fields {
		trim.Space(f)
	}
}

// TrimSlices trims every element of every slice in place, keeping order,
// length and duplicates.
func TrimSlices(fields ...*[]string) {
	for _, f := range fields {
		if f == nil {
			continue
		}
		for i := range *f {
			trim.Space(&(*f)[i])
		}
	}
}

// BlankToNil replaces every optional string with a trimmed copy, or with nil
// when nothing is left. The strings originally pointed to are not modified.
func BlankToNil(fields ...**string) {
	for _, f := range fields {
		if f == nil || *f == nil {
			continue
		}
		v := **f
		if trim.Space(&v) == "" {
			*f = nil
			continue
		}
		*f = &v
	}
}
