package trim

// DecodeString decodes a string from d and trims it.
func DecodeString(d Decoder) (string, error) {
	var s string
	if err := d.Decode(&s); err != nil {
		return "", err
	}
	return Space(&s), nil
}

// DecodeStrings decodes a list of strings from d and trims every element.
// Order, length and duplicates are preserved.
func DecodeStrings(d Decoder) ([]string, error) {
	var ss []string
	if err := d.Decode(&ss); err != nil {
		return nil, err
	}
	for i := range ss {
		Space(&ss[i])
	}
	return ss, nil
}

// DecodeOptional decodes an optional string from d. A null value is
// returned as nil without trimming. A present value is trimmed, and nil is
// returned if nothing is left.
func DecodeOptional(d Decoder) (*string, error) {
	var s *string
	if err := d.Decode(&s); err != nil {
		return nil, err
	}
	if s == nil || Space(s) == "" {
		return nil, nil //nolint:nilnil // nil is the absent value
	}
	return s, nil
}

// DecodeSet decodes a list of strings from d, trims every element and
// collects them into a [Set]. Elements that are equal after trimming
// collapse into one, so the set may be smaller than the input.
func DecodeSet(d Decoder) (Set, error) {
	var items []string
	if err := d.Decode(&items); err != nil {
		return Set{}, err
	}
	return NewSet(items...), nil
}
