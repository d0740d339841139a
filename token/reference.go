package token

// reference scans a "${...}" reference token at the start of d,
// honoring nested braces, and returns the number of bytes consumed
// including the closing brace. The inner expression is not parsed
// here; it is carried verbatim for later evaluation.
func reference(d []byte) (int, error) {
	// caller has checked d starts with "${"
	depth := 1
	i := 2
	for i < len(d) {
		switch d[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
		i++
	}
	return 0, ErrReference
}
