package token

// number scans a decimal number at the start of d, after any sign has
// been consumed. It returns the number of bytes and whether the number
// has a fractional or exponent part.
func number(d []byte) (int, bool, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[0] == '0' {
		return 0, false, ErrNumberLeadingZero
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	if f+e == 0 {
		return digits, false, nil
	}
	return digits + f + e, true, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return 1 + n
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
