package token

import (
	"strings"
	"unicode/utf8"
)

// NeedsQuote reports whether a string cannot appear bare as a path
// component and must be quoted to round-trip.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return strings.ContainsAny(v, ".'\"")
}

// Quote renders v as a quoted string literal. The quote style is
// chosen to minimize escaping: double quotes unless v contains more
// double quotes than single quotes.
func Quote(v string, preferSingle bool) string {
	ndq := strings.Count(v, `"`)
	nsq := strings.Count(v, `'`)
	q := byte('"')
	if ndq > nsq || (preferSingle && ndq >= nsq) {
		q = '\''
	}
	d := make([]byte, 1, len(v)+2)
	d[0] = q
	for _, r := range v {
		switch r {
		case rune(q):
			d = append(d, '\\', q)
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = utf8.AppendRune(d, r)
		}
	}
	return string(append(d, q))
}

// QuotedToString decodes a quoted string literal, including its
// surrounding quotes, into the string it denotes.
func QuotedToString(d []byte) string {
	if len(d) < 2 {
		return string(d)
	}
	d = d[1 : len(d)-1]
	if !strings.Contains(string(d), `\`) {
		return string(d)
	}
	res := make([]byte, 0, len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' || i == len(d)-1 {
			res = append(res, c)
			continue
		}
		i++
		switch d[i] {
		case 'n':
			res = append(res, '\n')
		case 'r':
			res = append(res, '\r')
		case 't':
			res = append(res, '\t')
		case 'b':
			res = append(res, '\b')
		case 'f':
			res = append(res, '\f')
		case '\\', '\'', '"':
			res = append(res, d[i])
		default:
			res = append(res, '\\', d[i])
		}
	}
	return string(res)
}

// QuotedLen scans a quoted string starting at d[0] (a quote byte) and
// returns the number of bytes it spans, including both quotes.
func QuotedLen(d []byte) (int, error) {
	return quoted(d)
}

// quoted scans a quoted string starting at d[0] (a quote byte) and
// returns the number of bytes consumed, including both quotes.
func quoted(d []byte) (int, error) {
	q := d[0]
	i := 1
	for i < len(d) {
		switch d[i] {
		case '\\':
			i += 2
		case q:
			return i + 1, nil
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}
