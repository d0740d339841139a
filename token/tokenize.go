// Package token tokenizes the extended literal grammar: scalars,
// quoted strings, lists, tuples, mapping literals and ${...}
// references.
package token

// Tokenize scans src into tokens, appending to dst. Whitespace and
// "#" comments are skipped. Any byte sequence the grammar does not
// recognize is a tokenize error; callers decide whether that means a
// malformed value or a plain bareword string.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
			continue
		case c == '#':
			for i < n && src[i] != '\n' {
				i++
			}
			continue
		case c == '[':
			dst = append(dst, Token{Type: TLSquare, Pos: i, Bytes: src[i : i+1]})
			i++
		case c == ']':
			dst = append(dst, Token{Type: TRSquare, Pos: i, Bytes: src[i : i+1]})
			i++
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Pos: i, Bytes: src[i : i+1]})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Pos: i, Bytes: src[i : i+1]})
			i++
		case c == '{':
			dst = append(dst, Token{Type: TLCurl, Pos: i, Bytes: src[i : i+1]})
			i++
		case c == '}':
			dst = append(dst, Token{Type: TRCurl, Pos: i, Bytes: src[i : i+1]})
			i++
		case c == ',':
			dst = append(dst, Token{Type: TComma, Pos: i, Bytes: src[i : i+1]})
			i++
		case c == ':':
			dst = append(dst, Token{Type: TColon, Pos: i, Bytes: src[i : i+1]})
			i++
		case c == '\'' || c == '"':
			m, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, i)
			}
			dst = append(dst, Token{Type: TString, Pos: i, Bytes: src[i : i+m]})
			i += m
		case c == '$':
			if i+1 >= n || src[i+1] != '{' {
				return nil, NewTokenizeErr(ErrToken, i)
			}
			m, err := reference(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, i)
			}
			dst = append(dst, Token{Type: TRef, Pos: i, Bytes: src[i : i+m]})
			i += m
		case c == '+' || c == '-' || asciiDigit(c):
			tok, m, err := signedNumber(src[i:], i)
			if err != nil {
				return nil, NewTokenizeErr(err, i)
			}
			dst = append(dst, tok)
			i += m
		case isWordStart(c):
			m := wordLen(src[i:])
			tok, err := keywordToken(src[i:i+m], i)
			if err != nil {
				return nil, NewTokenizeErr(err, i)
			}
			dst = append(dst, tok)
			i += m
		default:
			return nil, NewTokenizeErr(ErrToken, i)
		}
	}
	return dst, nil
}

func signedNumber(d []byte, pos int) (Token, int, error) {
	i := 0
	if d[0] == '+' || d[0] == '-' {
		i++
	}
	if i < len(d) && isWordStart(d[i]) {
		// -Infinity and +Infinity spellings
		m := wordLen(d[i:])
		if string(d[i:i+m]) != "Infinity" {
			return Token{}, 0, ErrNumber
		}
		tt := TInf
		if d[0] == '-' {
			tt = TNegInf
		}
		return Token{Type: tt, Pos: pos, Bytes: d[:i+m]}, i + m, nil
	}
	m, isFloat, err := number(d[i:])
	if err != nil {
		return Token{}, 0, err
	}
	tt := TInt
	if isFloat {
		tt = TFloat
	}
	return Token{Type: tt, Pos: pos, Bytes: d[:i+m]}, i + m, nil
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func wordLen(d []byte) int {
	i := 0
	for i < len(d) {
		c := d[i]
		if c == '_' || asciiDigit(c) ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			i++
			continue
		}
		break
	}
	return i
}

func keywordToken(word []byte, pos int) (Token, error) {
	tt, ok := map[string]TokenType{
		"null":     TNull,
		"None":     TNull,
		"true":     TTrue,
		"True":     TTrue,
		"false":    TFalse,
		"False":    TFalse,
		"Infinity": TInf,
		"NaN":      TNaN,
	}[string(word)]
	if !ok {
		return Token{}, ErrToken
	}
	return Token{Type: tt, Pos: pos, Bytes: word}, nil
}
