package token

import (
	"errors"
	"testing"
)

type tokTest struct {
	in    string
	types []TokenType
	e     error
}

func TestTokenizeOK(t *testing.T) {
	tests := []tokTest{
		{in: "null", types: []TokenType{TNull}},
		{in: "None", types: []TokenType{TNull}},
		{in: "true", types: []TokenType{TTrue}},
		{in: "True", types: []TokenType{TTrue}},
		{in: "false", types: []TokenType{TFalse}},
		{in: "False", types: []TokenType{TFalse}},
		{in: "42", types: []TokenType{TInt}},
		{in: "-7", types: []TokenType{TInt}},
		{in: "+7", types: []TokenType{TInt}},
		{in: "1.5", types: []TokenType{TFloat}},
		{in: "1e14", types: []TokenType{TFloat}},
		{in: "-2.5e-3", types: []TokenType{TFloat}},
		{in: "Infinity", types: []TokenType{TInf}},
		{in: "-Infinity", types: []TokenType{TNegInf}},
		{in: "+Infinity", types: []TokenType{TInf}},
		{in: "NaN", types: []TokenType{TNaN}},
		{in: `"hi"`, types: []TokenType{TString}},
		{in: `'hi'`, types: []TokenType{TString}},
		{in: "${a.b}", types: []TokenType{TRef}},
		{in: "${a + b}", types: []TokenType{TRef}},
		{in: "[1, 2]", types: []TokenType{TLSquare, TInt, TComma, TInt, TRSquare}},
		{in: "(1,)", types: []TokenType{TLParen, TInt, TComma, TRParen}},
		{
			in:    `{"k": 1}`,
			types: []TokenType{TLCurl, TString, TColon, TInt, TRCurl},
		},
		{in: " \t1 # trailing\n", types: []TokenType{TInt}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tt.in))
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.in, err)
			}
			if len(toks) != len(tt.types) {
				t.Fatalf("Tokenize(%q) = %v tokens, want %v", tt.in, len(toks), len(tt.types))
			}
			for i, tok := range toks {
				if tok.Type != tt.types[i] {
					t.Errorf("token %d: got %s, want %s", i, tok.Type, tt.types[i])
				}
			}
		})
	}
}

func TestTokenizeErrs(t *testing.T) {
	tests := []tokTest{
		{in: "bareword", e: ErrToken},
		{in: "'unterminated", e: ErrUnterminated},
		{in: "${unclosed", e: ErrReference},
		{in: "$x", e: ErrToken},
		{in: "01", e: ErrNumberLeadingZero},
		{in: "1.", e: ErrToken},
		{in: "-x", e: ErrNumber},
		{in: "\x00", e: ErrToken},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tt.in))
			if !errors.Is(err, tt.e) {
				t.Fatalf("Tokenize(%q) err = %v, want %v", tt.in, err, tt.e)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `"hi\n"`, want: "hi\n"},
		{in: `'it\'s'`, want: "it's"},
		{in: "${a.b + 1}", want: "a.b + 1"},
		{in: "42", want: "42"},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.in, err)
		}
		if got := toks[0].String(); got != tt.want {
			t.Errorf("Token(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{
		"",
		"plain",
		"with space",
		"it's",
		`she said "hi"`,
		"line\nbreak",
		"tab\there",
		`back\slash`,
	} {
		for _, preferSingle := range []bool{false, true} {
			q := Quote(v, preferSingle)
			if got := QuotedToString([]byte(q)); got != v {
				t.Errorf("Quote(%q, %v) = %s, decodes to %q", v, preferSingle, q, got)
			}
		}
	}
}
