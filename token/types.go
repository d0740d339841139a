package token

import "fmt"

type TokenType int

const (
	TNull TokenType = iota
	TTrue
	TFalse
	TInt
	TFloat
	TInf
	TNegInf
	TNaN
	TString
	TRef
	TLSquare
	TRSquare
	TLParen
	TRParen
	TLCurl
	TRCurl
	TComma
	TColon
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInt:     "TInt",
		TFloat:   "TFloat",
		TInf:     "TInf",
		TNegInf:  "TNegInf",
		TNaN:     "TNaN",
		TString:  "TString",
		TRef:     "TRef",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TComma:   "TComma",
		TColon:   "TColon",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   int
	Bytes []byte
}

func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	case TRef:
		// strip the "${" ... "}" framing, the inner expression
		// is carried verbatim
		return string(t.Bytes[2 : len(t.Bytes)-1])
	default:
		return string(t.Bytes)
	}
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s at %d: %q", t.Type, t.Pos, t.Bytes)
}
