package pattern

import "strings"

// Kind tells literal text apart from field tokens.
type Kind uint8

// Token kinds.
const (
	Literal Kind = iota
	Field
)

func (k Kind) String() string {
	if k == Field {
		return "field"
	}
	return "literal"
}

// Token is one element of a compiled pattern.
// Literal tokens carry Text, field tokens carry Symbol.
type Token struct {
	Kind   Kind
	Text   string
	Symbol Symbol
}

// LiteralToken creates a literal token.
func LiteralToken(text string) Token {
	return Token{Kind: Literal, Text: text}
}

// FieldToken creates a field token.
func FieldToken(sym Symbol) Token {
	return Token{Kind: Field, Symbol: sym}
}

// String renders a literal verbatim and a field as {code}.
func (t Token) String() string {
	if t.Kind == Field {
		return "{" + t.Symbol.Code() + "}"
	}
	return t.Text
}

// Sequence is an immutable compiled pattern.
type Sequence struct {
	tokens []Token
}

// NewSequence builds a sequence from tokens. The slice is copied.
func NewSequence(tokens ...Token) Sequence {
	return Sequence{tokens: append([]Token(nil), tokens...)}
}

// Len returns the number of tokens.
func (s Sequence) Len() int { return len(s.tokens) }

// At returns the i-th token.
func (s Sequence) At(i int) Token { return s.tokens[i] }

// Tokens returns a copy of the tokens.
func (s Sequence) Tokens() []Token {
	return append([]Token(nil), s.tokens...)
}

// Fields returns the field symbols in pattern order.
func (s Sequence) Fields() []Symbol {
	var out []Symbol
	for _, t := range s.tokens {
		if t.Kind == Field {
			out = append(out, t.Symbol)
		}
	}
	return out
}

// Equal reports whether both sequences hold the same tokens in the same order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s.tokens) != len(o.tokens) {
		return false
	}
	for i := range s.tokens {
		if s.tokens[i] != o.tokens[i] {
			return false
		}
	}
	return true
}

// String is the debug body: literal text unchanged, fields as {code}.
func (s Sequence) String() string {
	var b strings.Builder
	for _, t := range s.tokens {
		b.WriteString(t.String())
	}
	return b.String()
}
