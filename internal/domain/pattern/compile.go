// Package pattern compiles date/time pattern strings into token sequences.
//
// The grammar is a run-length micro-language: a run of one field character
// (d, f, F, g, h, H, j, K, m, M, s, t, y, z) is a field, everything else is
// literal text. Text between matching ' or " quotes is always literal, and a
// doubled quote character emits one literal quote.
package pattern

import "strings"

// Compile turns a pattern into tokens in a single left-to-right scan.
// It never fails: an unterminated quote is kept as literal text.
func Compile(p string) Sequence {
	var (
		tokens []Token
		buf    strings.Builder
		quote  byte
	)
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, LiteralToken(buf.String()))
			buf.Reset()
		}
	}

	for pos := 0; pos < len(p); {
		c := p[pos]
		pos++

		switch {
		case quote == 0 && IsFieldChar(c):
			flush()
			n := 1
			for limit := MaxRun(c); n < limit && pos < len(p) && p[pos] == c; n++ {
				pos++
			}
			tokens = append(tokens, FieldToken(symbolFor(c, n)))

		case c == '\'' || c == '"':
			switch {
			case pos < len(p) && p[pos] == c:
				// doubled quote
				buf.WriteByte(c)
				pos++
			case quote == 0 && hasQuoteAhead(p, pos, c):
				quote = c
			case c == quote:
				flush()
				quote = 0
			default:
				buf.WriteByte(c)
			}

		default:
			buf.WriteByte(c)
		}
	}
	flush()

	return Sequence{tokens: tokens}
}

// hasQuoteAhead scans p[from:] for a closing quote character q.
func hasQuoteAhead(p string, from int, q byte) bool {
	for i := from; i < len(p); i++ {
		if p[i] == q {
			return true
		}
	}
	return false
}
