// Package token implements the two-pass WKT tokenizer: pass 1
// normalizes a raw byte stream (whitespace folding, bracket/paren
// equivalence, quoted-string escape handling, balance checking), and
// pass 2 walks the normalized stream to produce a flat, level-annotated
// token sequence.
package token

import "github.com/goblimey/go-wktcrs/wkterror"

// MaxDocumentLength is the largest WKT document this tokenizer accepts,
// in bytes, matching OGC_BUFF_MAX in original_source/include/libogc.h.
const MaxDocumentLength = 4095

// MaxTokens is the largest number of tokens a single document may
// produce.
const MaxTokens = 512

// escapedQuote is the placeholder pass 1 substitutes for a doubled `""`
// escape sequence found inside a quoted region, so that pass 2 can find
// the real closing quote of a string unambiguously; it is converted back
// to a literal `"` when a token's text is extracted.
const escapedQuote = '\x01'

// Token is one entry in the flat, level-annotated sequence produced by
// Tokenize.
type Token struct {
	// Text is the token's content: the keyword for a token that opens an
	// object (Open is true), or the positional argument text otherwise.
	// Quoted-string escaping has already been undone; the surrounding
	// quotes are not included.
	Text string

	// Depth is the nesting depth at which this token appears: 0 for the
	// outermost object's keyword, 1 for that object's direct positional
	// arguments and sub-object keywords, and so on.
	Depth int

	// ArgIndex is this token's 0-based position within its parent
	// object's argument list (atoms and sub-object keywords alike); the
	// outermost keyword has ArgIndex 0.
	ArgIndex int

	// Quoted is true if this token was written as a quoted string in the
	// source text.
	Quoted bool

	// Open is true for a token that is itself an opening keyword (i.e.
	// immediately followed by `[`), false for an atomic positional token.
	Open bool
}

// Tokenize normalizes raw and splits it into a level-annotated token
// sequence. strict selects the parsing policy: under strict, unbalanced
// brackets and trailing garbage are errors; under lenient, missing
// closes are synthesized and trailing garbage is tolerated.
func Tokenize(raw []byte, strict bool) ([]Token, *wkterror.Error) {
	if len(raw) == 0 {
		return nil, wkterror.New("wkt", wkterror.ErrEmpty)
	}
	normalized, tail, werr := normalize(raw, strict)
	if werr != nil {
		return nil, werr
	}
	tokens, werr := structure(normalized)
	if werr != nil {
		return nil, werr
	}
	_ = tail // trailing garbage beyond the outermost close; lenient mode ignores it by construction.
	return tokens, nil
}

// normalize runs pass 1. It returns the rewritten stream (bracket depth
// fully balanced) and, if strict is false and the document continues
// past the point where the outermost object closed, the ignored tail.
func normalize(raw []byte, strict bool) (out []byte, tail []byte, werr *wkterror.Error) {
	i := 0
	n := len(raw)

	// Skip leading whitespace; the first significant byte must be a letter.
	for i < n && isSpace(raw[i]) {
		i++
	}
	if i >= n {
		return nil, nil, wkterror.New("wkt", wkterror.ErrEmpty)
	}
	if !isLetter(raw[i]) {
		return nil, nil, wkterror.New("wkt", wkterror.ErrInvalidSyntax)
	}

	buf := make([]byte, 0, n)
	depth := 0
	inQuote := false
	closedOutermost := false

	appendByte := func(b byte) *wkterror.Error {
		if len(buf) >= MaxDocumentLength {
			return wkterror.New("wkt", wkterror.ErrTooLong)
		}
		buf = append(buf, b)
		return nil
	}

	// nextSignificant returns the next non-whitespace byte after raw[pos],
	// or 0 if none remains (skipping only outside-quote whitespace, which
	// is always the case here since both call sites occur outside quotes).
	nextSignificant := func(pos int) (byte, int) {
		j := pos
		for j < n && isSpace(raw[j]) {
			j++
		}
		if j >= n {
			return 0, j
		}
		return raw[j], j
	}

	for i < n {
		c := raw[i]

		if !inQuote {
			switch {
			case isSpace(c):
				i++
				continue
			case c == '(' || c == '[':
				if werr = appendByte('['); werr != nil {
					return nil, nil, werr
				}
				depth++
				i++
			case c == ')' || c == ']':
				if depth == 0 {
					return nil, nil, wkterror.New("wkt", wkterror.ErrTooManyCloseTokens)
				}
				if werr = appendByte(']'); werr != nil {
					return nil, nil, werr
				}
				depth--
				i++
				if depth == 0 {
					closedOutermost = true
				}
				nb, nj := nextSignificant(i)
				if nb != 0 && nb != ']' && nb != ',' {
					if closedOutermost {
						if !strict {
							tail = raw[i:]
							i = n
							continue
						}
						return nil, nil, wkterror.New("wkt", wkterror.ErrTooManyTokens)
					}
					return nil, nil, wkterror.New("wkt", wkterror.ErrExpectingToken)
				}
				_ = nj
			case c == '"':
				inQuote = true
				if werr = appendByte('"'); werr != nil {
					return nil, nil, werr
				}
				i++
			default:
				if werr = appendByte(c); werr != nil {
					return nil, nil, werr
				}
				i++
			}
			continue
		}

		// Inside quotes.
		switch {
		case c == '"':
			if i+1 < n && raw[i+1] == '"' {
				if werr = appendByte(escapedQuote); werr != nil {
					return nil, nil, werr
				}
				i += 2
				continue
			}
			inQuote = false
			if werr = appendByte('"'); werr != nil {
				return nil, nil, werr
			}
			i++
			nb, _ := nextSignificant(i)
			if nb != 0 && nb != ',' && nb != ']' {
				return nil, nil, wkterror.New("wkt", wkterror.ErrExpectingToken)
			}
		case isSpace(c):
			// Collapse any run of whitespace to a single space, but drop
			// it entirely if it is leading (buffer empty or last written
			// byte is the opening quote) or trailing (handled when the
			// closing quote is written, below).
			j := i
			for j < n && isSpace(raw[j]) {
				j++
			}
			if len(buf) > 0 && buf[len(buf)-1] != '"' {
				// Peek ahead: if the rest of the quoted region is only
				// whitespace before the closing quote, this run is
				// trailing and must be dropped.
				k := j
				for k < n && raw[k] != '"' {
					if !isSpace(raw[k]) {
						break
					}
					k++
				}
				if k < n && raw[k] == '"' && k == j && !(k+1 < n && raw[k+1] == '"') {
					i = j
					continue
				}
				if werr = appendByte(' '); werr != nil {
					return nil, nil, werr
				}
			}
			i = j
		default:
			if werr = appendByte(c); werr != nil {
				return nil, nil, werr
			}
			i++
		}
	}

	if inQuote {
		return nil, nil, wkterror.New("wkt", wkterror.ErrUnbalancedQuotes)
	}
	if depth > 0 {
		if strict {
			return nil, nil, wkterror.New("wkt", wkterror.ErrTooManyOpenTokens)
		}
		for ; depth > 0; depth-- {
			if werr = appendByte(']'); werr != nil {
				return nil, nil, werr
			}
		}
	}

	return buf, tail, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// structure runs pass 2: it walks the normalized stream and emits token
// records, tracking depth and per-level argument index, and turning
// each escapedQuote back into a literal `"` within quoted tokens.
func structure(normalized []byte) ([]Token, *wkterror.Error) {
	var tokens []Token
	depth := 0
	argIndex := []int{0} // argIndex[d] is the next argument index to assign at depth d.

	i := 0
	n := len(normalized)
	for i < n {
		c := normalized[i]
		switch c {
		case '[':
			// The substring just scanned (if any) is a keyword; it is
			// emitted by the default case below before we ever see '['.
			depth++
			if depth >= len(argIndex) {
				argIndex = append(argIndex, 0)
			}
			argIndex[depth] = 0
			i++
		case ']':
			depth--
			i++
		case ',':
			i++
		default:
			text, quoted, next := scanAtom(normalized, i)
			i = next
			tokenDepth := depth
			idx := argIndex[tokenDepth]
			argIndex[tokenDepth] = idx + 1
			open := i < n && normalized[i] == '['
			tokens = append(tokens, Token{
				Text:     text,
				Depth:    tokenDepth,
				ArgIndex: idx,
				Quoted:   quoted,
				Open:     open,
			})
			if len(tokens) > MaxTokens {
				return nil, wkterror.New("wkt", wkterror.ErrMaxTokensExceeded)
			}
		}
	}
	return tokens, nil
}

// scanAtom isolates the next substring starting at i, which runs up to
// (but not including) the next unescaped ',' '[' ']' delimiter, or to the
// end of a quoted region. It returns the token text (quotes stripped,
// escaped quotes folded back to '"') and whether the atom was quoted.
func scanAtom(s []byte, i int) (text string, quoted bool, next int) {
	n := len(s)
	if i < n && s[i] == '"' {
		quoted = true
		j := i + 1
		for j < n && s[j] != '"' {
			j++
		}
		inner := s[i+1 : j]
		text = unfoldEscapes(inner)
		next = j + 1
		return text, quoted, next
	}
	j := i
	for j < n && s[j] != ',' && s[j] != '[' && s[j] != ']' {
		j++
	}
	return string(s[i:j]), false, j
}

func unfoldEscapes(s []byte) string {
	out := make([]byte, len(s))
	for i, b := range s {
		if b == escapedQuote {
			out[i] = '"'
		} else {
			out[i] = b
		}
	}
	return string(out)
}

// End scans forward from tokens[start], whose Depth is the level d,
// until it finds the first index whose Depth is no greater than d (i.e.
// past this object's closing bracket) or the end of the slice.
func End(tokens []Token, start int) int {
	if start >= len(tokens) {
		return start
	}
	d := tokens[start].Depth
	i := start + 1
	for i < len(tokens) && tokens[i].Depth > d {
		i++
	}
	return i
}

// DirectChildren returns the slice of tokens immediately owned by the
// object starting at tokens[start]: every token at depth
// tokens[start].Depth+1 up to End(tokens, start).
func DirectChildren(tokens []Token, start int) []Token {
	if start >= len(tokens) {
		return nil
	}
	d := tokens[start].Depth + 1
	end := End(tokens, start)
	var out []Token
	for i := start + 1; i < end; i++ {
		if tokens[i].Depth == d {
			out = append(out, tokens[i])
		}
	}
	return out
}
