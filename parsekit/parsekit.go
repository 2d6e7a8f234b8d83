// Package parsekit factors out the uniform five-step parse protocol every
// variant's "from tokens" constructor follows: keyword
// recognition across a variant's primary/alternate/legacy forms, span
// computation, positional arity checking, and the duplicate-vs-unknown
// handling of child sub-objects. Centralizing this here is what keeps
// each of the ~50 variant constructors in model/* to a handful of lines
// of boilerplate plus its own field-specific logic.
package parsekit

import (
	"strings"

	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// Keywords names the recognized spellings of a variant's opening
// keyword: Primary is the modern form this library emits by default,
// Alternates are synonyms accepted but never emitted, and Legacy is the
// WKT1 form used under OldSyntax.
type Keywords struct {
	Primary    string
	Alternates []string
	Legacy     string
}

// Match reports whether text names this variant under any recognized
// spelling, matching case-insensitively, and whether the
// match was through the legacy spelling.
func (k Keywords) Match(text string) (matched bool, legacy bool) {
	if strings.EqualFold(text, k.Primary) {
		return true, false
	}
	if k.Legacy != "" && strings.EqualFold(text, k.Legacy) {
		return true, true
	}
	for _, alt := range k.Alternates {
		if strings.EqualFold(text, alt) {
			return true, false
		}
	}
	return false, false
}

// CheckKeyword implements step 1: verify that the keyword
// at tokens[start] is recognized by this variant.
func CheckKeyword(tokens []token.Token, start int, kws Keywords) (legacy bool, werr *wkterror.Error) {
	if start >= len(tokens) {
		return false, wkterror.New(kws.Primary, wkterror.ErrIndexOutOfRange)
	}
	matched, legacy := kws.Match(tokens[start].Text)
	if !matched {
		return false, wkterror.NewWithString(kws.Primary, wkterror.ErrUnknownKeyword, tokens[start].Text)
	}
	return legacy, nil
}

// Span implements step 2: the direct children of the
// object starting at tokens[start], and the index just past its closing
// bracket.
func Span(tokens []token.Token, start int) (children []token.Token, end int) {
	return token.DirectChildren(tokens, start), token.End(tokens, start)
}

// Atoms returns the subsequence of children that are positional atoms
// (not themselves opening a sub-object), preserving order.
func Atoms(children []token.Token) []token.Token {
	var out []token.Token
	for _, c := range children {
		if !c.Open {
			out = append(out, c)
		}
	}
	return out
}

// SubObjects returns the subsequence of children that open a sub-object.
func SubObjects(children []token.Token) []token.Token {
	var out []token.Token
	for _, c := range children {
		if c.Open {
			out = append(out, c)
		}
	}
	return out
}

// CheckArity implements min/max enforcement: too
// few atoms is always an error; too many is an error only under strict.
func CheckArity(keyword string, got, min, max int) *wkterror.Error {
	if got < min {
		return wkterror.NewWithInt(keyword, wkterror.ErrInsufficientTokens, got)
	}
	if max >= 0 && got > max && model.Strict() {
		return wkterror.NewWithInt(keyword, wkterror.ErrTooManyTokens, got)
	}
	return nil
}

// Match1 is a one-argument convenience wrapper around Match for call
// sites (the per-variant sub-object dispatch loop) that only need the
// boolean, not the legacy flag.
func (k Keywords) Match1(text string) bool {
	matched, _ := k.Match(text)
	return matched
}

// IndexInTokens recovers sub's position within tokens. DirectChildren
// returns copies, so identity can't be used; (Depth, ArgIndex) is unique
// within a single object's child list and is cheap to scan for at the
// token counts this library accepts (<=512).
func IndexInTokens(tokens []token.Token, sub token.Token) int {
	for i := range tokens {
		if tokens[i].Depth == sub.Depth && tokens[i].ArgIndex == sub.ArgIndex {
			return i
		}
	}
	return -1
}

// IndexOf finds the token within atoms at the given position, returning
// ok=false (rather than panicking) if strict mode would have already
// rejected this input via CheckArity and lenient mode is silently
// dropping the shortfall or excess.
func IndexOf(atoms []token.Token, pos int) (token.Token, bool) {
	if pos < 0 || pos >= len(atoms) {
		return token.Token{}, false
	}
	return atoms[pos], true
}
