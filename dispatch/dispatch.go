// Package dispatch is the top-level entry point: it tokenizes raw WKT
// text and routes the opening keyword to the matching object variant's
// constructor, mirroring the teacher's switch-based message dispatch
// rather than a reflection-driven registry.
package dispatch

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/model/coordop"
	"github.com/goblimey/go-wktcrs/model/crsobj"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// Object is the interface every top-level variant this package can
// return satisfies: a single CRS, a CompoundCRS, a CoordinateOperation,
// a BoundCRS, or a unit.
type Object interface {
	model.Object
	ToWKT(buf *serialize.Buffer, opts serialize.Options)
	Key() string
}

// Parse tokenizes raw and dispatches its opening keyword to the
// matching object variant. strict controls the tokenizer's
// bracket-balance and trailing-text checks and every variant's
// too-many-arguments check; the MaxTokens cap applies either way.
// Callers running concurrent parses with different strictness must
// synchronize externally.
func Parse(raw []byte, strict bool) (Object, *wkterror.Error) {
	previous := model.SetStrict(strict)
	defer model.SetStrict(previous)

	tokens, werr := token.Tokenize(raw, strict)
	if werr != nil {
		return nil, werr
	}
	if len(tokens) == 0 {
		return nil, wkterror.New("", wkterror.ErrInsufficientTokens)
	}
	return dispatch(tokens, 0)
}

// ParseAt dispatches the object starting at an existing token index,
// returning the next unread index alongside the result. It lets a caller
// that already holds a token slice parse one object from it without
// re-tokenizing.
func ParseAt(tokens []token.Token, start int) (Object, int, *wkterror.Error) {
	obj, werr := dispatch(tokens, start)
	return obj, token.End(tokens, start), werr
}

func dispatch(tokens []token.Token, start int) (Object, *wkterror.Error) {
	text := tokens[start].Text
	switch {
	case strnum.EqualFold(text, "COORDINATEOPERATION"):
		op, _, werr := coordop.CoordinateOperationFromTokens(tokens, start)
		return asObject(op, werr)
	case strnum.EqualFold(text, "BOUNDCRS"):
		b, _, werr := coordop.BoundCRSFromTokens(tokens, start)
		return asObject(b, werr)
	case strnum.EqualFold(text, "LENGTHUNIT") || strnum.EqualFold(text, "ANGLEUNIT") ||
		strnum.EqualFold(text, "SCALEUNIT") || strnum.EqualFold(text, "TIMEUNIT") ||
		strnum.EqualFold(text, "PARAMETRICUNIT") || strnum.EqualFold(text, "UNIT"):
		u, _, werr := leaf.UnitFromTokens(tokens, start)
		return asObject(u, werr)
	default:
		c, _, werr := crsobj.ParseCRS(tokens, start)
		if werr != nil {
			return nil, werr
		}
		return c, nil
	}
}

// Emit renders obj to WKT text under opts, applying the expansion pass
// once at the outermost call if either expansion flag is set.
func Emit(obj Object, opts serialize.Options) string {
	buf := serialize.NewBuffer(opts)
	obj.ToWKT(buf, opts)
	compact := buf.String()
	if !opts.Expand() {
		return compact
	}
	return serialize.Expand(compact, serialize.IndentUnit(opts), "")
}

// asObject adapts a (*T, error) FromTokens result to (Object, error),
// the same shape the generic helper in model/crsobj solves for
// CompoundCRS members: a concrete *T's nil isn't directly assignable to
// a nil Object without this check.
func asObject[T Object](v T, werr *wkterror.Error) (Object, *wkterror.Error) {
	if werr != nil {
		return nil, werr
	}
	return v, nil
}
