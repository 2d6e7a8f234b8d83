package coordop

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/model/crsobj"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// BoundCRS carries a BOUNDCRS[SOURCECRS[...],TARGETCRS[...],
// ABRIDGEDTRANSFORMATION[...]] object: a CRS tied to
// another (typically WGS84) by a fixed, low-accuracy transformation, so
// that data in the source CRS can be approximately transformed without
// looking up a full coordinate operation.
type BoundCRS struct {
	model.Base
	sourceCRS      crsobj.Component
	targetCRS      crsobj.Component
	transformation *leaf.AbridgedTransformation
}

var boundCRSKeywords = parsekit.Keywords{Primary: "BOUNDCRS"}

func NewBoundCRS(source, target crsobj.Component, transform *leaf.AbridgedTransformation) (*BoundCRS, *wkterror.Error) {
	if source == nil {
		return nil, wkterror.New(boundCRSKeywords.Primary, wkterror.ErrMissingSourceCRS)
	}
	if target == nil {
		return nil, wkterror.New(boundCRSKeywords.Primary, wkterror.ErrMissingTargetCRS)
	}
	if transform == nil {
		return nil, wkterror.New(boundCRSKeywords.Primary, wkterror.ErrMissingAbridgedTransformation)
	}
	return &BoundCRS{
		Base:           model.NewBase(model.TagBoundCRS),
		sourceCRS:      source,
		targetCRS:      target,
		transformation: transform,
	}, nil
}

func (b *BoundCRS) SourceCRS() crsobj.Component                    { return b.sourceCRS }
func (b *BoundCRS) TargetCRS() crsobj.Component                    { return b.targetCRS }
func (b *BoundCRS) Transformation() *leaf.AbridgedTransformation   { return b.transformation }
func (b *BoundCRS) Key() string                                    { return "boundcrs:" + b.sourceCRS.Key() }

func BoundCRSFromTokens(tokens []token.Token, start int) (*BoundCRS, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, boundCRSKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	var source, target crsobj.Component
	var transform *leaf.AbridgedTransformation
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case strnum.EqualFold(sub.Text, "SOURCECRS"):
			crs, werr := parseWrappedCRS(tokens, idx, boundCRSKeywords.Primary, wkterror.ErrInvalidFirstCRS)
			if werr != nil {
				return nil, end, werr
			}
			source = crs
		case strnum.EqualFold(sub.Text, "TARGETCRS"):
			crs, werr := parseWrappedCRS(tokens, idx, boundCRSKeywords.Primary, wkterror.ErrInvalidSecondCRS)
			if werr != nil {
				return nil, end, werr
			}
			target = crs
		case strnum.EqualFold(sub.Text, "ABRIDGEDTRANSFORMATION"):
			t, _, werr := leaf.AbridgedTransformationFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			transform = t
		}
	}
	b, werr := NewBoundCRS(source, target, transform)
	if werr != nil {
		return nil, end, werr
	}
	return b, end, nil
}

func (b *BoundCRS) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !b.Visible() {
		return
	}
	buf.WriteKeyword(boundCRSKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteRaw(wrapCRS("SOURCECRS", b.sourceCRS, opts))
	f.WriteRaw(wrapCRS("TARGETCRS", b.targetCRS, opts))
	tbuf := serialize.NewBuffer(opts)
	b.transformation.ToWKT(tbuf, opts)
	f.WriteRaw(tbuf.String())
	buf.Close()
}

func (b *BoundCRS) Clone() *BoundCRS {
	clone := *b
	clone.transformation = b.transformation.Clone()
	return &clone
}

func (b *BoundCRS) Destroy() {
	if b == nil {
		return
	}
	b.transformation.Destroy()
}
