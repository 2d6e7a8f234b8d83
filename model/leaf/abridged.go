package leaf

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// AbridgedTransformation carries an
// ABRIDGEDTRANSFORMATION["name",METHOD[...],PARAMETER[...]*,id*]
// object: the coordinate operation embedded directly inside a BoundCRS,
// sharing the method/parameter shape of Conversion but never carrying
// its own source/target CRS references (those belong to the owning
// BoundCRS).
type AbridgedTransformation struct{ conversionCore }

var abridgedTransformationKeywords = parsekit.Keywords{Primary: "ABRIDGEDTRANSFORMATION"}

func NewAbridgedTransformation(name string, method *Method) (*AbridgedTransformation, *wkterror.Error) {
	core, werr := newConversionCore(model.TagAbridgedTransformation, abridgedTransformationKeywords.Primary, name, method)
	if werr != nil {
		return nil, werr
	}
	return &AbridgedTransformation{core}, nil
}

func (a *AbridgedTransformation) AddParameter(p *Parameter) bool         { return a.params.Add(p) }
func (a *AbridgedTransformation) AddParameterFile(p *ParameterFile) bool { return a.pfiles.Add(p) }
func (a *AbridgedTransformation) AddIdentifier(id *Identifier) *wkterror.Error {
	return a.addIdentifier(abridgedTransformationKeywords.Primary, id)
}
func (a *AbridgedTransformation) Name() string    { return a.name }
func (a *AbridgedTransformation) Method() *Method { return a.method }
func (a *AbridgedTransformation) Key() string     { return "abridgedtransformation" }

func AbridgedTransformationFromTokens(tokens []token.Token, start int) (*AbridgedTransformation, int, *wkterror.Error) {
	core, end, werr := conversionFromTokensCore(abridgedTransformationKeywords.Primary, abridgedTransformationKeywords, model.TagAbridgedTransformation, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &AbridgedTransformation{core}, end, nil
}

func (a *AbridgedTransformation) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !a.Visible() {
		return
	}
	a.toWKT(abridgedTransformationKeywords.Primary, buf, opts)
}

func (a *AbridgedTransformation) Clone() *AbridgedTransformation {
	return &AbridgedTransformation{a.clone()}
}

func (a *AbridgedTransformation) Destroy() { a.destroy() }
