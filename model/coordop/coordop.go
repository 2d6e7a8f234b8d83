// Package coordop implements the coordinate-operation family:
// CoordinateOperation (name, source/target CRS, method,
// parameters, accuracy) and BoundCRS (a CRS bound to another by an
// abridged transformation). Both depend on model/crsobj and model/leaf,
// matching the dependency order of the rest of the model tree.
package coordop

import (
	"github.com/goblimey/go-wktcrs/container"
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/model/crsobj"
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// MaxCoordinateOperationNameLength caps the operation's name.
const MaxCoordinateOperationNameLength = 79

// CoordinateOperation carries a
// COORDINATEOPERATION["name",SOURCECRS[...],TARGETCRS[...],
// METHOD[...],PARAMETER[...]*,PARAMETERFILE[...]*,
// INTERPOLATIONCRS[...]?,OPERATIONACCURACY[...]?,scope?,extents?,id*]
// object: a fully described coordinate transformation or conversion
// between two independently named CRSes.
type CoordinateOperation struct {
	model.Base
	name             string
	sourceCRS        crsobj.Component
	targetCRS        crsobj.Component
	interpolationCRS crsobj.Component
	method           *leaf.Method
	params           *container.Set[*leaf.Parameter]
	pfiles           *container.Set[*leaf.ParameterFile]
	accuracy         *leaf.OperationAccuracy
	scope            *leaf.Scope
	extents          *leaf.Extents
	ids              *idSet
}

var coordinateOperationKeywords = parsekit.Keywords{Primary: "COORDINATEOPERATION"}

// NewCoordinateOperation validates and constructs a CoordinateOperation.
// Source CRS, target CRS and method are all required.
func NewCoordinateOperation(name string, source, target crsobj.Component, method *leaf.Method) (*CoordinateOperation, *wkterror.Error) {
	if name == "" {
		return nil, wkterror.New(coordinateOperationKeywords.Primary, wkterror.ErrInsufficientTokens)
	}
	if len(name) > MaxCoordinateOperationNameLength {
		return nil, wkterror.NewWithInt(coordinateOperationKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	if source == nil {
		return nil, wkterror.New(coordinateOperationKeywords.Primary, wkterror.ErrMissingSourceCRS)
	}
	if target == nil {
		return nil, wkterror.New(coordinateOperationKeywords.Primary, wkterror.ErrMissingTargetCRS)
	}
	if method == nil {
		return nil, wkterror.New(coordinateOperationKeywords.Primary, wkterror.ErrMissingMethod)
	}
	return &CoordinateOperation{
		Base:      model.NewBase(model.TagCoordinateOperation),
		name:      name,
		sourceCRS: source,
		targetCRS: target,
		method:    method,
		params:    container.NewSet[*leaf.Parameter](),
		pfiles:    container.NewSet[*leaf.ParameterFile](),
	}, nil
}

func (c *CoordinateOperation) Name() string                     { return c.name }
func (c *CoordinateOperation) SourceCRS() crsobj.Component       { return c.sourceCRS }
func (c *CoordinateOperation) TargetCRS() crsobj.Component       { return c.targetCRS }
func (c *CoordinateOperation) Method() *leaf.Method              { return c.method }
func (c *CoordinateOperation) Accuracy() *leaf.OperationAccuracy { return c.accuracy }
func (c *CoordinateOperation) Key() string                       { return strnum.FoldKey(c.name) }

func (c *CoordinateOperation) SetInterpolationCRS(crs crsobj.Component) { c.interpolationCRS = crs }
func (c *CoordinateOperation) SetAccuracy(a *leaf.OperationAccuracy)    { c.accuracy = a }
func (c *CoordinateOperation) SetScope(s *leaf.Scope)                  { c.scope = s }
func (c *CoordinateOperation) AddParameter(p *leaf.Parameter) bool     { return c.params.Add(p) }
func (c *CoordinateOperation) AddParameterFile(p *leaf.ParameterFile) bool {
	return c.pfiles.Add(p)
}

func (c *CoordinateOperation) AddIdentifier(id *leaf.Identifier) *wkterror.Error {
	if c.ids == nil {
		c.ids = newIDSet()
	}
	return c.ids.add(coordinateOperationKeywords.Primary, id)
}

func CoordinateOperationFromTokens(tokens []token.Token, start int) (*CoordinateOperation, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, coordinateOperationKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(coordinateOperationKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var source, target, interp crsobj.Component
	var method *leaf.Method
	var accuracy *leaf.OperationAccuracy
	var scope *leaf.Scope
	var extents *leaf.Extents
	var ids *idSet
	var params []*leaf.Parameter
	var pfiles []*leaf.ParameterFile
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case strnum.EqualFold(sub.Text, "SOURCECRS"):
			crs, werr := parseWrappedCRS(tokens, idx, coordinateOperationKeywords.Primary, wkterror.ErrInvalidFirstCRS)
			if werr != nil {
				return nil, end, werr
			}
			source = crs
		case strnum.EqualFold(sub.Text, "TARGETCRS"):
			crs, werr := parseWrappedCRS(tokens, idx, coordinateOperationKeywords.Primary, wkterror.ErrInvalidSecondCRS)
			if werr != nil {
				return nil, end, werr
			}
			target = crs
		case strnum.EqualFold(sub.Text, "INTERPOLATIONCRS"):
			crs, werr := parseWrappedCRS(tokens, idx, coordinateOperationKeywords.Primary, wkterror.ErrInvalidThirdCRS)
			if werr != nil {
				return nil, end, werr
			}
			interp = crs
		case strnum.EqualFold(sub.Text, "METHOD") || strnum.EqualFold(sub.Text, "PROJECTION"):
			m, _, werr := leaf.MethodFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			method = m
		case strnum.EqualFold(sub.Text, "PARAMETER"):
			p, _, werr := leaf.ParameterFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			params = append(params, p)
		case strnum.EqualFold(sub.Text, "PARAMETERFILE"):
			p, _, werr := leaf.ParameterFileFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			pfiles = append(pfiles, p)
		case strnum.EqualFold(sub.Text, "OPERATIONACCURACY"):
			a, _, werr := leaf.OperationAccuracyFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			accuracy = a
		case strnum.EqualFold(sub.Text, "SCOPE"):
			s, _, werr := leaf.ScopeFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			scope = s
		case strnum.EqualFold(sub.Text, "AREA") || strnum.EqualFold(sub.Text, "BBOX") ||
			strnum.EqualFold(sub.Text, "VERTICALEXTENT") || strnum.EqualFold(sub.Text, "TIMEEXTENT"):
			if extents == nil {
				extents = &leaf.Extents{}
			}
			if _, werr := extents.AddSubObject(tokens, sub); werr != nil {
				return nil, end, werr
			}
		case strnum.EqualFold(sub.Text, "ID") || strnum.EqualFold(sub.Text, "AUTHORITY"):
			id, _, werr := leaf.IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if ids == nil {
				ids = newIDSet()
			}
			if werr := ids.add(coordinateOperationKeywords.Primary, id); werr != nil {
				return nil, end, werr
			}
		}
	}
	op, werr := NewCoordinateOperation(nameTok.Text, source, target, method)
	if werr != nil {
		return nil, end, werr
	}
	for _, p := range params {
		op.params.Add(p)
	}
	for _, p := range pfiles {
		op.pfiles.Add(p)
	}
	op.interpolationCRS, op.accuracy, op.scope, op.extents, op.ids = interp, accuracy, scope, extents, ids
	return op, end, nil
}

func (c *CoordinateOperation) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !c.Visible() {
		return
	}
	buf.WriteKeyword(coordinateOperationKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(c.name)
	f.WriteRaw(wrapCRS("SOURCECRS", c.sourceCRS, opts))
	f.WriteRaw(wrapCRS("TARGETCRS", c.targetCRS, opts))
	if c.interpolationCRS != nil {
		f.WriteRaw(wrapCRS("INTERPOLATIONCRS", c.interpolationCRS, opts))
	}
	mbuf := serialize.NewBuffer(opts)
	c.method.ToWKT(mbuf, opts)
	f.WriteRaw(mbuf.String())
	for _, p := range c.params.Items() {
		if !p.Visible() {
			continue
		}
		pbuf := serialize.NewBuffer(opts)
		p.ToWKT(pbuf, opts)
		f.WriteRaw(pbuf.String())
	}
	for _, p := range c.pfiles.Items() {
		if !p.Visible() {
			continue
		}
		pbuf := serialize.NewBuffer(opts)
		p.ToWKT(pbuf, opts)
		f.WriteRaw(pbuf.String())
	}
	if c.accuracy != nil && c.accuracy.Visible() {
		abuf := serialize.NewBuffer(opts)
		c.accuracy.ToWKT(abuf, opts)
		f.WriteRaw(abuf.String())
	}
	if c.scope != nil && c.scope.Visible() {
		sbuf := serialize.NewBuffer(opts)
		c.scope.ToWKT(sbuf, opts)
		f.WriteRaw(sbuf.String())
	}
	c.extents.ToWKT(f, opts)
	c.ids.writeAll(f, opts)
	buf.Close()
}

func (c *CoordinateOperation) Clone() *CoordinateOperation {
	clone := *c
	clone.method = c.method.Clone()
	clone.params = container.CloneSet[*leaf.Parameter](c.params)
	clone.pfiles = container.CloneSet[*leaf.ParameterFile](c.pfiles)
	if c.accuracy != nil {
		clone.accuracy = c.accuracy.Clone()
	}
	if c.scope != nil {
		clone.scope = c.scope.Clone()
	}
	clone.extents = c.extents.Clone()
	clone.ids = c.ids.clone()
	return &clone
}

func (c *CoordinateOperation) Destroy() {
	if c == nil {
		return
	}
	c.method.Destroy()
	for _, p := range c.params.Items() {
		p.Destroy()
	}
	for _, p := range c.pfiles.Items() {
		p.Destroy()
	}
	c.scope.Destroy()
	c.ids.destroyAll()
	c.name = ""
}
