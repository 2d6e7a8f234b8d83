package leaf

import (
	"github.com/goblimey/go-wktcrs/container"
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// MaxMethodNameLength caps a method's name.
const MaxMethodNameLength = 79

// Method carries a METHOD["name",<id>*] object naming the algorithm a
// conversion or transformation applies.
type Method struct {
	model.Base
	name string
	ids  *identifierSet
}

var methodKeywords = parsekit.Keywords{Primary: "METHOD", Legacy: "PROJECTION"}

func NewMethod(name string) (*Method, *wkterror.Error) {
	if name == "" {
		return nil, wkterror.New(methodKeywords.Primary, wkterror.ErrInsufficientTokens)
	}
	if len(name) > MaxMethodNameLength {
		return nil, wkterror.NewWithInt(methodKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	return &Method{Base: model.NewBase(model.TagMethod), name: name}, nil
}

func (m *Method) Name() string { return m.name }
func (m *Method) Key() string  { return "method" }

func (m *Method) AddIdentifier(id *Identifier) *wkterror.Error {
	if m.ids == nil {
		m.ids = newIdentifierSet()
	}
	return m.ids.add(methodKeywords.Primary, id)
}

func MethodFromTokens(tokens []token.Token, start int) (*Method, int, *wkterror.Error) {
	legacy, werr := parsekit.CheckKeyword(tokens, start, methodKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(methodKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	m, werr := NewMethod(nameTok.Text)
	if werr != nil {
		return nil, end, werr
	}
	_ = legacy
	for _, sub := range parsekit.SubObjects(children) {
		if idKeywords.Match1(sub.Text) {
			idx := parsekit.IndexInTokens(tokens, sub)
			id, _, werr := IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if werr = m.AddIdentifier(id); werr != nil {
				return nil, end, werr
			}
		}
	}
	return m, end, nil
}

func (m *Method) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !m.Visible() {
		return
	}
	keyword := methodKeywords.Primary
	if opts.Has(serialize.OldSyntax) {
		keyword = methodKeywords.Legacy
	}
	buf.WriteKeyword(keyword)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(m.name)
	m.ids.writeAll(f, opts)
	buf.Close()
}

func (m *Method) Clone() *Method {
	clone := *m
	clone.ids = m.ids.clone()
	return &clone
}

func (m *Method) Destroy() {
	if m == nil {
		return
	}
	m.ids.destroyAll()
	m.name = ""
}

// --- OperationAccuracy ------------------------------------------------

// OperationAccuracy carries an OPERATIONACCURACY[<number>] object: an
// estimated accuracy in the units of the operation's target CRS.
type OperationAccuracy struct {
	model.Base
	value float64
}

var operationAccuracyKeywords = parsekit.Keywords{Primary: "OPERATIONACCURACY"}

func NewOperationAccuracy(value float64) (*OperationAccuracy, *wkterror.Error) {
	if value < 0 {
		return nil, wkterror.NewWithFloat(operationAccuracyKeywords.Primary, wkterror.ErrInvalidSyntax, value)
	}
	return &OperationAccuracy{Base: model.NewBase(model.TagOperationAccuracy), value: value}, nil
}

func (o *OperationAccuracy) Value() float64 { return o.value }
func (o *OperationAccuracy) Key() string    { return "operationaccuracy" }

func OperationAccuracyFromTokens(tokens []token.Token, start int) (*OperationAccuracy, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, operationAccuracyKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(operationAccuracyKeywords.Primary, len(atoms), 1, 1); werr != nil {
		return nil, end, werr
	}
	tok, _ := parsekit.IndexOf(atoms, 0)
	v, ok := strnum.ParseFloat(tok.Text)
	if !ok {
		return nil, end, wkterror.New(operationAccuracyKeywords.Primary, wkterror.ErrInvalidSyntax)
	}
	oa, werr := NewOperationAccuracy(v)
	if werr != nil {
		return nil, end, werr
	}
	return oa, end, nil
}

func (o *OperationAccuracy) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !o.Visible() {
		return
	}
	buf.WriteKeyword(operationAccuracyKeywords.Primary)
	buf.Open()
	buf.WriteFloat(o.value)
	buf.Close()
}

func (o *OperationAccuracy) Clone() *OperationAccuracy {
	clone := *o
	return &clone
}

// --- Conversion / DerivingConversion --------------------------------------

// MaxConversionNameLength caps a conversion's name.
const MaxConversionNameLength = 79

// conversionCore is the shared shape of CONVERSION[...] and
// DERIVINGCONVERSION[...]: a name, a method, owned parameters and
// parameter-files, and identifiers. Sharing it mirrors how textLeaf
// shares the single-string-field leaves.
type conversionCore struct {
	model.Base
	name   string
	method *Method
	params *container.Set[*Parameter]
	pfiles *container.Set[*ParameterFile]
	ids    *identifierSet
}

func newConversionCore(tag model.Tag, keyword, name string, method *Method) (conversionCore, *wkterror.Error) {
	if len(name) > MaxConversionNameLength {
		return conversionCore{}, wkterror.NewWithInt(keyword, wkterror.ErrNameTooLong, len(name))
	}
	if method == nil {
		return conversionCore{}, wkterror.New(keyword, wkterror.ErrMissingMethod)
	}
	return conversionCore{
		Base:   model.NewBase(tag),
		name:   name,
		method: method,
		params: container.NewSet[*Parameter](),
		pfiles: container.NewSet[*ParameterFile](),
	}, nil
}

func (c *conversionCore) addIdentifier(keyword string, id *Identifier) *wkterror.Error {
	if c.ids == nil {
		c.ids = newIdentifierSet()
	}
	return c.ids.add(keyword, id)
}

func conversionFromTokensCore(keyword string, kws parsekit.Keywords, tag model.Tag, tokens []token.Token, start int) (conversionCore, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, kws)
	if werr != nil {
		return conversionCore{}, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(keyword, len(atoms), 1, 1); werr != nil {
		return conversionCore{}, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	var method *Method
	core := conversionCore{params: container.NewSet[*Parameter](), pfiles: container.NewSet[*ParameterFile]()}
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case methodKeywords.Match1(sub.Text):
			m, _, werr := MethodFromTokens(tokens, idx)
			if werr != nil {
				return conversionCore{}, end, werr
			}
			method = m
		case parameterKeywords.Match1(sub.Text):
			p, _, werr := ParameterFromTokens(tokens, idx)
			if werr != nil {
				return conversionCore{}, end, werr
			}
			if !core.params.Add(p) {
				return conversionCore{}, end, wkterror.New(keyword, wkterror.ErrInsufficientTokens)
			}
		case parameterFileKeywords.Match1(sub.Text):
			p, _, werr := ParameterFileFromTokens(tokens, idx)
			if werr != nil {
				return conversionCore{}, end, werr
			}
			if !core.pfiles.Add(p) {
				return conversionCore{}, end, wkterror.New(keyword, wkterror.ErrInsufficientTokens)
			}
		case idKeywords.Match1(sub.Text):
			id, _, werr := IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return conversionCore{}, end, werr
			}
			if werr = core.addIdentifier(keyword, id); werr != nil {
				return conversionCore{}, end, werr
			}
		}
	}
	built, werr := newConversionCore(tag, keyword, nameTok.Text, method)
	if werr != nil {
		return conversionCore{}, end, werr
	}
	built.params = core.params
	built.pfiles = core.pfiles
	built.ids = core.ids
	return built, end, nil
}

func (c *conversionCore) toWKT(keyword string, buf *serialize.Buffer, opts serialize.Options) {
	buf.WriteKeyword(keyword)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(c.name)
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
	c.ids.writeAll(f, opts)
	buf.Close()
}

func (c *conversionCore) clone() conversionCore {
	clone := *c
	if c.method != nil {
		clone.method = c.method.Clone()
	}
	clone.params = container.CloneSet[*Parameter](c.params)
	clone.pfiles = container.CloneSet[*ParameterFile](c.pfiles)
	clone.ids = c.ids.clone()
	return clone
}

func (c *conversionCore) destroy() {
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
	c.ids.destroyAll()
	c.name = ""
}

// Conversion carries a CONVERSION["name",METHOD[...],PARAMETER[...]*,
// id*] object, used by a ProjectedCRS or an EngineeringCRS's derivation.
type Conversion struct{ conversionCore }

var conversionKeywords = parsekit.Keywords{Primary: "CONVERSION"}

func NewConversion(name string, method *Method) (*Conversion, *wkterror.Error) {
	core, werr := newConversionCore(model.TagConversion, conversionKeywords.Primary, name, method)
	if werr != nil {
		return nil, werr
	}
	return &Conversion{core}, nil
}

func (c *Conversion) AddParameter(p *Parameter) bool         { return c.params.Add(p) }
func (c *Conversion) AddParameterFile(p *ParameterFile) bool { return c.pfiles.Add(p) }
func (c *Conversion) AddIdentifier(id *Identifier) *wkterror.Error {
	return c.addIdentifier(conversionKeywords.Primary, id)
}
func (c *Conversion) Name() string    { return c.name }
func (c *Conversion) Method() *Method { return c.method }
func (c *Conversion) Key() string     { return "conversion" }

func ConversionFromTokens(tokens []token.Token, start int) (*Conversion, int, *wkterror.Error) {
	core, end, werr := conversionFromTokensCore(conversionKeywords.Primary, conversionKeywords, model.TagConversion, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &Conversion{core}, end, nil
}

func (c *Conversion) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !c.Visible() {
		return
	}
	c.toWKT(conversionKeywords.Primary, buf, opts)
}

func (c *Conversion) Clone() *Conversion {
	return &Conversion{c.clone()}
}

func (c *Conversion) Destroy() { c.destroy() }

// DerivingConversion carries a DERIVINGCONVERSION["name",METHOD[...],
// PARAMETER[...]*,id*] object: the conversion from a derived CRS's base
// CRS.
type DerivingConversion struct{ conversionCore }

var derivingConversionKeywords = parsekit.Keywords{Primary: "DERIVINGCONVERSION"}

func NewDerivingConversion(name string, method *Method) (*DerivingConversion, *wkterror.Error) {
	core, werr := newConversionCore(model.TagDerivingConversion, derivingConversionKeywords.Primary, name, method)
	if werr != nil {
		return nil, werr
	}
	return &DerivingConversion{core}, nil
}

func (c *DerivingConversion) AddParameter(p *Parameter) bool         { return c.params.Add(p) }
func (c *DerivingConversion) AddParameterFile(p *ParameterFile) bool { return c.pfiles.Add(p) }
func (c *DerivingConversion) AddIdentifier(id *Identifier) *wkterror.Error {
	return c.addIdentifier(derivingConversionKeywords.Primary, id)
}
func (c *DerivingConversion) Key() string { return "derivingconversion" }

func DerivingConversionFromTokens(tokens []token.Token, start int) (*DerivingConversion, int, *wkterror.Error) {
	core, end, werr := conversionFromTokensCore(derivingConversionKeywords.Primary, derivingConversionKeywords, model.TagDerivingConversion, tokens, start)
	if werr != nil {
		return nil, end, werr
	}
	return &DerivingConversion{core}, end, nil
}

func (c *DerivingConversion) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !c.Visible() {
		return
	}
	c.toWKT(derivingConversionKeywords.Primary, buf, opts)
}

func (c *DerivingConversion) Clone() *DerivingConversion {
	return &DerivingConversion{c.clone()}
}

func (c *DerivingConversion) Destroy() { c.destroy() }
