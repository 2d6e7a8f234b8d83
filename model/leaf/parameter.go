package leaf

import (
	"github.com/goblimey/go-wktcrs/model"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// MaxParameterNameLength caps a parameter's name.
const MaxParameterNameLength = 79

// Parameter carries a PARAMETER["name",<value>,<unit>,<id>*] object: an
// operation parameter with its numeric value, unit, and zero or more
// identifiers.
type Parameter struct {
	model.Base
	name  string
	value float64
	unit  *Unit
	ids   *identifierSet
}

var parameterKeywords = parsekit.Keywords{Primary: "PARAMETER"}

func NewParameter(name string, value float64, unit *Unit) (*Parameter, *wkterror.Error) {
	if name == "" {
		return nil, wkterror.New(parameterKeywords.Primary, wkterror.ErrInsufficientTokens)
	}
	if len(name) > MaxParameterNameLength {
		return nil, wkterror.NewWithInt(parameterKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	return &Parameter{Base: model.NewBase(model.TagParameter), name: name, value: value, unit: unit}, nil
}

func (p *Parameter) Name() string  { return p.name }
func (p *Parameter) Value() float64 { return p.value }
func (p *Parameter) Unit() *Unit   { return p.unit }

// AddIdentifier appends an identifier, rejecting a duplicate name.
func (p *Parameter) AddIdentifier(id *Identifier) *wkterror.Error {
	if p.ids == nil {
		p.ids = newIdentifierSet()
	}
	return p.ids.add(parameterKeywords.Primary, id)
}

func (p *Parameter) Key() string { return strnum.FoldKey(p.name) }

func ParameterFromTokens(tokens []token.Token, start int) (*Parameter, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, parameterKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(parameterKeywords.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	valTok, _ := parsekit.IndexOf(atoms, 1)
	v, ok := strnum.ParseFloat(valTok.Text)
	if !ok {
		return nil, end, wkterror.NewWithString(parameterKeywords.Primary, wkterror.ErrInvalidSyntax, valTok.Text)
	}
	var unit *Unit
	p := &Parameter{}
	for _, sub := range parsekit.SubObjects(children) {
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case unitKeywordsAny(sub.Text):
			u, _, werr := UnitFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if unit != nil {
				return nil, end, wkterror.New(parameterKeywords.Primary, wkterror.ErrDuplicateUnit)
			}
			unit = u
		case idKeywords.Match1(sub.Text):
			id, _, werr := IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if werr = p.AddIdentifier(id); werr != nil {
				return nil, end, werr
			}
		}
	}
	param, werr := NewParameter(nameTok.Text, v, unit)
	if werr != nil {
		return nil, end, werr
	}
	param.ids = p.ids
	return param, end, nil
}

func (p *Parameter) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !p.Visible() {
		return
	}
	buf.WriteKeyword(parameterKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(p.name)
	f.WriteFloat(p.value)
	if p.unit != nil && p.unit.Visible() {
		ubuf := serialize.NewBuffer(opts)
		p.unit.ToWKT(ubuf, opts)
		f.WriteRaw(ubuf.String())
	}
	p.ids.writeAll(f, opts)
	buf.Close()
}

func (p *Parameter) Clone() *Parameter {
	clone := *p
	if p.unit != nil {
		clone.unit = p.unit.Clone()
	}
	clone.ids = p.ids.clone()
	return &clone
}

func (p *Parameter) Destroy() {
	if p == nil {
		return
	}
	p.unit.Destroy()
	p.ids.destroyAll()
	p.name = ""
}

// --- ParameterFile ------------------------------------------------------

// MaxParameterFileNameLength and MaxParameterFilenameLength cap a
// parameter file object's name and filename.
const (
	MaxParameterFileNameLength = 79
	MaxParameterFilenameLength = 255
)

// ParameterFile carries a PARAMETERFILE["name","filename",<id>*]
// object: a parameter whose value lives in an external file.
type ParameterFile struct {
	model.Base
	name     string
	filename string
	ids      *identifierSet
}

var parameterFileKeywords = parsekit.Keywords{Primary: "PARAMETERFILE"}

func NewParameterFile(name, filename string) (*ParameterFile, *wkterror.Error) {
	if len(name) > MaxParameterFileNameLength {
		return nil, wkterror.NewWithInt(parameterFileKeywords.Primary, wkterror.ErrNameTooLong, len(name))
	}
	if len(filename) > MaxParameterFilenameLength {
		return nil, wkterror.NewWithInt(parameterFileKeywords.Primary, wkterror.ErrFilenameTooLong, len(filename))
	}
	return &ParameterFile{Base: model.NewBase(model.TagParameterFile), name: name, filename: filename}, nil
}

func (p *ParameterFile) Name() string     { return p.name }
func (p *ParameterFile) Filename() string { return p.filename }
func (p *ParameterFile) Key() string      { return strnum.FoldKey(p.name) }

func (p *ParameterFile) AddIdentifier(id *Identifier) *wkterror.Error {
	if p.ids == nil {
		p.ids = newIdentifierSet()
	}
	return p.ids.add(parameterFileKeywords.Primary, id)
}

func ParameterFileFromTokens(tokens []token.Token, start int) (*ParameterFile, int, *wkterror.Error) {
	_, werr := parsekit.CheckKeyword(tokens, start, parameterFileKeywords)
	if werr != nil {
		return nil, start, werr
	}
	children, end := parsekit.Span(tokens, start)
	atoms := parsekit.Atoms(children)
	if werr = parsekit.CheckArity(parameterFileKeywords.Primary, len(atoms), 2, 2); werr != nil {
		return nil, end, werr
	}
	nameTok, _ := parsekit.IndexOf(atoms, 0)
	fileTok, _ := parsekit.IndexOf(atoms, 1)
	pf, werr := NewParameterFile(nameTok.Text, fileTok.Text)
	if werr != nil {
		return nil, end, werr
	}
	for _, sub := range parsekit.SubObjects(children) {
		if idKeywords.Match1(sub.Text) {
			idx := parsekit.IndexInTokens(tokens, sub)
			id, _, werr := IdentifierFromTokens(tokens, idx)
			if werr != nil {
				return nil, end, werr
			}
			if werr = pf.AddIdentifier(id); werr != nil {
				return nil, end, werr
			}
		}
	}
	return pf, end, nil
}

func (p *ParameterFile) ToWKT(buf *serialize.Buffer, opts serialize.Options) {
	if !p.Visible() {
		return
	}
	buf.WriteKeyword(parameterFileKeywords.Primary)
	buf.Open()
	f := serialize.Fields(buf)
	f.WriteQuoted(p.name)
	f.WriteQuoted(p.filename)
	p.ids.writeAll(f, opts)
	buf.Close()
}

func (p *ParameterFile) Clone() *ParameterFile {
	clone := *p
	clone.ids = p.ids.clone()
	return &clone
}

func (p *ParameterFile) Destroy() {
	if p == nil {
		return
	}
	p.ids.destroyAll()
	p.name, p.filename = "", ""
}
