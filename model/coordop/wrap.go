package coordop

import (
	"github.com/goblimey/go-wktcrs/model/crsobj"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// parseWrappedCRS parses a SOURCECRS[...]/TARGETCRS[...]/
// INTERPOLATIONCRS[...] wrapper, which holds exactly one CRS of any
// kind. badCode is the error reported if the wrapper is
// empty, holds more than one member, or its member fails to parse.
func parseWrappedCRS(tokens []token.Token, idx int, ownerKeyword string, badCode wkterror.Code) (crsobj.Component, *wkterror.Error) {
	children, _ := parsekit.Span(tokens, idx)
	subs := parsekit.SubObjects(children)
	if len(subs) != 1 {
		return nil, wkterror.New(ownerKeyword, badCode)
	}
	subIdx := parsekit.IndexInTokens(tokens, subs[0])
	crs, _, werr := crsobj.ParseCRS(tokens, subIdx)
	if werr != nil {
		return nil, wkterror.New(ownerKeyword, badCode)
	}
	return crs, nil
}

// wrapCRS renders a CRS back inside its SOURCECRS/TARGETCRS/
// INTERPOLATIONCRS wrapper.
func wrapCRS(keyword string, c crsobj.Component, opts serialize.Options) string {
	buf := serialize.NewBuffer(opts)
	buf.WriteKeyword(keyword)
	buf.Open()
	f := serialize.Fields(buf)
	cbuf := serialize.NewBuffer(opts)
	c.ToWKT(cbuf, opts)
	f.WriteRaw(cbuf.String())
	buf.Close()
	return buf.String()
}
