package crsobj

import (
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/parsekit"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/token"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// parseCSAndAxes scans a CRS's direct children for its CS[...] header
// and the AXIS[...]/UNIT[...] entries that, per ISO 19162's grammar,
// appear as its siblings rather than nested inside CS[...] itself. It
// returns the fully assembled CS, with axes and default unit attached
// in the order encountered.
func parseCSAndAxes(crsKeyword string, tokens []token.Token, children []token.Token) (*leaf.CS, *wkterror.Error) {
	var cs *leaf.CS
	for _, sub := range children {
		if !sub.Open {
			continue
		}
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case strnum.EqualFold(sub.Text, "CS"):
			if cs != nil {
				return nil, wkterror.New(crsKeyword, wkterror.ErrInsufficientTokens)
			}
			parsed, _, werr := leaf.CSFromTokens(tokens, idx)
			if werr != nil {
				return nil, werr
			}
			cs = parsed
		}
	}
	if cs == nil {
		return nil, wkterror.New(crsKeyword, wkterror.ErrMissingCS)
	}
	for _, sub := range children {
		if !sub.Open {
			continue
		}
		idx := parsekit.IndexInTokens(tokens, sub)
		switch {
		case strnum.EqualFold(sub.Text, "AXIS"):
			ax, _, werr := leaf.AxisFromTokens(tokens, idx)
			if werr != nil {
				return nil, werr
			}
			if werr = cs.AddAxis(ax); werr != nil {
				return nil, werr
			}
		case isUnitKeyword(sub.Text):
			u, _, werr := leaf.UnitFromTokens(tokens, idx)
			if werr != nil {
				return nil, werr
			}
			cs.SetUnit(u)
		}
	}
	return cs, nil
}

func isUnitKeyword(text string) bool {
	for _, kw := range []string{"LENGTHUNIT", "ANGLEUNIT", "SCALEUNIT", "TIMEUNIT", "PARAMETRICUNIT", "UNIT"} {
		if strnum.EqualFold(text, kw) {
			return true
		}
	}
	return false
}
