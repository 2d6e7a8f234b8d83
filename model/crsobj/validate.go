package crsobj

import (
	"github.com/goblimey/go-wktcrs/model/leaf"
	"github.com/goblimey/go-wktcrs/strnum"
	"github.com/goblimey/go-wktcrs/wkterror"
)

// allowedCS implements the per-CRS-kind coordinate system validation
// table: which CS[...] types a CRS family may legally carry.
var allowedCS = map[string][]leaf.CSKind{
	"geodcrs":       {leaf.CSKindEllipsoidal, leaf.CSKindCartesian, leaf.CSKindSpherical},
	"projcrs":       {leaf.CSKindCartesian},
	"vertcrs":       {leaf.CSKindVertical},
	"engcrs":        {leaf.CSKindCartesian, leaf.CSKindAffine, leaf.CSKindLinear, leaf.CSKindPolar, leaf.CSKindCylindrical, leaf.CSKindOrdinal},
	"imagecrs":      {leaf.CSKindCartesian, leaf.CSKindAffine},
	"parametriccrs": {leaf.CSKindParametric},
	"timecrs":       {leaf.CSKindTemporalCount, leaf.CSKindTemporalMeasure, leaf.CSKindTemporalDateTime, leaf.CSKindOrdinal},
}

// validateCSForCRS reports a wkterror if cs's kind isn't one this CRS
// family permits, or if its declared axis count doesn't match the
// number of axes actually attached.
func validateCSForCRS(crsKeyword string, cs *leaf.CS) *wkterror.Error {
	if cs == nil {
		return wkterror.New(crsKeyword, wkterror.ErrMissingCS)
	}
	allowed, ok := allowedCS[strnum.FoldKey(crsKeyword)]
	if ok {
		found := false
		for _, k := range allowed {
			if k == cs.Kind() {
				found = true
				break
			}
		}
		if !found {
			return wkterror.NewWithString(crsKeyword, wkterror.ErrInvalidCSType, string(cs.Kind()))
		}
	}
	if len(cs.Axes()) != cs.Dimension() {
		return wkterror.NewWithInt(crsKeyword, wkterror.ErrInvalidDimension, len(cs.Axes()))
	}
	return nil
}
