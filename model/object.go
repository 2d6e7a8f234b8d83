// Package model defines the shared vocabulary every WKT-CRS object
// variant implements: a tag identifying its concrete kind, a visibility
// flag, and the dispatched operations (parse, emit, clone, compare,
// destroy) expect from a tagged sum type with a central dispatch table
// rather than a class hierarchy with virtual dispatch.
package model

import (
	"github.com/goblimey/go-wktcrs/wkterror"
)

// Tag identifies an object's concrete variant. The tag is authoritative:
// callers switch on Tag rather than using a type assertion ladder.
type Tag int

const (
	TagUnknown Tag = iota

	// Leaf objects.
	TagCitation
	TagURI
	TagIdentifier
	TagRemark
	TagScope
	TagAnchor
	TagAreaExtent
	TagBBoxExtent
	TagVerticalExtent
	TagTimeExtent
	TagTimeOrigin
	TagBearing
	TagMeridian
	TagOrder
	TagParameter
	TagParameterFile
	TagUnit
	TagEllipsoid
	TagAxis
	TagCS
	TagMethod
	TagConversion
	TagDerivingConversion
	TagOperationAccuracy
	TagPrimeMeridian
	TagAbridgedTransformation

	// Datum family.
	TagGeodeticDatum
	TagEngineeringDatum
	TagImageDatum
	TagParametricDatum
	TagTemporalDatum
	TagVerticalDatum

	// CRS family.
	TagGeodeticCRS
	TagProjectedCRS
	TagVerticalCRS
	TagEngineeringCRS
	TagImageCRS
	TagParametricCRS
	TagTemporalCRS
	TagCompoundCRS

	// Coordinate-operation family.
	TagCoordinateOperation
	TagBoundCRS
)

var tagNames = map[Tag]string{
	TagCitation:               "citation",
	TagURI:                    "uri",
	TagIdentifier:             "id",
	TagRemark:                 "remark",
	TagScope:                  "scope",
	TagAnchor:                 "anchor",
	TagAreaExtent:             "area",
	TagBBoxExtent:             "bbox",
	TagVerticalExtent:         "verticalextent",
	TagTimeExtent:             "timeextent",
	TagTimeOrigin:             "timeorigin",
	TagBearing:                "bearing",
	TagMeridian:               "meridian",
	TagOrder:                  "order",
	TagParameter:              "parameter",
	TagParameterFile:          "parameterfile",
	TagUnit:                   "unit",
	TagEllipsoid:              "ellipsoid",
	TagAxis:                   "axis",
	TagCS:                     "cs",
	TagMethod:                 "method",
	TagConversion:             "conversion",
	TagDerivingConversion:     "derivingconversion",
	TagOperationAccuracy:      "operationaccuracy",
	TagPrimeMeridian:          "primem",
	TagAbridgedTransformation: "abridgedtransformation",
	TagGeodeticDatum:          "datum",
	TagEngineeringDatum:       "edatum",
	TagImageDatum:             "idatum",
	TagParametricDatum:        "pdatum",
	TagTemporalDatum:          "tdatum",
	TagVerticalDatum:          "vdatum",
	TagGeodeticCRS:            "geodcrs",
	TagProjectedCRS:           "projcrs",
	TagVerticalCRS:            "vertcrs",
	TagEngineeringCRS:         "engcrs",
	TagImageCRS:               "imagecrs",
	TagParametricCRS:          "parametriccrs",
	TagTemporalCRS:            "timecrs",
	TagCompoundCRS:            "compoundcrs",
	TagCoordinateOperation:    "coordinateoperation",
	TagBoundCRS:               "boundcrs",
}

// String returns the variant's canonical lowercase keyword, used as the
// owning-keyword segment of a formatted wkterror message.
func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "unknown"
}

// Object is the common surface every variant exposes, dispatched through
// Tag rather than through per-variant virtual methods. Every variant's
// concrete *T additionally implements ToWKT(*serialize.Buffer,
// serialize.Options) for emission; that method is not part of this
// interface because its receiver-specific emission logic differs too
// much between families to share a single signature usefully beyond
// what the serialize.Buffer helpers already provide.
type Object interface {
	Tag() Tag
	Visible() bool
	SetVisible(bool)
}

// Base is embedded by every concrete variant to provide the shared
// Visible/SetVisible/Tag plumbing: every in-memory object carries a tag
// and a visibility flag.
type Base struct {
	tag     Tag
	visible bool
}

// NewBase returns a Base for the given tag, visible by default.
func NewBase(tag Tag) Base {
	return Base{tag: tag, visible: true}
}

func (b *Base) Tag() Tag           { return b.tag }
func (b *Base) Visible() bool      { return b.visible }
func (b *Base) SetVisible(v bool)  { b.visible = v }

// strictMode is the process-wide strict-parsing flag. Concurrent
// mutation is not supported; callers synchronize externally.
var strictMode = true

// Strict returns the current strict-parsing policy.
func Strict() bool { return strictMode }

// SetStrict installs a new strict-parsing policy and returns the
// previous one, so callers can save/restore it around a scoped parse.
func SetStrict(v bool) (previous bool) {
	previous = strictMode
	strictMode = v
	return previous
}

// ErrCheck is a tiny helper shared by every variant's ToWKT implementation
// to surface a serialize.Buffer's truncation as a *wkterror.Error.
func ErrCheck(keyword string, truncated bool) *wkterror.Error {
	if !truncated {
		return nil
	}
	return wkterror.New(keyword, wkterror.ErrTooLong)
}
