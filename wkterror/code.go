// Package wkterror implements the error channel used throughout the
// WKT-CRS core: a typed error code plus a human-readable message, with
// an optional process-wide sink that is notified of every error in
// addition to the caller's own channel.
package wkterror

// Code identifies the kind of failure that occurred while tokenizing,
// parsing or validating a WKT document or in-memory object tree.
type Code int

// The error taxonomy below is grouped by the phase of processing that
// raises each code; the grouping is cosmetic (values are not
// interpreted as bit flags).
const (
	NoError Code = iota

	// Tokenizer failures.
	ErrEmpty
	ErrTooLong
	ErrUnbalancedQuotes
	ErrUnbalancedBrackets
	ErrInvalidEscape
	ErrInvalidKeyword
	ErrInsufficientTokens
	ErrTooManyTokens
	ErrIndexOutOfRange
	ErrUnknownKeyword
	ErrMaxTokensExceeded
	ErrInvalidSyntax
	ErrTooManyCloseTokens
	ErrTooManyOpenTokens
	ErrExpectingToken

	// Duplicate sub-object failures (one per singleton child kind).
	ErrDuplicateID
	ErrDuplicateCitation
	ErrDuplicateURI
	ErrDuplicateRemark
	ErrDuplicateScope
	ErrDuplicateAnchor
	ErrDuplicateAreaExtent
	ErrDuplicateBBoxExtent
	ErrDuplicateVerticalExtent
	ErrDuplicateTimeExtent
	ErrDuplicateUnit
	ErrDuplicateAxis
	ErrDuplicateOperationAccuracy

	// Axis failures.
	ErrTooManyAxes
	ErrOrderOutOfRange
	ErrAxisAlreadyUsed

	// Value failures.
	ErrInvalidAxisDirection
	ErrInvalidCSType
	ErrInvalidDimension
	ErrInvalidLatitude
	ErrInvalidLongitude
	ErrInvalidOrderValue
	ErrInvalidPixelType
	ErrInvalidSemiMajorAxis
	ErrInvalidFlattening
	ErrInvalidUnitFactor
	ErrInvalidMeridianValue
	ErrInvalidBearingValue
	ErrInvalidFirstCRS
	ErrInvalidSecondCRS
	ErrInvalidThirdCRS

	// Missing required-child failures.
	ErrMissingBaseCRS
	ErrMissingConversion
	ErrMissingCS
	ErrMissingDatum
	ErrMissingEllipsoid
	ErrMissingMethod
	ErrMissingSourceCRS
	ErrMissingTargetCRS
	ErrMissingUnit
	ErrMissingFirstCRS
	ErrMissingSecondCRS
	ErrMissingAbridgedTransformation

	// Length-exceeded failures.
	ErrAbbreviationTooLong
	ErrFilenameTooLong
	ErrIdentifierTooLong
	ErrNameTooLong
	ErrTextTooLong
	ErrTimeTooLong
	ErrVersionTooLong

	// Resource failures.
	ErrNoMemory

	// Mismatched units.
	ErrMismatchedUnits
)

var codeText = map[Code]string{
	NoError:                          "no error",
	ErrEmpty:                         "empty input",
	ErrTooLong:                       "input too long",
	ErrUnbalancedQuotes:              "unbalanced quotes",
	ErrUnbalancedBrackets:            "unbalanced brackets",
	ErrInvalidEscape:                 "invalid escape",
	ErrInvalidKeyword:                "invalid keyword",
	ErrInsufficientTokens:            "insufficient tokens",
	ErrTooManyTokens:                 "too many tokens",
	ErrIndexOutOfRange:               "index out of range",
	ErrUnknownKeyword:                "unknown keyword",
	ErrMaxTokensExceeded:             "max tokens exceeded",
	ErrInvalidSyntax:                 "invalid syntax",
	ErrTooManyCloseTokens:            "too many close tokens",
	ErrTooManyOpenTokens:             "too many open tokens",
	ErrExpectingToken:                "expecting token",
	ErrDuplicateID:                   "duplicate id",
	ErrDuplicateCitation:             "duplicate citation",
	ErrDuplicateURI:                  "duplicate uri",
	ErrDuplicateRemark:               "duplicate remark",
	ErrDuplicateScope:                "duplicate scope",
	ErrDuplicateAnchor:               "duplicate anchor",
	ErrDuplicateAreaExtent:           "duplicate area extent",
	ErrDuplicateBBoxExtent:           "duplicate bbox extent",
	ErrDuplicateVerticalExtent:       "duplicate vertical extent",
	ErrDuplicateTimeExtent:           "duplicate time extent",
	ErrDuplicateUnit:                 "duplicate unit",
	ErrDuplicateAxis:                 "duplicate axis",
	ErrDuplicateOperationAccuracy:    "duplicate operation accuracy",
	ErrTooManyAxes:                   "too many axes",
	ErrOrderOutOfRange:               "order out of range",
	ErrAxisAlreadyUsed:               "axis already used",
	ErrInvalidAxisDirection:          "invalid axis direction",
	ErrInvalidCSType:                 "invalid cs type",
	ErrInvalidDimension:              "invalid dimension",
	ErrInvalidLatitude:               "invalid latitude",
	ErrInvalidLongitude:              "invalid longitude",
	ErrInvalidOrderValue:             "invalid order value",
	ErrInvalidPixelType:              "invalid pixel type",
	ErrInvalidSemiMajorAxis:          "invalid semi-major axis",
	ErrInvalidFlattening:             "invalid flattening",
	ErrInvalidUnitFactor:             "invalid unit factor",
	ErrInvalidMeridianValue:          "invalid meridian value",
	ErrInvalidBearingValue:           "invalid bearing value",
	ErrInvalidFirstCRS:               "invalid first crs",
	ErrInvalidSecondCRS:              "invalid second crs",
	ErrInvalidThirdCRS:               "invalid third crs",
	ErrMissingBaseCRS:                "missing base crs",
	ErrMissingConversion:             "missing conversion",
	ErrMissingCS:                     "missing cs",
	ErrMissingDatum:                  "missing datum",
	ErrMissingEllipsoid:              "missing ellipsoid",
	ErrMissingMethod:                 "missing method",
	ErrMissingSourceCRS:              "missing source crs",
	ErrMissingTargetCRS:              "missing target crs",
	ErrMissingUnit:                   "missing unit",
	ErrMissingFirstCRS:               "missing first crs",
	ErrMissingSecondCRS:              "missing second crs",
	ErrMissingAbridgedTransformation: "missing abridged transformation",
	ErrAbbreviationTooLong:           "abbreviation too long",
	ErrFilenameTooLong:               "filename too long",
	ErrIdentifierTooLong:             "identifier too long",
	ErrNameTooLong:                   "name too long",
	ErrTextTooLong:                   "text too long",
	ErrTimeTooLong:                   "time too long",
	ErrVersionTooLong:                "version too long",
	ErrNoMemory:                      "no memory",
	ErrMismatchedUnits:               "mismatched units",
}

// String returns the human-readable description of the code, used as the
// middle segment of a formatted error message.
func (c Code) String() string {
	if s, ok := codeText[c]; ok {
		return s
	}
	return "unknown error"
}
