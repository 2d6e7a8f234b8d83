package wkterror

import (
	"fmt"
	"log"
	"strconv"
)

// Error is the single error value returned by every constructor, parser
// and validator in this module. A nil *Error means success; there is no
// other success sentinel.
type Error struct {
	Code    Code
	Keyword string
	Message string
}

// Error satisfies the standard error interface so that *Error composes
// with fmt.Errorf("%w",...) and errors.Is/As at call sites that need it,
// even though this package does not use those itself internally.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func format(keyword string, code Code, arg interface{}) string {
	msg := fmt.Sprintf("%s: %s", lowerKeyword(keyword), code.String())
	if arg == nil {
		return msg
	}
	switch v := arg.(type) {
	case string:
		return msg + ": " + v
	case int:
		return msg + ": " + strconv.Itoa(v)
	case float64:
		return msg + ": " + strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return msg + ": " + fmt.Sprint(v)
	}
}

func lowerKeyword(keyword string) string {
	if keyword == "" {
		return "wkt"
	}
	out := make([]byte, len(keyword))
	for i := 0; i < len(keyword); i++ {
		b := keyword[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return string(out)
}

// New builds an *Error with no formatted argument.
func New(keyword string, code Code) *Error {
	return newWithArg(keyword, code, nil)
}

// NewWithString builds an *Error whose message ends with a quoted-free
// string argument, e.g. an offending token or sub-object keyword.
func NewWithString(keyword string, code Code, arg string) *Error {
	return newWithArg(keyword, code, arg)
}

// NewWithInt builds an *Error whose message ends with an integer argument,
// e.g. a token index or a byte count.
func NewWithInt(keyword string, code Code, arg int) *Error {
	return newWithArg(keyword, code, arg)
}

// NewWithFloat builds an *Error whose message ends with a numeric
// argument, e.g. an offending coordinate or factor value.
func NewWithFloat(keyword string, code Code, arg float64) *Error {
	return newWithArg(keyword, code, arg)
}

func newWithArg(keyword string, code Code, arg interface{}) *Error {
	e := &Error{
		Code:    code,
		Keyword: keyword,
		Message: format(keyword, code, arg),
	}
	notifySink(e)
	return e
}

// Sink receives every error raised anywhere in the module, in addition to
// whatever *Error the caller's own channel received. data is whatever
// opaque value was supplied to SetSink; it is never interpreted here.
type Sink func(data interface{}, code Code, message string)

var (
	installedSink Sink
	sinkData      interface{}
)

// SetSink installs the process-wide error sink. Registration is
// process-wide and not internally synchronized: callers that install a
// sink from more than one goroutine must synchronize externally,
// matching the strict-parsing flag's concurrency contract.
func SetSink(sink Sink, data interface{}) {
	installedSink = sink
	sinkData = data
}

// ClearSink removes any installed sink.
func ClearSink() {
	installedSink = nil
	sinkData = nil
}

func notifySink(e *Error) {
	if installedSink != nil {
		installedSink(sinkData, e.Code, e.Message)
	}
}

// NewLogSink returns a Sink that writes every error to logger, in the
// style of rtcmlogger/logger.Writer: one line per error, timestamped by
// the logger itself. This is the default sink wired up by the sample
// cmd/wktwatch driver.
func NewLogSink(logger *log.Logger) Sink {
	if logger == nil {
		logger = log.Default()
	}
	return func(data interface{}, code Code, message string) {
		logger.Printf("wkt error %d: %s", int(code), message)
	}
}
