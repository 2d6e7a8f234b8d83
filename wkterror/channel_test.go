package wkterror

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestNewFormatsKeywordAndCode(t *testing.T) {
	err := New("UNIT", ErrMissingUnit)
	if err == nil {
		t.Fatal("want non-nil error")
	}
	if err.Code != ErrMissingUnit {
		t.Errorf("want code %v, got %v", ErrMissingUnit, err.Code)
	}
	want := "unit: missing unit"
	if err.Error() != want {
		t.Errorf("want message %q, got %q", want, err.Error())
	}
}

func TestNewWithStringAppendsArg(t *testing.T) {
	err := NewWithString("GEODCRS", ErrUnknownKeyword, "FOOBAR")
	want := "geodcrs: unknown keyword: FOOBAR"
	if err.Error() != want {
		t.Errorf("want %q, got %q", want, err.Error())
	}
}

func TestNewWithIntAppendsArg(t *testing.T) {
	err := NewWithInt("AXIS", ErrTooManyAxes, 4)
	want := "axis: too many axes: 4"
	if err.Error() != want {
		t.Errorf("want %q, got %q", want, err.Error())
	}
}

func TestNewWithFloatAppendsArg(t *testing.T) {
	err := NewWithFloat("ELLIPSOID", ErrInvalidFlattening, -1.5)
	want := "ellipsoid: invalid flattening: -1.5"
	if err.Error() != want {
		t.Errorf("want %q, got %q", want, err.Error())
	}
}

func TestEmptyKeywordFallsBackToWkt(t *testing.T) {
	err := New("", ErrEmpty)
	if !strings.HasPrefix(err.Error(), "wkt: ") {
		t.Errorf("want message to start with %q, got %q", "wkt: ", err.Error())
	}
}

func TestNilErrorErrorStringIsEmpty(t *testing.T) {
	var err *Error
	if err.Error() != "" {
		t.Errorf("want empty string from nil *Error, got %q", err.Error())
	}
}

func TestSinkIsNotifiedOnEveryError(t *testing.T) {
	defer ClearSink()

	var gotCode Code
	var gotMessage string
	var gotData interface{}
	SetSink(func(data interface{}, code Code, message string) {
		gotData = data
		gotCode = code
		gotMessage = message
	}, "marker")

	err := New("DATUM", ErrMissingDatum)

	if gotData != "marker" {
		t.Errorf("want sink data %q, got %v", "marker", gotData)
	}
	if gotCode != ErrMissingDatum {
		t.Errorf("want sink code %v, got %v", ErrMissingDatum, gotCode)
	}
	if gotMessage != err.Message {
		t.Errorf("want sink message %q, got %q", err.Message, gotMessage)
	}
}

func TestClearSinkRemovesNotification(t *testing.T) {
	called := false
	SetSink(func(data interface{}, code Code, message string) {
		called = true
	}, nil)
	ClearSink()

	New("DATUM", ErrMissingDatum)

	if called {
		t.Errorf("sink should not be notified after ClearSink")
	}
}

func TestNewLogSinkWritesOneLinePerError(t *testing.T) {
	defer ClearSink()

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	SetSink(NewLogSink(logger), nil)

	New("UNIT", ErrMissingUnit)

	got := buf.String()
	if !strings.Contains(got, "unit: missing unit") {
		t.Errorf("want log line to contain the formatted message, got %q", got)
	}
}

func TestCodeStringUnknownCode(t *testing.T) {
	var bogus Code = 99999
	if bogus.String() != "unknown error" {
		t.Errorf("want %q for an unrecognized code, got %q", "unknown error", bogus.String())
	}
}
