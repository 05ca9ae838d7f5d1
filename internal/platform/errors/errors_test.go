package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeMissingArgument, http.StatusBadRequest},
		{ErrorCodeInvalidIdentifier, http.StatusBadRequest},
		{ErrorCodeInvalidRange, http.StatusBadRequest},
		{ErrorCodeInvalidQuery, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrorCodeMissingArgument:   "missing_argument",
		ErrorCodeInvalidIdentifier: "invalid_identifier",
		ErrorCodeInvalidRange:      "invalid_range",
		ErrorCodeInvalidQuery:      "invalid_query",
		ErrorCodeUnavailable:       "unavailable",
		ErrorCodeUnknown:           "unknown",
		9999:                       "unknown",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("ErrorCode(%d).String() = %q, want %q", code, got, want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeUnavailable, "transport failed")
	if Unwrap := stderrs.Unwrap(e3); Unwrap == nil || Unwrap.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeUnavailable {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	e4 := Wrapf(src, ErrorCodeForbidden, "nope %s", "here")
	// Error() includes message + ": " + orig
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	// As
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeForbidden {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithField (copy-on-write) and WithOp
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithField(e5, "host")
	e7 := WithOp(e6, "sodauri.ForMetadata")
	if fe, ok := As(e6); !ok || fe.Field() != "host" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "sodauri.ForMetadata" {
		t.Fatalf("WithOp failed")
	}
	// original unchanged
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	// foreign errors pass through untouched
	if WithField(src, "x") != src || WithOp(src, "x") != src {
		t.Fatalf("mutators should not touch foreign errors")
	}

	// Wire / WireFrom
	w := (&Error{code: ErrorCodeUnauthorized, msg: "nope", field: "token"}).ToWire()
	if w.Code != ErrorCodeUnauthorized || w.Message != "nope" || w.Field != "token" {
		t.Fatalf("ToWire mismatch: %+v", w)
	}
	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil) expected zero, got %+v", wf)
	}
	// WireFrom for foreign error -> Unknown with original message
	if wf := WireFrom(src); wf.Code != ErrorCodeUnknown || wf.Message != "root" {
		t.Fatalf("WireFrom(foreign) mismatch: %+v", wf)
	}
	// WireFrom for our error uses only e.msg (not "msg: orig")
	if wf := WireFrom(e4); wf.Code != ErrorCodeForbidden || wf.Message != "nope here" {
		t.Fatalf("WireFrom(ours) mismatch: %+v", wf)
	}

	// HTTP and HTTPStatus
	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", st)
	}
	if st := HTTPStatus(e3); st != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus mismatch")
	}

	// Helpers (sugar) and IsCode
	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(Unauthorizedf("x"), ErrorCodeUnauthorized) ||
		!IsCode(Forbiddenf("x"), ErrorCodeForbidden) ||
		!IsCode(Unavailablef("x"), ErrorCodeUnavailable) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) {
		t.Fatalf("sugar helpers code mismatch")
	}

	// WrapIf
	if WrapIf(nil, ErrorCodeUnknown, "ignored") != nil {
		t.Fatalf("WrapIf(nil) should return nil")
	}
	if WrapIf(src, ErrorCodeUnknown, "wrapped") == nil {
		t.Fatalf("WrapIf(non-nil) should wrap")
	}

	// Root traversal
	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got == nil || got.Error() != "root" {
		t.Fatalf("Root() failed, got %v", got)
	}

	// ErrNotFound sentinel behavior
	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatalf("ErrNotFound code mismatch")
	}
}

func TestArgumentErrorsCarryField(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		code  ErrorCode
		field string
		msg   string
	}{
		{"missing", MissingArgf("host", "host is required"), ErrorCodeMissingArgument, "host", "host is required"},
		{"identifier", InvalidIDf("id", "%q is not a 4x4", "nope"), ErrorCodeInvalidIdentifier, "id", `"nope" is not a 4x4`},
		{"range", InvalidRangef("page", "page must be >= 1, got %d", 0), ErrorCodeInvalidRange, "page", "page must be >= 1, got 0"},
		{"query", InvalidQueryf("query", "query is required"), ErrorCodeInvalidQuery, "query", "query is required"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if CodeOf(c.err) != c.code {
				t.Fatalf("code = %v, want %v", CodeOf(c.err), c.code)
			}
			if FieldOf(c.err) != c.field {
				t.Fatalf("field = %q, want %q", FieldOf(c.err), c.field)
			}
			if c.err.Error() != c.msg {
				t.Fatalf("msg = %q, want %q", c.err.Error(), c.msg)
			}
			if Retryable(c.err) {
				t.Fatalf("argument errors must not be retryable")
			}
			if HTTPStatus(c.err) != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", HTTPStatus(c.err))
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Unavailablef("down")) {
		t.Fatalf("unavailable should be retryable")
	}
	if !Retryable(New(ErrorCodeTooManyRequests, "slow down")) {
		t.Fatalf("too many requests should be retryable")
	}
	if Retryable(stderrs.New("plain")) {
		t.Fatalf("foreign errors default to not retryable")
	}
	if FieldOf(stderrs.New("plain")) != "" {
		t.Fatalf("FieldOf(foreign) should be empty")
	}
}
