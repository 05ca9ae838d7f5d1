package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "soda/internal/platform/errors"
	pnet "soda/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"uri": "https://data.smgov.net/views"}, "req-1")

	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Status != "OK" {
		t.Fatalf("status mismatch: %d %+v", status, w)
	}
	if w.RequestID != "req-1" {
		t.Fatalf("req id %q", w.RequestID)
	}
	if got := w.Data.(map[string]any)["uri"]; got != "https://data.smgov.net/views" {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestStatus(t *testing.T) {
	status, w := pnet.Status(http.StatusAccepted, nil, "")
	if status != http.StatusAccepted || w.Status != http.StatusText(http.StatusAccepted) {
		t.Fatalf("status mismatch: %d %+v", status, w)
	}
}

func TestError_NilFallsBackToOK(t *testing.T) {
	status, w := pnet.Error(nil, "req-4")
	if status != http.StatusOK || w.Error != "" || w.Code != 0 {
		t.Fatalf("unexpected envelope: %d %+v", status, w)
	}
}

func TestError_ArgumentErrorCarriesField(t *testing.T) {
	err := perr.InvalidIDf("id", "id %q is not a valid 4x4 resource identifier", "nope")

	status, w := pnet.Error(err, "req-5")

	if status != http.StatusBadRequest || w.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d want 400", status)
	}
	if w.Code != perr.ErrorCodeInvalidIdentifier {
		t.Fatalf("code %v", w.Code)
	}
	if w.Field != "id" {
		t.Fatalf("field %q want id", w.Field)
	}
	if w.Error == "" || w.Data != nil {
		t.Fatalf("unexpected body: %+v", w)
	}
}

func TestError_PlainErrorIsInternal(t *testing.T) {
	status, w := pnet.Error(errors.New("boom"), "")
	if status != http.StatusInternalServerError {
		t.Fatalf("status %d want 500", status)
	}
	if w.Error != "boom" || w.Field != "" {
		t.Fatalf("unexpected body: %+v", w)
	}
}
