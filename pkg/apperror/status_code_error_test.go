package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("fetch: %w", BadRequest("Invalid request count"))

	code, ok := StatusCode(err)
	if !ok {
		t.Fatal("expected wrapped StatusCodeError to be found")
	}
	if code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestStatusCodeOtherErrors(t *testing.T) {
	if _, ok := StatusCode(errors.New("boom")); ok {
		t.Error("plain error must not carry a status")
	}
	if _, ok := StatusCode(nil); ok {
		t.Error("nil must not carry a status")
	}
}

func TestErrorString(t *testing.T) {
	err := New(http.StatusConflict, "already running")
	if got := err.Error(); got != "409 Conflict: already running" {
		t.Errorf("unexpected error string %q", got)
	}
}
