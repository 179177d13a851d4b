package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		if e.Error() != "QUOTE_REQUEST_NOT_FOUND: Quote request not found" {
			t.Fatalf("unexpected error string: %q", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected nil cause")
		}
	})

	t.Run("wrapped cause is kept out of the body", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}

		b, err := json.Marshal(e.ToHTTPError())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}` {
			t.Fatalf("unexpected body: %s", b)
		}
	})
}
