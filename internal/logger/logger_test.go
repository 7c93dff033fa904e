package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// Must not panic and must not write anywhere.
	l.Info().Str("k", "v").Msg("dropped")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == parent {
		t.Fatalf("child logger must be a new instance")
	}
}

func TestFromRequest_FallsBackToDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if l := FromRequest(r); l == nil {
		t.Fatalf("FromRequest returned nil")
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if l := FromContext(context.Background()); l == nil {
		t.Fatalf("FromContext returned nil")
	}
}
