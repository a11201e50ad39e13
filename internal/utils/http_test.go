package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"message": "ok"}, 201)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected bytes written")
	}
	if rr.Code != 201 {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json content type, got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("expected message 'ok', got %q", body["message"])
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	if _, err := WriteJSON(rr, make(chan int), 200); err == nil {
		t.Error("expected marshal error, got nil")
	}
	if rr.Code != 500 {
		t.Errorf("expected status 500 on marshal failure, got %d", rr.Code)
	}
}
