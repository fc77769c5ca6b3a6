package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-phonebook/models"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, models.UserResponse{Name: "Ann", Email: "ann@x.com"}, http.StatusCreated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json content type, got %q", ct)
	}

	var body models.UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Name != "Ann" || body.Email != "ann@x.com" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	if err == nil {
		t.Fatal("expected marshal error, got nil")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
}

func TestWriteJSONMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSONMessage(rec, "Logged out successfully!", http.StatusOK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body models.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Message != "Logged out successfully!" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}
