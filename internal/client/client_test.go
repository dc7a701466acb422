package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wfparrish/rhcsa-command-tool/internal/dto"
)

func TestListQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/questions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Files","steps":[{"id":1,"instruction":"Long listing"}]}]`))
	}))
	defer srv.Close()

	questions, err := New(srv.URL+"/", nil).ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].Steps[0].Instruction != "Long listing" {
		t.Fatalf("unexpected questions %+v", questions)
	}
}

func TestValidateSendsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["questionId"] != float64(2) || body["stepId"] != float64(3) || body["userAnswer"] != "ls -l" {
			t.Errorf("unexpected body %v", body)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected json content type")
		}
		w.Write([]byte(`{"isCorrect":false,"correctAnswer":"ls -la"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, nil).Validate(context.Background(), 2, 3, "ls -l")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsCorrect || res.CorrectAnswer == nil || *res.CorrectAnswer != "ls -la" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestValidateNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Step not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Validate(context.Background(), 1, 9, "x")
	if !IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if apiErr, ok := err.(*APIError); !ok || apiErr.Message != "Step not found" {
		t.Fatalf("expected API error message, got %v", err)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := New(url, nil).ListQuestions(context.Background()); err == nil {
		t.Fatalf("expected error from closed server")
	}
}
